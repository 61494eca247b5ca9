package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agricola-shop/models"
)

const catalogDocument = `{
  "wines": [
    {"id": 1, "name": "Orvieto Classico", "description": "Bianco secco", "price": 12.5, "format": "750ml", "stripe_price_id": "price_wine_1"},
    {"id": 2, "name": "Rosso di Spicca", "description": "Sangiovese", "price": 15.0, "format": "750ml", "stripe_price_id": "price_wine_2"}
  ],
  "oils": [
    {"id": 101, "name": "Olio Classico", "description": "Fruttato medio", "price": 9.5, "format": "500ml", "stripe_price_id": "price_oil_1"}
  ]
}`

func writeCatalog(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestLoadTagsCategories(t *testing.T) {
	cat, err := Load(writeCatalog(t, catalogDocument))
	require.NoError(t, err)

	products := cat.Products()
	require.Len(t, products, 3)

	assert.Equal(t, models.CategoryWine, products[0].Category)
	assert.Equal(t, models.CategoryWine, products[1].Category)
	assert.Equal(t, models.CategoryOil, products[2].Category)

	// Wines come first, in document order.
	assert.Equal(t, "Orvieto Classico", products[0].Name)
	assert.Equal(t, "Olio Classico", products[2].Name)
}

func TestLoadBuildsIndex(t *testing.T) {
	cat, err := Load(writeCatalog(t, catalogDocument))
	require.NoError(t, err)

	p, ok := cat.ByID(101)
	require.True(t, ok)
	assert.Equal(t, "Olio Classico", p.Name)
	assert.Equal(t, "price_oil_1", p.StripePriceID)

	_, ok = cat.ByID(999)
	assert.False(t, ok)
}

func TestByKeyRequiresMatchingCategory(t *testing.T) {
	cat, err := Load(writeCatalog(t, catalogDocument))
	require.NoError(t, err)

	_, ok := cat.ByKey(1, models.CategoryWine)
	assert.True(t, ok)

	_, ok = cat.ByKey(1, models.CategoryOil)
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedDocument(t *testing.T) {
	_, err := Load(writeCatalog(t, "{not json"))
	assert.Error(t, err)
}

func TestProductsReturnsCopy(t *testing.T) {
	cat, err := Load(writeCatalog(t, catalogDocument))
	require.NoError(t, err)

	view := cat.Products()
	view[0].Name = "mutated"

	fresh := cat.Products()
	assert.Equal(t, "Orvieto Classico", fresh[0].Name)
}
