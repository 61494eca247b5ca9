package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"agricola-shop/models"
)

func fixtureProducts() []models.Product {
	return []models.Product{
		{ID: 1, Category: models.CategoryWine, Name: "Orvieto Classico", Description: "Bianco secco e minerale", Price: 12.5, Format: "750ml"},
		{ID: 2, Category: models.CategoryWine, Name: "Rosso di Spicca", Description: "Sangiovese in purezza", Price: 15.0, Format: "750ml"},
		{ID: 3, Category: models.CategoryWine, Name: "Riserva del Podere", Description: "Rosso riserva affinato in botte", Price: 28.9, Format: "750ml"},
		{ID: 101, Category: models.CategoryOil, Name: "Olio Classico", Description: "Fruttato medio", Price: 9.5, Format: "500ml"},
		{ID: 102, Category: models.CategoryOil, Name: "Olio Intenso", Description: "Monocultivar amaro e piccante", Price: 14.0, Format: "500ml"},
		{ID: 103, Category: models.CategoryOil, Name: "Olio Latta", Description: "Latta da tre litri", Price: 42.0, Format: "3l"},
	}
}

func TestViewCategoryFilter(t *testing.T) {
	out := View(fixtureProducts(), Criteria{Category: models.CategoryOil})
	require.Len(t, out, 3)
	for _, p := range out {
		assert.Equal(t, models.CategoryOil, p.Category)
	}
}

func TestViewAllSentinelsBypass(t *testing.T) {
	out := View(fixtureProducts(), Criteria{Category: models.CategoryAll, Variant: "all"})
	assert.Len(t, out, len(fixtureProducts()))
}

func TestViewSearchMatchesNameOrDescription(t *testing.T) {
	// "rosso" appears in one product's name and another's description.
	out := View(fixtureProducts(), Criteria{Search: "ROSSO"})
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].ID)
	assert.Equal(t, 3, out[1].ID)

	// Empty search matches everything.
	assert.Len(t, View(fixtureProducts(), Criteria{}), len(fixtureProducts()))
}

func TestViewVariantFilter(t *testing.T) {
	out := View(fixtureProducts(), Criteria{Variant: "500ml"})
	require.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, "500ml", p.Format)
	}
}

func TestViewPriceRangeInclusive(t *testing.T) {
	out := View(fixtureProducts(), Criteria{MinPrice: 9.5, MaxPrice: 14.0})
	require.Len(t, out, 3)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Price, 9.5)
		assert.LessOrEqual(t, p.Price, 14.0)
	}
}

func TestViewPriceRangeOpenEnded(t *testing.T) {
	// The "25 and above" preset has only a lower bound.
	out := View(fixtureProducts(), Criteria{MinPrice: 25})
	require.Len(t, out, 2)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Price, 25.0)
	}
}

func TestViewFiltersComposeByIntersection(t *testing.T) {
	combined := View(fixtureProducts(), Criteria{Category: models.CategoryOil, MinPrice: 10, MaxPrice: 50})

	byCategory := idSet(View(fixtureProducts(), Criteria{Category: models.CategoryOil}))
	byPrice := idSet(View(fixtureProducts(), Criteria{MinPrice: 10, MaxPrice: 50}))

	require.NotEmpty(t, combined)
	for _, p := range combined {
		assert.True(t, byCategory[p.ID], "product %d missing from category-only view", p.ID)
		assert.True(t, byPrice[p.ID], "product %d missing from price-only view", p.ID)
	}

	// And nothing in both single views is missing from the combined one.
	intersection := 0
	for id := range byCategory {
		if byPrice[id] {
			intersection++
		}
	}
	assert.Len(t, combined, intersection)
}

func TestViewSortNameLocaleOrder(t *testing.T) {
	out := View(fixtureProducts(), Criteria{Sort: SortName})
	coll := collate.New(language.Italian)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, coll.CompareString(out[i-1].Name, out[i].Name), 0,
			"%q should not come after %q", out[i-1].Name, out[i].Name)
	}
}

func TestViewSortPrice(t *testing.T) {
	asc := View(fixtureProducts(), Criteria{Sort: SortPriceAsc})
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := View(fixtureProducts(), Criteria{Sort: SortPriceDesc})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestViewRelevanceScoring(t *testing.T) {
	// "olio" scores 3+2 on name+category matches; a description-only
	// match would rank below.
	out := View(fixtureProducts(), Criteria{Search: "olio", Sort: SortRelevance})
	require.Len(t, out, 3)
	for _, p := range out {
		assert.Equal(t, models.CategoryOil, p.Category)
	}
}

func TestViewRelevanceIsStable(t *testing.T) {
	// All three oils score identically for "olio"; their catalog order
	// must survive the sort.
	out := View(fixtureProducts(), Criteria{Search: "olio", Sort: SortRelevance})
	require.Len(t, out, 3)
	assert.Equal(t, []int{101, 102, 103}, []int{out[0].ID, out[1].ID, out[2].ID})
}

func TestViewRelevanceWithoutSearchKeepsOrder(t *testing.T) {
	out := View(fixtureProducts(), Criteria{Sort: SortRelevance})
	for i, p := range fixtureProducts() {
		assert.Equal(t, p.ID, out[i].ID)
	}
}

func TestViewDoesNotMutateSource(t *testing.T) {
	source := fixtureProducts()
	original := fixtureProducts()

	View(source, Criteria{Category: models.CategoryWine, Sort: SortPriceDesc})

	assert.Equal(t, original, source)
}

func idSet(products []models.Product) map[int]bool {
	set := make(map[int]bool, len(products))
	for _, p := range products {
		set[p.ID] = true
	}
	return set
}
