// Package catalog loads the product catalog document and exposes pure
// filtering and sorting over it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"agricola-shop/models"
)

// Catalog is the authoritative product list: both named lists of the
// source document normalized into one category-tagged slice, with a
// lookup by product id. It is immutable after Load.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// Load reads the two-list catalog document from path. Every entry is
// tagged with the category of the list it came from; ids are unique
// across both lists.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file models.CatalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(file), nil
}

// New normalizes an already-parsed catalog document.
func New(file models.CatalogFile) *Catalog {
	c := &Catalog{
		products: make([]models.Product, 0, len(file.Wines)+len(file.Oils)),
		byID:     make(map[int]models.Product),
	}

	for _, p := range file.Wines {
		p.Category = models.CategoryWine
		c.add(p)
	}
	for _, p := range file.Oils {
		p.Category = models.CategoryOil
		c.add(p)
	}

	return c
}

func (c *Catalog) add(p models.Product) {
	c.products = append(c.products, p)
	c.byID[p.ID] = p
}

// Products returns a copy of the normalized product list.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID resolves a product by id.
func (c *Catalog) ByID(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByKey resolves a product by the (id, category) cart key.
func (c *Catalog) ByKey(id int, category models.Category) (models.Product, bool) {
	p, ok := c.byID[id]
	if !ok || p.Category != category {
		return models.Product{}, false
	}
	return p, true
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
