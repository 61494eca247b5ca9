package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"agricola-shop/models"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRelevance SortKey = "relevance"
)

// Criteria selects and orders a catalog view. Zero values (and the
// "all" sentinels) bypass the corresponding filter. All filters compose
// by intersection.
type Criteria struct {
	Search   string
	Category models.Category
	Variant  string
	MinPrice float64
	// MaxPrice 0 leaves the range open above, so {MinPrice: 25}
	// expresses the "25 and above" preset.
	MaxPrice float64
	Sort     SortKey
}

// View returns the filtered, sorted product list. The input slice is
// never mutated.
func View(products []models.Product, c Criteria) []models.Product {
	out := make([]models.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(c.Search))
	for _, p := range products {
		if !matches(p, c, search) {
			continue
		}
		out = append(out, p)
	}

	sortView(out, c.Sort, search)
	return out
}

func matches(p models.Product, c Criteria, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) {
		return false
	}

	if c.Category != "" && c.Category != models.CategoryAll && p.Category != c.Category {
		return false
	}

	if c.Variant != "" && c.Variant != "all" && p.Format != c.Variant {
		return false
	}

	if c.MinPrice > 0 && p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}

	return true
}

func sortView(products []models.Product, key SortKey, search string) {
	switch key {
	case SortName:
		coll := collate.New(language.Italian)
		sort.SliceStable(products, func(i, j int) bool {
			return coll.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRelevance:
		// Only meaningful with a search term; ties keep their prior
		// relative order.
		if search == "" {
			return
		}
		sort.SliceStable(products, func(i, j int) bool {
			return relevance(products[i], search) > relevance(products[j], search)
		})
	}
}

func relevance(p models.Product, search string) int {
	score := 0
	if strings.Contains(strings.ToLower(p.Name), search) {
		score += 3
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		score += 1
	}
	if strings.Contains(strings.ToLower(string(p.Category)), search) {
		score += 2
	}
	return score
}
