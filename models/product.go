package models

// Category tags a product with the catalog list it came from.
type Category string

const (
	CategoryWine Category = "wine"
	CategoryOil  Category = "oil"

	// CategoryAll is the filter sentinel that bypasses category matching.
	CategoryAll Category = "all"
)

type Product struct {
	ID            int      `json:"id"`
	Category      Category `json:"category"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	Format        string   `json:"format,omitempty"`
	StripePriceID string   `json:"stripe_price_id,omitempty"`
}

// CatalogFile is the on-disk catalog document: two named lists whose
// entries carry no category of their own.
type CatalogFile struct {
	Wines []Product `json:"wines"`
	Oils  []Product `json:"oils"`
}
