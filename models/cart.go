package models

// LineItem is one catalog product plus a quantity inside a cart. Name
// and unit price are snapshots taken when the item was first added; a
// later catalog price change does not touch existing lines.
type LineItem struct {
	ProductID int      `json:"product_id"`
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unit_price"`
	Quantity  int      `json:"quantity"`
}
