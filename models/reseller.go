package models

import "time"

type Reseller struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	CompanyName string    `json:"company_name"`
	VATNumber   string    `json:"vat_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ResellerOrder struct {
	ID         int                 `json:"id"`
	ResellerID int                 `json:"reseller_id"`
	Items      []ResellerOrderItem `json:"items"`
	Total      float64             `json:"total"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ResellerOrderItem carries the trade unit price resolved server-side
// when the order was placed.
type ResellerOrderItem struct {
	ProductID int      `json:"product_id"`
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unit_price"`
	Quantity  int      `json:"quantity"`
}
