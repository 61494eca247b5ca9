package models

// ContactRequest is the raw contact form body. Fields arrive untrimmed
// and unclamped; Website is the honeypot and must stay empty for human
// submissions.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Privacy bool   `json:"privacy"`
	Website string `json:"website"`
}

// CheckoutItem references a catalog product by id only. The client never
// sends prices; the server is the price authority.
type CheckoutItem struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	Cart []CheckoutItem `json:"cart"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type ResellerRegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"company_name" binding:"required,min=2"`
	VATNumber   string `json:"vat_number" binding:"omitempty"`
}

type ResellerLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResellerLoginResponse struct {
	Token    string   `json:"token"`
	Reseller Reseller `json:"reseller"`
}

type ResellerOrderItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type ResellerOrderRequest struct {
	Items []ResellerOrderItemRequest `json:"items" binding:"required"`
	Notes string                     `json:"notes"`
}
