package services

import (
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// SessionLine is one resolved checkout line: the provider price
// reference from the server-side catalog plus a quantity already
// clamped to at least 1.
type SessionLine struct {
	PriceID  string
	Quantity int64
}

// StripeService creates hosted checkout sessions. One session covers
// the whole cart; success and cancel targets point back at the shop
// page of the configured site.
type StripeService struct {
	siteURL string
}

func NewStripeService(secretKey, siteURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{siteURL: siteURL}
}

func (s *StripeService) CreateSession(lines []SessionLine) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(line.PriceID),
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(s.siteURL + "/negozio.html?success=1"),
		CancelURL:  stripe.String(s.siteURL + "/negozio.html?canceled=1"),
	}

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}

	return sess.URL, nil
}
