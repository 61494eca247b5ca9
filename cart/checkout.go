package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"agricola-shop/models"
)

// ErrEmptyCart is returned when Submit is called on an empty cart; no
// request is made.
var ErrEmptyCart = errors.New("cart is empty")

// Checkout submits the whole cart to the checkout-session endpoint as
// one atomic request and hands back the provider redirect URL. Prices
// are intentionally not sent; the server re-resolves every line against
// its own catalog.
type Checkout struct {
	Endpoint string
	Client   *http.Client
}

func NewCheckout(endpoint string) *Checkout {
	return &Checkout{
		Endpoint: endpoint,
		Client:   http.DefaultClient,
	}
}

// Submit sends the cart's (id, quantity) pairs and returns the redirect
// URL on success. On any failure the cart is left untouched and the
// server's error message is surfaced; the caller may retry manually.
func (c *Checkout) Submit(ctx context.Context, store *Store) (string, error) {
	items := store.Items()
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	req := models.CheckoutRequest{Cart: make([]models.CheckoutItem, 0, len(items))}
	for _, item := range items {
		req.Cart = append(req.Cart, models.CheckoutItem{
			ID:       item.ProductID,
			Quantity: item.Quantity,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("checkout failed with status %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		if payload.Error != "" {
			return "", errors.New(payload.Error)
		}
		return "", fmt.Errorf("checkout failed with status %d", resp.StatusCode)
	}

	return payload.URL, nil
}
