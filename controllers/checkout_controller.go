package controllers

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"agricola-shop/catalog"
	"agricola-shop/services"
)

type SessionCreator interface {
	CreateSession(lines []services.SessionLine) (string, error)
}

type CheckoutController struct {
	Catalog  *catalog.Catalog
	Sessions SessionCreator
	SiteURL  string
}

// looseQuantity accepts the quantities real storefront clients send:
// numbers, numeric strings, or junk. Anything that does not parse
// counts as one unit.
type looseQuantity int64

func (q *looseQuantity) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*q = looseQuantity(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*q = looseQuantity(f)
			return nil
		}
	}

	*q = 1
	return nil
}

// CreateSession godoc
// @Summary Create a checkout session
// @Description Resolve cart items against the catalog and create one Stripe checkout session
// @Tags Checkout
// @Accept json
// @Produce json
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/create-checkout-session [post]
func (ctrl *CheckoutController) CreateSession(c *gin.Context) {
	var req struct {
		Cart []struct {
			ID       int           `json:"id"`
			Quantity looseQuantity `json:"quantity"`
		} `json:"cart"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Cart) == 0 {
		c.JSON(400, gin.H{"error": "Cart is empty"})
		return
	}

	if ctrl.SiteURL == "" {
		c.JSON(500, gin.H{"error": "Missing SITE_URL env var"})
		return
	}

	// The client only sends ids; every line is re-resolved against the
	// server-side catalog. One unknown id fails the whole request and
	// no session is created.
	lines := make([]services.SessionLine, 0, len(req.Cart))
	for _, item := range req.Cart {
		product, ok := ctrl.Catalog.ByID(item.ID)
		if !ok || product.StripePriceID == "" {
			log.Printf("checkout session error: invalid product or missing price reference: %d", item.ID)
			c.JSON(500, gin.H{"error": "Server error"})
			return
		}

		quantity := int64(item.Quantity)
		if quantity < 1 {
			quantity = 1
		}

		lines = append(lines, services.SessionLine{
			PriceID:  product.StripePriceID,
			Quantity: quantity,
		})
	}

	url, err := ctrl.Sessions.CreateSession(lines)
	if err != nil {
		log.Printf("checkout session error: %v", err)
		c.JSON(500, gin.H{"error": "Server error"})
		return
	}

	c.JSON(200, gin.H{"url": url})
}
