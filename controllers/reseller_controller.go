package controllers

import (
	"log"
	"math"

	"github.com/gin-gonic/gin"

	"agricola-shop/catalog"
	"agricola-shop/models"
	"agricola-shop/repositories"
	"agricola-shop/utils"
)

// tradeDiscount is the flat reseller discount applied to list prices.
const tradeDiscount = 0.80

type ResellerController struct {
	Repo    *repositories.ResellerRepository
	Catalog *catalog.Catalog
}

// Register godoc
// @Summary Register a reseller account
// @Tags Resellers
// @Accept json
// @Produce json
// @Param request body models.ResellerRegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/resellers/register [post]
func (ctrl *ResellerController) Register(c *gin.Context) {
	var req models.ResellerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if existing, _ := ctrl.Repo.FindByEmail(c.Request.Context(), req.Email); existing != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("password hash error: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to register"})
		return
	}

	reseller := &models.Reseller{
		Email:       req.Email,
		Password:    hash,
		CompanyName: req.CompanyName,
		VATNumber:   req.VATNumber,
	}
	if err := ctrl.Repo.Create(c.Request.Context(), reseller); err != nil {
		log.Printf("reseller insert error: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to register"})
		return
	}

	token, err := utils.GenerateToken(reseller.ID, reseller.Email)
	if err != nil {
		log.Printf("token generation error: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to register"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Reseller registered",
		"data":    models.ResellerLoginResponse{Token: token, Reseller: *reseller},
	})
}

// Login godoc
// @Summary Reseller login
// @Tags Resellers
// @Accept json
// @Produce json
// @Param request body models.ResellerLoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/resellers/login [post]
func (ctrl *ResellerController) Login(c *gin.Context) {
	var req models.ResellerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	reseller, err := ctrl.Repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	valid, err := utils.VerifyPassword(reseller.Password, req.Password)
	if err != nil || !valid {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(reseller.ID, reseller.Email)
	if err != nil {
		log.Printf("token generation error: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to login"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    models.ResellerLoginResponse{Token: token, Reseller: *reseller},
	})
}

// GetProducts godoc
// @Summary Get the trade catalog
// @Description Catalog with reseller pricing alongside list prices
// @Tags Resellers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/resellers/products [get]
func (ctrl *ResellerController) GetProducts(c *gin.Context) {
	products := ctrl.Catalog.Products()

	type tradeProduct struct {
		models.Product
		ListPrice float64 `json:"list_price"`
	}

	out := make([]tradeProduct, 0, len(products))
	for _, p := range products {
		tp := tradeProduct{Product: p, ListPrice: p.Price}
		tp.Price = tradePrice(p.Price)
		out = append(out, tp)
	}

	c.JSON(200, gin.H{"success": true, "message": "Trade catalog retrieved", "data": out})
}

// CreateOrder godoc
// @Summary Place a trade order
// @Tags Resellers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ResellerOrderRequest true "Order Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/resellers/orders [post]
func (ctrl *ResellerController) CreateOrder(c *gin.Context) {
	resellerID := c.GetInt("reseller_id")

	var req models.ResellerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Order has no items"})
		return
	}

	// Prices are resolved server-side at trade rates; the client only
	// names products and quantities.
	order := &models.ResellerOrder{
		ResellerID: resellerID,
		Status:     "pending",
		Notes:      req.Notes,
	}
	for _, item := range req.Items {
		product, ok := ctrl.Catalog.ByID(item.ProductID)
		if !ok {
			c.JSON(400, gin.H{"success": false, "message": "Unknown product in order"})
			return
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		unitPrice := tradePrice(product.Price)
		order.Items = append(order.Items, models.ResellerOrderItem{
			ProductID: product.ID,
			Category:  product.Category,
			Name:      product.Name,
			UnitPrice: unitPrice,
			Quantity:  quantity,
		})
		order.Total += unitPrice * float64(quantity)
	}

	if err := ctrl.Repo.CreateOrder(c.Request.Context(), order); err != nil {
		log.Printf("reseller order insert error: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created", "data": order})
}

// GetOrders godoc
// @Summary List the caller's trade orders
// @Tags Resellers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/resellers/orders [get]
func (ctrl *ResellerController) GetOrders(c *gin.Context) {
	resellerID := c.GetInt("reseller_id")

	orders, err := ctrl.Repo.FindOrdersByReseller(c.Request.Context(), resellerID)
	if err != nil {
		log.Printf("reseller orders query error: %v", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

func tradePrice(listPrice float64) float64 {
	return math.Round(listPrice*tradeDiscount*100) / 100
}
