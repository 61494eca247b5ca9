package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"agricola-shop/catalog"
	"agricola-shop/config"
	"agricola-shop/models"
)

type ProductController struct {
	Catalog *catalog.Catalog
}

func productCacheKey(c *gin.Context) string {
	return "products_" + c.Request.URL.RawQuery
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Get the full normalized catalog (wines and oils)
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := context.Background()
	cacheKey := productCacheKey(c)

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products := ctrl.Catalog.Products()
	response := gin.H{
		"success": true,
		"message": "Products retrieved",
		"data":    products,
		"total":   len(products),
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// FilterProducts godoc
// @Summary Filter products
// @Description Filter and sort products by search text, category, format and price
// @Tags Products
// @Produce json
// @Param search query string false "Search in name and description"
// @Param category query string false "Category" Enums(all, wine, oil)
// @Param format query string false "Packaging format, e.g. 500ml"
// @Param price query string false "Price preset, e.g. 10-25 or 25+"
// @Param sort query string false "Sort key" Enums(name, price-asc, price-desc, relevance)
// @Success 200 {object} models.Response
// @Router /products/filter [get]
func (ctrl *ProductController) FilterProducts(c *gin.Context) {
	criteria := catalog.Criteria{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: models.Category(strings.TrimSpace(c.Query("category"))),
		Variant:  strings.TrimSpace(c.Query("format")),
		Sort:     catalog.SortKey(strings.TrimSpace(c.Query("sort"))),
	}
	criteria.MinPrice, criteria.MaxPrice = parsePriceRange(c)

	products := catalog.View(ctrl.Catalog.Products(), criteria)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products filtered",
		"data":    products,
		"total":   len(products),
	})
}

// parsePriceRange accepts either the page's price presets ("10-25",
// "25+") or explicit min_price/max_price values.
func parsePriceRange(c *gin.Context) (min, max float64) {
	if preset := strings.TrimSpace(c.Query("price")); preset != "" && preset != "all" {
		if bound, ok := strings.CutSuffix(preset, "+"); ok {
			min, _ = strconv.ParseFloat(bound, 64)
			return min, 0
		}
		if lo, hi, ok := strings.Cut(preset, "-"); ok {
			min, _ = strconv.ParseFloat(lo, 64)
			max, _ = strconv.ParseFloat(hi, 64)
			return min, max
		}
		return 0, 0
	}

	min, _ = strconv.ParseFloat(c.Query("min_price"), 64)
	max, _ = strconv.ParseFloat(c.Query("max_price"), 64)
	return min, max
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("Invalid product id: %s", c.Param("id"))})
		return
	}

	product, ok := ctrl.Catalog.ByID(id)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}
