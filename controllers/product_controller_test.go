package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agricola-shop/catalog"
	"agricola-shop/models"
)

func productTestCatalog() *catalog.Catalog {
	return catalog.New(models.CatalogFile{
		Wines: []models.Product{
			{ID: 1, Name: "Orvieto Classico", Description: "Bianco secco", Price: 12.5, Format: "750ml"},
			{ID: 2, Name: "Riserva del Podere", Description: "Rosso riserva", Price: 28.9, Format: "750ml"},
		},
		Oils: []models.Product{
			{ID: 101, Name: "Olio Classico", Description: "Fruttato medio", Price: 9.5, Format: "500ml"},
		},
	})
}

func newProductRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := &ProductController{Catalog: productTestCatalog()}
	router.GET("/products", ctrl.GetAllProducts)
	router.GET("/products/filter", ctrl.FilterProducts)
	router.GET("/products/:id", ctrl.GetProductByID)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, url string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestGetAllProducts(t *testing.T) {
	code, body := getJSON(t, newProductRouter(), "/products")

	assert.Equal(t, 200, code)
	assert.Equal(t, float64(3), body["total"])
}

func TestFilterProductsByCategory(t *testing.T) {
	code, body := getJSON(t, newProductRouter(), "/products/filter?category=oil")

	assert.Equal(t, 200, code)
	assert.Equal(t, float64(1), body["total"])
}

func TestFilterProductsPricePreset(t *testing.T) {
	code, body := getJSON(t, newProductRouter(), "/products/filter?price=25%2B")
	assert.Equal(t, 200, code)
	assert.Equal(t, float64(1), body["total"])

	code, body = getJSON(t, newProductRouter(), "/products/filter?price=10-25")
	assert.Equal(t, 200, code)
	assert.Equal(t, float64(1), body["total"])
}

func TestFilterProductsSearchAndSort(t *testing.T) {
	code, body := getJSON(t, newProductRouter(), "/products/filter?search=classico&sort=price-asc")

	assert.Equal(t, 200, code)
	assert.Equal(t, float64(2), body["total"])

	data := body["data"].([]interface{})
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Olio Classico", first["name"])
}

func TestGetProductByID(t *testing.T) {
	code, body := getJSON(t, newProductRouter(), "/products/101")
	assert.Equal(t, 200, code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Olio Classico", data["name"])

	code, _ = getJSON(t, newProductRouter(), "/products/999")
	assert.Equal(t, 404, code)

	code, _ = getJSON(t, newProductRouter(), "/products/abc")
	assert.Equal(t, 400, code)
}
