package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CART_DB_PATH", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("CONTACT_PAGE", "")

	LoadConfig()
	require.NotNil(t, AppConfig)

	assert.Equal(t, "development", AppConfig.AppEnv)
	assert.Equal(t, "cart.db", AppConfig.CartDBPath)
	assert.Equal(t, "data/products.json", AppConfig.CatalogPath)
	assert.Equal(t, "/contatti.html", AppConfig.ContactPage)
}

func TestLoadConfigCartDBPathOverride(t *testing.T) {
	t.Setenv("CART_DB_PATH", "/var/data/shop-cart.db")

	LoadConfig()

	assert.Equal(t, "/var/data/shop-cart.db", AppConfig.CartDBPath)
}

func TestLoadAllowedOriginsExtendsDefaults(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://staging.example.com ,, https://preview.example.com")

	origins := loadAllowedOrigins()

	assert.Contains(t, origins, "https://agricolagentiliorvieto.com")
	assert.Contains(t, origins, "https://www.agricolagentiliorvieto.com")
	assert.Contains(t, origins, "https://staging.example.com")
	assert.Contains(t, origins, "https://preview.example.com")
	assert.NotContains(t, origins, "")
}
