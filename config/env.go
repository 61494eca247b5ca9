package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	SiteURL         string
	CatalogPath     string
	CartDBPath      string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	StripeSecretKey string
	JWTSecret       string
	JWTExpiry       string
	AllowedOrigins  []string
	ContactPage     string
}

var AppConfig *Config

func LoadConfig() {
	if os.Getenv("VERCEL") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found, using system environment variables")
		}
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		SiteURL:         os.Getenv("SITE_URL"),
		CatalogPath:     getEnv("CATALOG_PATH", "data/products.json"),
		CartDBPath:      getEnv("CART_DB_PATH", "cart.db"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "agricola_shop"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getEnv("JWT_EXPIRY", "24h"),
		AllowedOrigins:  loadAllowedOrigins(),
		ContactPage:     getEnv("CONTACT_PAGE", "/contatti.html"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
}

// loadAllowedOrigins returns the CORS allow-list: the production domains
// plus Live Server origins for local development, extended by the
// comma-separated ALLOWED_ORIGINS variable.
func loadAllowedOrigins() []string {
	origins := []string{
		"https://agricolagentiliorvieto.com",
		"https://www.agricolagentiliorvieto.com",
		"http://127.0.0.1:5500",
		"http://localhost:5500",
	}

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
