// Package api adapts the gin application to a serverless runtime: the
// platform invokes Handler per request, and initialization runs once
// per warm instance.
package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"agricola-shop/catalog"
	"agricola-shop/config"
	"agricola-shop/middleware"
	"agricola-shop/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.InitRedis()

		cat, err := catalog.Load(config.AppConfig.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, cat)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
