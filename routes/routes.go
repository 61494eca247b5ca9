package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"agricola-shop/catalog"
	"agricola-shop/config"
	"agricola-shop/controllers"
	"agricola-shop/middleware"
	"agricola-shop/repositories"
	"agricola-shop/services"
)

func SetupRoutes(router *gin.Engine, cat *catalog.Catalog) {
	// The deployed API answers wrong-method hits on real paths with 405
	// instead of gin's default 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(405, gin.H{"error": "Method not allowed"})
	})

	mailer, err := services.NewEmailService()
	if err != nil {
		log.Println("Contact notifications disabled:", err)
	}

	productCtrl := &controllers.ProductController{Catalog: cat}
	contactCtrl := &controllers.ContactController{
		Store: repositories.NewContactRepository(),
		Page:  config.AppConfig.ContactPage,
	}
	// Assign only a non-nil *EmailService so the interface stays nil
	// when notifications are disabled.
	if mailer != nil {
		contactCtrl.Mailer = mailer
	}
	checkoutCtrl := &controllers.CheckoutController{
		Catalog:  cat,
		Sessions: services.NewStripeService(config.AppConfig.StripeSecretKey, config.AppConfig.SiteURL),
		SiteURL:  config.AppConfig.SiteURL,
	}
	resellerCtrl := &controllers.ResellerController{
		Repo:    repositories.NewResellerRepository(),
		Catalog: cat,
	}

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/filter", productCtrl.FilterProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	api := router.Group("/api")
	{
		api.POST("/contact", contactCtrl.Submit)
		api.POST("/create-checkout-session", checkoutCtrl.CreateSession)

		api.POST("/resellers/register", resellerCtrl.Register)
		api.POST("/resellers/login", resellerCtrl.Login)

		trade := api.Group("/resellers")
		trade.Use(middleware.AuthMiddleware())
		{
			trade.GET("/products", resellerCtrl.GetProducts)
			trade.POST("/orders", resellerCtrl.CreateOrder)
			trade.GET("/orders", resellerCtrl.GetOrders)
		}
	}
}
