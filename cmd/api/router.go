package main

import (
	"context"
	"fmt"
	"time"

	"bakery-storefront/internal/shared/middleware"
	"bakery-storefront/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	sessionConfig := middleware.DefaultSessionMiddlewareConfig(c.Identity)
	sessionConfig.CookieSecure = c.Config.Cart.CookieSecure

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupMenuRoutes(v1, c)

		// Everything below needs a browser session
		shop := v1.Group("", middleware.Session(sessionConfig))
		setupSessionRoutes(shop, c)
		setupCartRoutes(shop, c)
		setupWeatherRoutes(shop, c)
	}

	return router
}

// ========================================
// MENU ROUTES
// ========================================
func setupMenuRoutes(v1 *gin.RouterGroup, c *container.Container) {
	menu := v1.Group("/menu")
	{
		menu.GET("", c.CatalogHandler.ListMenu)
		menu.GET("/export", c.CatalogHandler.ExportMenu)
		menu.GET("/:id", c.CatalogHandler.GetProduct)
	}
}

// ========================================
// SESSION ROUTES
// ========================================
func setupSessionRoutes(g *gin.RouterGroup, c *container.Container) {
	session := g.Group("/session")
	{
		session.GET("", c.IdentityHandler.GetSession)
		session.POST("/sign-in", c.IdentityHandler.SignIn)
		session.POST("/sign-out", c.IdentityHandler.SignOut)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(g *gin.RouterGroup, c *container.Container) {
	cart := g.Group("/cart")
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.DELETE("", c.CartHandler.Clear)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PATCH("/items/:product_id", c.CartHandler.ChangeQuantity)
		cart.DELETE("/items/:product_id", c.CartHandler.RemoveItem)
		cart.POST("/checkout", c.CartHandler.Checkout)
	}
}

// ========================================
// WEATHER SUGGESTION ROUTES
// ========================================
func setupWeatherRoutes(g *gin.RouterGroup, c *container.Container) {
	suggestion := g.Group("/weather/suggestion")
	{
		suggestion.GET("", c.RecommendationHandler.GetSuggestion)
		suggestion.GET("/current", c.RecommendationHandler.GetCurrent)
		suggestion.GET("/city/:name", c.RecommendationHandler.GetByCity)
		suggestion.GET("/cep/:cep", c.RecommendationHandler.GetByPostalCode)
		suggestion.POST("/add-to-cart", c.RecommendationHandler.AddToCart)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		redisStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.Redis.HealthCheck(ctx); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		services := gin.H{
			"redis":      redisStatus,
			"cart_store": appCtx.Config.Cart.Store,
		}

		if appCtx.DB != nil {
			dbStatus := "ok"
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
			services["database"] = dbStatus
		}

		health["services"] = services

		status := 200
		if health["status"] != "ok" {
			status = 503
		}
		c.JSON(status, health)
	}
}
