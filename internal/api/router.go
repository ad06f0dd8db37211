package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/api/handlers"
	"github.com/velas-starlight/storefront/internal/cart"
	"github.com/velas-starlight/storefront/internal/catalog"
	"github.com/velas-starlight/storefront/internal/checkout"
	"github.com/velas-starlight/storefront/internal/config"
)

// Deps bundles the application components the handlers translate HTTP
// calls into. The handlers hold no state of their own.
type Deps struct {
	Catalog *catalog.Catalog
	Cart    *cart.Store
	Session *checkout.Session
	Form    *checkout.ContactForm
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps *Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/products", handlers.HandleListProducts(deps.Catalog, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(deps.Catalog, logger))

		v1.GET("/cart", handlers.HandleGetCart(deps.Cart, deps.Session))
		v1.POST("/cart/items", handlers.HandleAddItem(deps.Catalog, deps.Session, logger))
		v1.PATCH("/cart/items/:id", handlers.HandleUpdateQuantity(deps.Session))
		v1.DELETE("/cart/items/:id", handlers.HandleRemoveItem(deps.Session))
		v1.DELETE("/cart", handlers.HandleClearCart(deps.Session))

		v1.GET("/checkout", handlers.HandleGetCheckout(deps.Session))
		v1.GET("/checkout/summary", handlers.HandleFinalSummary(deps.Session))
		v1.PUT("/checkout/shipping-method", handlers.HandleSetShippingMethod(deps.Session))
		v1.PUT("/checkout/shipping-details", handlers.HandleShippingDetails(deps.Form))
		v1.POST("/checkout/discount", handlers.HandleApplyDiscount(deps.Session))
		v1.POST("/checkout/shipping", handlers.HandleProceedToShipping(deps.Session))
		v1.POST("/checkout/payment", handlers.HandleProceedToPayment(deps.Session))
		v1.POST("/checkout/back-to-cart", handlers.HandleBackToCart(deps.Session))
		v1.POST("/checkout/back-to-shipping", handlers.HandleBackToShipping(deps.Session))
		v1.POST("/checkout/quote", handlers.HandleDownloadQuote(deps.Session, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
