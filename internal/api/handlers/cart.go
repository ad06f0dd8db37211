package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/cart"
	"github.com/velas-starlight/storefront/internal/catalog"
	"github.com/velas-starlight/storefront/internal/checkout"
)

// AddItemRequest selects a product and its configuration. Omitted options
// fall back to the product's defaults.
type AddItemRequest struct {
	ProductID int     `json:"product_id" binding:"required"`
	Type      string  `json:"type"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Fragrance string  `json:"fragrance"`
	Quantity  int     `json:"quantity"`
}

// UpdateQuantityRequest sets a line item's quantity. Zero or a negative
// value removes the item.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func HandleGetCart(store *cart.Store, session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items":       store.Items(),
			"total_units": store.TotalUnits(),
			"summary":     session.Summary(),
		})
	}
}

func HandleAddItem(cat *catalog.Catalog, session *checkout.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, ok := cat.Get(req.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if !product.Available {
			c.JSON(http.StatusConflict, gin.H{"error": "product not available"})
			return
		}

		candidate := cat.BuildCartItem(product, catalog.SelectedOptions{
			Type:      req.Type,
			Size:      req.Size,
			Price:     req.Price,
			Fragrance: req.Fragrance,
			Quantity:  req.Quantity,
		})

		item := session.AddItem(candidate)
		logger.Info("Item added to cart",
			zap.String("title", item.Title),
			zap.Int("quantity", item.Quantity),
		)

		c.JSON(http.StatusOK, gin.H{
			"item":    item,
			"summary": session.Summary(),
		})
	}
}

func HandleUpdateQuantity(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if !session.UpdateQuantity(c.Param("id"), *req.Quantity) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"summary": session.Summary()})
	}
}

func HandleRemoveItem(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed, ok := session.RemoveItem(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"removed": removed,
			"summary": session.Summary(),
		})
	}
}

// HandleClearCart empties the cart. The confirm flag is the explicit
// confirmation the store itself does not enforce.
func HandleClearCart(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("confirm") != "true" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pass confirm=true to clear the cart"})
			return
		}

		session.ClearCart()
		c.JSON(http.StatusOK, gin.H{"summary": session.Summary()})
	}
}
