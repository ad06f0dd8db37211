package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/catalog"
)

func HandleListProducts(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Category: c.Query("category"),
			Query:    c.Query("q"),
			Featured: c.Query("featured") == "true",
		}

		products := cat.Find(filter)
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

func HandleGetProduct(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		product, ok := cat.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
