package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fastlaundry/internal/domain"
)

func listProducts(catalog catalogAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.Products(c.Request.Context())
		if err != nil {
			logger.Printf("list products: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProduct(catalog catalogAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.ProductByID(c.Request.Context(), c.Param("id"))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
		case err != nil:
			logger.Printf("get product %s: %v", c.Param("id"), err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "catalog unavailable"})
		default:
			c.JSON(http.StatusOK, product)
		}
	}
}

func productsByCategory(catalog catalogAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ProductsByCategory(c.Request.Context(), c.Param("id"))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "category not found"})
		case err != nil:
			logger.Printf("products for category %s: %v", c.Param("id"), err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "catalog unavailable"})
		default:
			c.JSON(http.StatusOK, products)
		}
	}
}

func listCategories(catalog catalogAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.Categories(c.Request.Context())
		if err != nil {
			logger.Printf("list categories: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
