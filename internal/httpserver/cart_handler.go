package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fastlaundry/internal/cartstore"
	"fastlaundry/internal/domain"
	"fastlaundry/internal/pricing"
)

type cartLineView struct {
	domain.LineItem
	LineTotal int64 `json:"lineTotal"`
}

type cartView struct {
	Items      []cartLineView `json:"items"`
	TotalPrice int64          `json:"totalPrice"`
}

func toCartView(items []domain.LineItem) cartView {
	lines := make([]cartLineView, 0, len(items))
	for _, item := range items {
		lines = append(lines, cartLineView{LineItem: item, LineTotal: pricing.LineTotal(item)})
	}
	return cartView{Items: lines, TotalPrice: pricing.CartTotal(items)}
}

type addItemRequest struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	BasePrice    int64  `json:"basePrice"`
	ExpressPrice int64  `json:"expressPrice"`
	IsExpress    bool   `json:"isExpress"`
	Quantity     int    `json:"quantity"`
}

type quantityRequest struct {
	ProductID string `json:"productId"`
	IsExpress bool   `json:"isExpress"`
	Delta     int    `json:"delta"`
}

func getCart(cart cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cart.Load(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, toCartView(items))
	}
}

func addCartItem(cart cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		items, err := cart.Add(c.Request.Context(), sessionID(c), domain.LineItem{
			ProductID:        req.ProductID,
			Name:             req.Name,
			ImageURL:         req.ImageURL,
			UnitPrice:        req.BasePrice,
			ExpressSurcharge: req.ExpressPrice,
			IsExpress:        req.IsExpress,
			Quantity:         req.Quantity,
		})
		switch {
		case errors.Is(err, cartstore.ErrProductRequired), errors.Is(err, cartstore.ErrQuantityPositive):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update cart"})
		default:
			c.JSON(http.StatusOK, toCartView(items))
		}
	}
}

func updateCartQuantity(cart cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		items, err := cart.SetQuantity(c.Request.Context(), sessionID(c), req.ProductID, req.IsExpress, req.Delta)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "cart line not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update cart"})
		default:
			c.JSON(http.StatusOK, toCartView(items))
		}
	}
}

func removeCartItem(cart cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid line index"})
			return
		}

		items, err := cart.Remove(c.Request.Context(), sessionID(c), index)
		switch {
		case errors.Is(err, domain.ErrIndexOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": "line index out of range"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update cart"})
		default:
			c.JSON(http.StatusOK, toCartView(items))
		}
	}
}

func clearCart(cart cartAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Clear(c.Request.Context(), sessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
