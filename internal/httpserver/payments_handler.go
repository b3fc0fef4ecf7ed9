package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type paymentRequest struct {
	Amount int64 `json:"amount"`
}

func createVNPayPayment(payments paymentsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "amount must be positive"})
			return
		}
		redirect, err := payments.CreateVNPayPayment(c.Request.Context(), req.Amount)
		if err != nil {
			logger.Printf("create vnpay payment: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "payment provider unavailable"})
			return
		}
		c.JSON(http.StatusOK, redirect)
	}
}

// vnpayReturn relays the provider's browser redirect. The response code
// is opaque here; the backend decides what it means.
func vnpayReturn(payments paymentsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		message, err := payments.VNPayReturn(c.Request.Context(), c.Query("vnp_ResponseCode"))
		if err != nil {
			logger.Printf("vnpay return: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "payment provider unavailable"})
			return
		}
		c.String(http.StatusOK, message)
	}
}

func createPayPalPayment(payments paymentsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "amount must be positive"})
			return
		}
		redirect, err := payments.CreatePayPalPayment(c.Request.Context(), req.Amount)
		if err != nil {
			logger.Printf("create paypal payment: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "payment provider unavailable"})
			return
		}
		c.JSON(http.StatusOK, redirect)
	}
}
