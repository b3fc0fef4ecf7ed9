package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fastlaundry/internal/service/booking"
)

// submitBooking turns the session cart into an order. The empty-cart
// check lives here at the calling surface so the booking service can stay
// a pure cart-plus-form pipeline.
func submitBooking(cart cartAPI, bookings bookingAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in booking.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		sid := sessionID(c)
		if len(cart.Load(c.Request.Context(), sid)) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
			return
		}

		res, err := bookings.Submit(c.Request.Context(), sid, in)
		switch {
		case errors.Is(err, booking.ErrAddressRequired),
			errors.Is(err, booking.ErrTimesRequired),
			errors.Is(err, booking.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, booking.ErrInFlight):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		case err != nil:
			logger.Printf("booking for session %s: %v", sid, err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "could not submit booking, please try again"})
		default:
			c.JSON(http.StatusCreated, res)
		}
	}
}
