package httpserver

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"fastlaundry/internal/cartstore"
	"fastlaundry/internal/domain"
	"fastlaundry/internal/kvstore"
	"fastlaundry/internal/service/booking"
)

type stubBookings struct {
	result *booking.Result
	err    error
	calls  int
}

func (s *stubBookings) Submit(_ context.Context, _ string, _ booking.Input) (*booking.Result, error) {
	s.calls++
	return s.result, s.err
}

func newBookingRouter(t *testing.T, bookings *stubBookings) (*gin.Engine, *cartstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	kv := kvstore.NewMemory()
	cart := cartstore.New(kv, testLogger())
	return buildRouter(testLogger(), Deps{Cart: cart, Booking: bookings, KV: kv}), cart
}

func seededCookies(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: "p1", BasePrice: 100, Quantity: 1}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("seeding cart failed with status %d", rec.Code)
	}
	return rec.Result().Cookies()
}

func TestSubmitBookingEmptyCart(t *testing.T) {
	bookings := &stubBookings{}
	router, _ := newBookingRouter(t, bookings)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", booking.Input{Address: "a"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if bookings.calls != 0 {
		t.Fatalf("booking service invoked for an empty cart")
	}
}

func TestSubmitBookingValidationError(t *testing.T) {
	bookings := &stubBookings{err: booking.ErrAddressRequired}
	router, _ := newBookingRouter(t, bookings)
	cookies := seededCookies(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", booking.Input{}, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSubmitBookingInFlight(t *testing.T) {
	bookings := &stubBookings{err: booking.ErrInFlight}
	router, _ := newBookingRouter(t, bookings)
	cookies := seededCookies(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", booking.Input{Address: "a"}, cookies)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestSubmitBookingBackendFailure(t *testing.T) {
	bookings := &stubBookings{err: errors.New("backend down")}
	router, _ := newBookingRouter(t, bookings)
	cookies := seededCookies(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", booking.Input{Address: "a"}, cookies)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
}

func TestSubmitBookingSuccess(t *testing.T) {
	bookings := &stubBookings{result: &booking.Result{
		Order: &domain.Order{ID: "o1", Status: domain.StatusPending},
		Form:  booking.DefaultForm(),
	}}
	router, _ := newBookingRouter(t, bookings)
	cookies := seededCookies(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", booking.Input{
		Address:      "123 Main St",
		PickupTime:   "2024-01-01T08:00",
		DeliveryTime: "2024-01-01T18:00",
	}, cookies)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if bookings.calls != 1 {
		t.Fatalf("expected one submission call, got %d", bookings.calls)
	}
}
