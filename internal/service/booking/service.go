// Package booking turns a session cart plus user-entered form fields into
// an order submission against the backend.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"fastlaundry/internal/domain"
	"fastlaundry/internal/pricing"
)

var (
	ErrAddressRequired      = errors.New("address required")
	ErrTimesRequired        = errors.New("pickup and delivery time required")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	// ErrInFlight rejects a second submission while one is pending for the
	// same session.
	ErrInFlight = errors.New("submission already in progress")
)

type cartStore interface {
	Load(ctx context.Context, sessionID string) []domain.LineItem
	Clear(ctx context.Context, sessionID string) error
}

type orderClient interface {
	CreateOrder(ctx context.Context, booking domain.BookingRequest) (*domain.Order, error)
}

type Service struct {
	cart   cartStore
	orders orderClient
	logger *log.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func New(cart cartStore, orders orderClient, logger *log.Logger) *Service {
	return &Service{
		cart:     cart,
		orders:   orders,
		logger:   logger,
		inFlight: make(map[string]bool),
	}
}

// Input is the transient form state entered by the user. Times are the
// raw datetime-local strings; their ordering is not validated here, the
// backend owns that decision.
type Input struct {
	Address       string               `json:"address"`
	Note          string               `json:"note"`
	PickupTime    string               `json:"pickupTime"`
	DeliveryTime  string               `json:"deliveryTime"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

// DefaultForm is the initial form state; on successful submission the
// caller resets its fields to this.
func DefaultForm() Input {
	return Input{PaymentMethod: domain.DefaultPaymentMethod}
}

// Result reports a confirmed submission. Form carries the reset state the
// view should return to.
type Result struct {
	Order   *domain.Order         `json:"order,omitempty"`
	Request domain.BookingRequest `json:"request"`
	Form    Input                 `json:"form"`
}

// Assemble builds the order payload from the cart and form fields. Price
// fields are dropped from the items; the backend recomputes them. The
// total is derived here and is not user-editable.
func Assemble(items []domain.LineItem, in Input) domain.BookingRequest {
	bookingItems := make([]domain.BookingItem, 0, len(items))
	for _, item := range items {
		bookingItems = append(bookingItems, domain.BookingItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			IsExpress: item.IsExpress,
		})
	}
	return domain.BookingRequest{
		Address:       in.Address,
		Note:          in.Note,
		PickupTime:    in.PickupTime,
		DeliveryTime:  in.DeliveryTime,
		PaymentMethod: in.PaymentMethod,
		TotalPrice:    pricing.CartTotal(items),
		Items:         bookingItems,
	}
}

// Submit validates the form, assembles the payload and makes exactly one
// order-creation call. Validation always completes before the external
// call; the cart is cleared strictly after the call succeeds, so a failed
// submission never loses cart contents or entered fields.
func (s *Service) Submit(ctx context.Context, sessionID string, in Input) (*Result, error) {
	if strings.TrimSpace(in.Address) == "" {
		return nil, ErrAddressRequired
	}
	if in.PickupTime == "" || in.DeliveryTime == "" {
		return nil, ErrTimesRequired
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = domain.DefaultPaymentMethod
	}
	if !in.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	if !s.acquire(sessionID) {
		return nil, ErrInFlight
	}
	defer s.release(sessionID)

	items := s.cart.Load(ctx, sessionID)
	req := Assemble(items, in)

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Printf("booking submission for session %s failed: %v", sessionID, err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		// the order exists; a stale cart record is an annoyance, not a failure
		s.logger.Printf("clear cart after booking for session %s: %v", sessionID, err)
	}

	return &Result{Order: order, Request: req, Form: DefaultForm()}, nil
}

func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
