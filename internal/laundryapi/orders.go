package laundryapi

import (
	"context"
	"net/http"
	"net/url"

	"fastlaundry/internal/domain"
)

// CreateOrder submits an assembled booking. One call per confirmed
// submission; a failure is terminal for that attempt.
func (c *Client) CreateOrder(ctx context.Context, booking domain.BookingRequest) (*domain.Order, error) {
	var created domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/laundry-orders", "", booking, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AllOrders fetches the full order collection (staff and admin views).
func (c *Client) AllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/laundry-orders", "", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByShipper fetches orders assigned to one shipper.
func (c *Client) OrdersByShipper(ctx context.Context, shipperID string) ([]domain.Order, error) {
	var orders []domain.Order
	path := "/api/laundry-orders/shipper/" + url.PathEscape(shipperID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
