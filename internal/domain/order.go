package domain

import "time"

// OrderStatus is the backend's order lifecycle state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPickedUp  OrderStatus = "PICKED_UP"
	StatusInProcess OrderStatus = "IN_PROCESS"
	StatusPaid      OrderStatus = "PAID"
)

// KnownStatuses lists the statuses that participate in badge counts, in
// display order.
func KnownStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPickedUp, StatusInProcess, StatusPaid}
}

// Order is the slice of a backend order record this service consumes.
type Order struct {
	ID               string      `json:"id"`
	Status           OrderStatus `json:"status"`
	DeletedByShipper bool        `json:"deletedByShipper"`
	Address          string      `json:"address,omitempty"`
	TotalPrice       int64       `json:"totalPrice,omitempty"`
	CreatedAt        time.Time   `json:"createdAt,omitzero"`
}

// StatusCounts maps each known status to the number of visible orders in
// that state. Shipper-deleted orders and unknown statuses are excluded.
type StatusCounts map[OrderStatus]int

// NewStatusCounts returns counts with every known status zeroed, so
// serialized snapshots always carry all four keys.
func NewStatusCounts() StatusCounts {
	counts := make(StatusCounts, 4)
	for _, st := range KnownStatuses() {
		counts[st] = 0
	}
	return counts
}
