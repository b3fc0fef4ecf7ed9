package domain

// PaymentMethod is one of the redirect providers the backend supports.
type PaymentMethod string

const (
	PaymentVNPay  PaymentMethod = "VNPay"
	PaymentPayPal PaymentMethod = "PayPal"
)

// DefaultPaymentMethod is what the booking form falls back to.
const DefaultPaymentMethod = PaymentVNPay

func (m PaymentMethod) Valid() bool {
	return m == PaymentVNPay || m == PaymentPayPal
}

// BookingItem is the order-line shape sent to the backend. Prices are
// deliberately omitted; the backend recomputes them from its catalog.
type BookingItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	IsExpress bool   `json:"isExpress"`
}

// BookingRequest is the payload submitted to the order-creation endpoint.
// Pickup and delivery times are carried as the datetime-local strings the
// form produces; the backend owns their interpretation.
type BookingRequest struct {
	Address       string        `json:"address"`
	Note          string        `json:"note,omitempty"`
	PickupTime    string        `json:"pickupTime"`
	DeliveryTime  string        `json:"deliveryTime"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalPrice    int64         `json:"totalPrice"`
	Items         []BookingItem `json:"items"`
}
