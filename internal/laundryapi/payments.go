package laundryapi

import (
	"context"
	"net/http"
	"net/url"
)

// PaymentRedirect is where the SPA sends the user to complete payment.
// Both providers are opaque: the gateway only ferries the redirect URL
// out and the confirmation code back.
type PaymentRedirect struct {
	URL string `json:"paymentUrl"`
}

type paymentAmount struct {
	Amount int64 `json:"amount"`
}

// CreateVNPayPayment asks the backend for a VNPay redirect URL covering
// the given amount (VND).
func (c *Client) CreateVNPayPayment(ctx context.Context, amount int64) (*PaymentRedirect, error) {
	var redirect PaymentRedirect
	if err := c.do(ctx, http.MethodPost, "/api/vnpay/create-payment", "", paymentAmount{Amount: amount}, &redirect); err != nil {
		return nil, err
	}
	return &redirect, nil
}

// VNPayReturn forwards the provider's response code for confirmation and
// returns the backend's confirmation message.
func (c *Client) VNPayReturn(ctx context.Context, responseCode string) (string, error) {
	path := "/api/vnpay/payment-return?vnp_ResponseCode=" + url.QueryEscape(responseCode)
	return c.doText(ctx, http.MethodGet, path)
}

// CreatePayPalPayment mirrors CreateVNPayPayment for the PayPal flow.
func (c *Client) CreatePayPalPayment(ctx context.Context, amount int64) (*PaymentRedirect, error) {
	var redirect PaymentRedirect
	if err := c.do(ctx, http.MethodPost, "/api/paypal/create-payment", "", paymentAmount{Amount: amount}, &redirect); err != nil {
		return nil, err
	}
	return &redirect, nil
}
