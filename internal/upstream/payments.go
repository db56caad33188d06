package upstream

import "context"

const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
)

type Payment struct {
	PaymentID  int     `json:"paymentId"`
	BookingID  *int    `json:"bookingId,omitempty"`
	EventID    *int    `json:"eventId,omitempty"`
	PayerEmail string  `json:"payerEmail"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	PaidAt     *string `json:"paidAt,omitempty"`
	Status     string  `json:"status"`
}

func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	raw, err := c.get(ctx, "/payments")
	if err != nil {
		return nil, err
	}
	return decodeItems[Payment](raw)
}

func (c *Client) GetPayment(ctx context.Context, id int) (Payment, error) {
	raw, err := c.get(ctx, idPath("/payments", id))
	if err != nil {
		return Payment{}, err
	}
	return decodeItem[Payment](raw)
}

// SetPaymentStatus marks a payment paid or refunded. Payments are created by
// the upstream checkout flow, never from the console.
func (c *Client) SetPaymentStatus(ctx context.Context, id int, status string) (Payment, error) {
	raw, err := c.put(ctx, idPath("/payments", id)+"/status", statusChange{Status: status})
	if err != nil {
		return Payment{}, err
	}
	return decodeItem[Payment](raw)
}
