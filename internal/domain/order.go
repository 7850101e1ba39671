package domain

import "time"

// Order is the record kept after a payment intent has been verified as
// succeeded. The payment processor remains the system of record for the
// charge itself; this row exists so the owner can see completed bookings.
type Order struct {
	ID              string
	PaymentIntentID string
	PlanID          string
	PlanName        string
	AmountCents     int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Experience      string
	CreatedAt       time.Time
}
