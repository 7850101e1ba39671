package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPaymentConfirmed EventType = "payment_confirmed"
	EventContactReceived  EventType = "contact_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PaymentConfirmedPayload payload.
type PaymentConfirmedPayload struct {
	PaymentIntentID string `json:"payment_intent_id"`
	PlanID          string `json:"plan_id"`
	PlanName        string `json:"plan_name"`
	AmountCents     int64  `json:"amount_cents"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	DeliveryID string `json:"delivery_id"`
}
