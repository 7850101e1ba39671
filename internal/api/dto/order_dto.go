package dto

import (
	"time"

	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

// OrderResponse is the owner-facing view of a completed booking.
type OrderResponse struct {
	ID              string    `json:"id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	PlanID          string    `json:"plan_id"`
	PlanName        string    `json:"plan_name"`
	AmountCents     int64     `json:"amount_cents"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	Experience      string    `json:"experience"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewOrderResponses converts the domain orders for transport.
func NewOrderResponses(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, OrderResponse{
			ID:              o.ID,
			PaymentIntentID: o.PaymentIntentID,
			PlanID:          o.PlanID,
			PlanName:        o.PlanName,
			AmountCents:     o.AmountCents,
			CustomerName:    o.CustomerName,
			CustomerEmail:   o.CustomerEmail,
			CustomerPhone:   o.CustomerPhone,
			Experience:      o.Experience,
			CreatedAt:       o.CreatedAt,
		})
	}
	return responses
}
