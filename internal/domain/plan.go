package domain

import "math"

// Plan is a purchasable lesson offering. Plans are defined at build time and
// never change at runtime; Price is the authoritative amount in dollars.
type Plan struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	DisplayPrice   string   `json:"display_price"`
	PricePerLesson string   `json:"price_per_lesson,omitempty"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	Popular        bool     `json:"popular,omitempty"`
}

// AmountCents returns the charge amount in minor currency units. This is the
// only value ever sent to the payment processor; client-supplied amounts are
// ignored.
func (p Plan) AmountCents() int64 {
	return int64(math.Round(p.Price * 100))
}
