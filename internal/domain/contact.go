package domain

import "time"

// ContactMessage is one contact form submission. It exists for the duration
// of a single send; a copy is archived after successful delivery.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ArchivedContactMessage is the stored copy of a delivered contact message.
type ArchivedContactMessage struct {
	ID         string
	Name       string
	Email      string
	Subject    string
	Message    string
	DeliveryID string
	CreatedAt  time.Time
}
