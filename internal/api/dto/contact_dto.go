package dto

import "github.com/BERSERKRobot/chess-website-v2/internal/domain"

// ContactRequest payload for the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ToDomain converts the request into the domain value.
func (r ContactRequest) ToDomain() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
