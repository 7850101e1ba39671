package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BERSERKRobot/chess-website-v2/internal/config"
	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
	"github.com/BERSERKRobot/chess-website-v2/internal/events"
	"github.com/BERSERKRobot/chess-website-v2/internal/mailer"
	"github.com/BERSERKRobot/chess-website-v2/internal/repository"
)

// ContactService validates contact form submissions and forwards them to the
// business owner through the email delivery service.
type ContactService struct {
	mail       mailer.Mailer
	archive    repository.ContactMessageRepository
	dispatcher events.Dispatcher
	cfg        config.EmailConfig
	logger     *zap.Logger
}

// ContactDependencies bundles collaborators for the contact service.
type ContactDependencies struct {
	Mailer      mailer.Mailer
	ArchiveRepo repository.ContactMessageRepository
	Dispatcher  events.Dispatcher
	Config      config.EmailConfig
	Logger      *zap.Logger
}

// ContactResult is the uniform outcome of a contact submission. Data carries
// the delivery service's receipt id, opaque to the caller.
type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// NewContactService constructs the service.
func NewContactService(deps ContactDependencies) *ContactService {
	return &ContactService{
		mail:       deps.Mailer,
		archive:    deps.ArchiveRepo,
		dispatcher: deps.Dispatcher,
		cfg:        deps.Config,
		logger:     deps.Logger,
	}
}

// Send validates the message locally, forwards it to the owner, and archives
// the delivered copy. Subject defaults to "New Message" when empty.
func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) ContactResult {
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return ContactResult{
			Success: false,
			Message: "Please fill out all required fields",
		}
	}

	subject := msg.Subject
	if subject == "" {
		subject = "New Message"
	}

	deliveryID, err := s.mail.Send(ctx, mailer.Email{
		To:      s.cfg.OwnerEmail,
		Subject: "Contact Form: " + subject,
		ReplyTo: msg.Email,
		HTML:    contactHTML(msg),
	})
	if err != nil {
		s.logger.Error("contact email delivery failed",
			zap.String("from", msg.Email),
			zap.Error(err))
		return ContactResult{
			Success: false,
			Message: "Failed to send your message. Please try again later.",
		}
	}

	s.archiveDelivered(ctx, msg, deliveryID)

	return ContactResult{
		Success: true,
		Message: "Your message has been sent successfully!",
		Data:    deliveryID,
	}
}

// archiveDelivered stores the delivered copy and announces it. Failures are
// logged only; the message already reached the owner.
func (s *ContactService) archiveDelivered(ctx context.Context, msg domain.ContactMessage, deliveryID string) {
	if s.archive != nil {
		archived := &domain.ArchivedContactMessage{
			Name:       msg.Name,
			Email:      msg.Email,
			Subject:    msg.Subject,
			Message:    msg.Message,
			DeliveryID: deliveryID,
		}
		if err := s.archive.Create(ctx, archived); err != nil {
			s.logger.Error("archive contact message failed", zap.Error(err))
		}
	}

	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventContactReceived,
		Timestamp: time.Now().UTC(),
		Payload: events.ContactReceivedPayload{
			Name:       msg.Name,
			Email:      msg.Email,
			Subject:    msg.Subject,
			DeliveryID: deliveryID,
		},
	})
}

// contactHTML renders the outbound body. Newlines in the message become line
// breaks; an empty subject shows as N/A.
func contactHTML(msg domain.ContactMessage) string {
	subject := msg.Subject
	if subject == "" {
		subject = "N/A"
	}
	body := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")

	return fmt.Sprintf(`<div>
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Subject:</strong> %s</p>
  <h3>Message:</h3>
  <p>%s</p>
</div>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(subject),
		body)
}
