package service

import (
	"context"
	"fmt"
	"html"

	"go.uber.org/zap"

	"github.com/BERSERKRobot/chess-website-v2/internal/config"
	"github.com/BERSERKRobot/chess-website-v2/internal/events"
	"github.com/BERSERKRobot/chess-website-v2/internal/mailer"
)

// NotificationService emails the business owner about domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	mail       mailer.Mailer
	logger     *zap.Logger
	cfg        config.EmailConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mail mailer.Mailer, logger *zap.Logger, cfg config.EmailConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mail:       mail,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPaymentConfirmed, n.handlePaymentConfirmed)
	n.dispatcher.Subscribe(events.EventContactReceived, n.handleContactReceived)
}

func (n *NotificationService) handlePaymentConfirmed(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PaymentConfirmedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("PaymentConfirmed",
		zap.String("payment_intent_id", payload.PaymentIntentID),
		zap.String("plan_id", payload.PlanID))

	subject := fmt.Sprintf("New booking: %s", payload.PlanName)
	body := fmt.Sprintf(`<div>
  <h2>New Booking</h2>
  <p><strong>Plan:</strong> %s</p>
  <p><strong>Amount:</strong> $%.2f</p>
  <p><strong>Customer:</strong> %s (%s)</p>
  <p><strong>Payment ID:</strong> %s</p>
</div>`,
		html.EscapeString(payload.PlanName),
		float64(payload.AmountCents)/100,
		html.EscapeString(payload.CustomerName),
		html.EscapeString(payload.CustomerEmail),
		html.EscapeString(payload.PaymentIntentID))

	if _, err := n.mail.Send(ctx, mailer.Email{
		To:      n.cfg.OwnerEmail,
		Subject: subject,
		HTML:    body,
	}); err != nil {
		// mail is best-effort here; the payment already succeeded
		n.logger.Warn("owner booking notification failed", zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleContactReceived(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ContactReceivedPayload)
	if !ok {
		return nil
	}
	// the contact email itself was already forwarded by ContactService
	n.logger.Info("ContactReceived",
		zap.String("from", payload.Email),
		zap.String("delivery_id", payload.DeliveryID))
	return nil
}
