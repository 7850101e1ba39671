package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BERSERKRobot/chess-website-v2/internal/catalog"
	"github.com/BERSERKRobot/chess-website-v2/internal/checkout"
	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
	"github.com/BERSERKRobot/chess-website-v2/internal/events"
	"github.com/BERSERKRobot/chess-website-v2/internal/payments"
	"github.com/BERSERKRobot/chess-website-v2/internal/repository"
	"github.com/BERSERKRobot/chess-website-v2/pkg/util"
)

// CheckoutService drives the checkout wizard and the payment intent
// lifecycle against the payment processor.
type CheckoutService struct {
	sessions   repository.CheckoutSessionRepository
	orders     repository.OrderRepository
	gateway    payments.Gateway
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CheckoutDependencies bundles collaborators for the checkout service.
type CheckoutDependencies struct {
	SessionRepo repository.CheckoutSessionRepository
	OrderRepo   repository.OrderRepository
	Gateway     payments.Gateway
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// PaymentData is the orchestrator input derived from an order draft. Amount
// is in decimal currency units; it is converted to minor units here.
type PaymentData struct {
	Name     string
	Email    string
	Amount   float64
	PlanID   string
	PlanName string
	Metadata map[string]string
}

// PaymentIntentResult is the uniform outcome of intent creation. The client
// secret is the only processor detail ever exposed to the browser.
type PaymentIntentResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// ConfirmationResult is the uniform outcome of payment verification.
type ConfirmationResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	PlanName        string `json:"plan_name,omitempty"`
	Amount          string `json:"amount,omitempty"`
	AmountCents     int64  `json:"amount_cents,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	Email           string `json:"email,omitempty"`
	Date            string `json:"date,omitempty"`
}

// NewCheckoutService constructs the service.
func NewCheckoutService(deps CheckoutDependencies) *CheckoutService {
	return &CheckoutService{
		sessions:   deps.SessionRepo,
		orders:     deps.OrderRepo,
		gateway:    deps.Gateway,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// StartSession begins a fresh wizard run. The most popular plan starts
// pre-selected and experience defaults to intermediate, matching the
// booking form's initial state.
func (s *CheckoutService) StartSession(ctx context.Context) (*domain.CheckoutSession, error) {
	session := &domain.CheckoutSession{
		ID:     uuid.NewString(),
		Step:   domain.StepSelectPlan,
		PlanID: "5-lessons",
		Details: domain.CustomerDetails{
			Experience: domain.ExperienceIntermediate,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession loads a wizard session by id.
func (s *CheckoutService) GetSession(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, mapSessionErr(err)
	}
	return session, nil
}

// SelectPlan sets the session's plan while on the select_plan step.
func (s *CheckoutService) SelectPlan(ctx context.Context, sessionID, planID string) (*domain.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, mapSessionErr(err)
	}
	if err := checkout.SelectPlan(session, planID); err != nil {
		return nil, mapWizardErr(err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDetails stores the customer form data while on the customer_details step.
func (s *CheckoutService) SetDetails(ctx context.Context, sessionID string, details domain.CustomerDetails) (*domain.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, mapSessionErr(err)
	}
	if err := checkout.SetDetails(session, details); err != nil {
		return nil, mapWizardErr(err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the wizard forward. A non-empty field error map means the
// current step failed validation and the state did not change.
func (s *CheckoutService) Advance(ctx context.Context, sessionID string) (*domain.CheckoutSession, checkout.FieldErrors, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, mapSessionErr(err)
	}
	fieldErrs, err := checkout.Advance(session)
	if err != nil {
		return nil, nil, mapWizardErr(err)
	}
	if len(fieldErrs) > 0 {
		return session, fieldErrs, nil
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, nil, nil
}

// Retreat moves the wizard one step back.
func (s *CheckoutService) Retreat(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, mapSessionErr(err)
	}
	if err := checkout.Retreat(session); err != nil {
		return nil, mapWizardErr(err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// PaymentIntentForSession creates a payment intent for a session sitting on
// the payment step. The charge amount always comes from the catalog.
func (s *CheckoutService) PaymentIntentForSession(ctx context.Context, sessionID string) (PaymentIntentResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return PaymentIntentResult{}, mapSessionErr(err)
	}
	if session.Step != domain.StepPayment {
		return PaymentIntentResult{}, util.NewValidationError("checkout has not reached the payment step", nil)
	}

	plan, ok := catalog.FindPlan(session.PlanID)
	if !ok {
		return PaymentIntentResult{Success: false, Message: "Missing required payment information"}, nil
	}

	return s.CreatePaymentIntent(ctx, PaymentData{
		Name:     session.Details.FullName(),
		Email:    session.Details.Email,
		Amount:   plan.Price,
		PlanID:   plan.ID,
		PlanName: plan.Name,
		Metadata: map[string]string{
			"phone":           session.Details.Phone,
			"chessExperience": string(session.Details.Experience),
			"sessionId":       session.ID,
		},
	}), nil
}

// CreatePaymentIntent validates the payment data and requests an intent from
// the processor. All failures are recoverable results, never raw errors.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, data PaymentData) PaymentIntentResult {
	if data.Name == "" || data.Email == "" || data.Amount == 0 || data.PlanID == "" {
		return PaymentIntentResult{
			Success: false,
			Message: "Missing required payment information",
		}
	}

	metadata := map[string]string{
		"name":     data.Name,
		"email":    data.Email,
		"planId":   data.PlanID,
		"planName": data.PlanName,
	}
	for k, v := range data.Metadata {
		metadata[k] = v
	}

	intent, err := s.gateway.CreateIntent(ctx, payments.CreateIntentParams{
		AmountCents:  int64(math.Round(data.Amount * 100)),
		ReceiptEmail: data.Email,
		Metadata:     metadata,
	})
	if err != nil {
		s.logger.Error("create payment intent failed",
			zap.String("plan_id", data.PlanID),
			zap.Error(err))
		return PaymentIntentResult{
			Success: false,
			Message: "Failed to process payment. Please try again later.",
		}
	}

	return PaymentIntentResult{
		Success:      true,
		ClientSecret: intent.ClientSecret,
	}
}

// ConfirmPayment re-checks an intent with the processor after the hosted
// payment step redirects back. Reading is idempotent; the order record and
// notification fire only on the first confirmation of an intent.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, intentID string) ConfirmationResult {
	if intentID == "" {
		return ConfirmationResult{
			Success: false,
			Message: "Payment information not found",
		}
	}

	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		s.logger.Error("retrieve payment intent failed",
			zap.String("payment_intent_id", intentID),
			zap.Error(err))
		return ConfirmationResult{
			Success: false,
			Message: "Failed to process payment confirmation.",
		}
	}

	if intent.Status != "succeeded" {
		return ConfirmationResult{
			Success: false,
			Message: "Payment has not been completed",
		}
	}

	s.recordConfirmedOrder(ctx, intent)

	planName := intent.Metadata["planName"]
	if planName == "" {
		planName = "Chess Lessons"
	}
	email := intent.Metadata["email"]
	if email == "" {
		email = intent.ReceiptEmail
	}

	return ConfirmationResult{
		Success:         true,
		Message:         "Payment processed successfully!",
		PlanName:        planName,
		Amount:          fmt.Sprintf("%.2f", float64(intent.Amount)/100),
		AmountCents:     intent.Amount,
		PaymentIntentID: intent.ID,
		Email:           email,
		Date:            time.Now().Format("1/2/2006"),
	}
}

// ListOrders returns the most recently completed bookings for the owner.
func (s *CheckoutService) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	return s.orders.ListRecent(ctx, limit)
}

// recordConfirmedOrder persists the order and notifies the owner. Failures
// here are logged and never surfaced; the payment already succeeded.
func (s *CheckoutService) recordConfirmedOrder(ctx context.Context, intent *payments.Intent) {
	order := &domain.Order{
		PaymentIntentID: intent.ID,
		PlanID:          intent.Metadata["planId"],
		PlanName:        intent.Metadata["planName"],
		AmountCents:     intent.Amount,
		CustomerName:    intent.Metadata["name"],
		CustomerEmail:   intent.Metadata["email"],
		CustomerPhone:   intent.Metadata["phone"],
		Experience:      intent.Metadata["chessExperience"],
	}

	inserted, err := s.orders.RecordOnce(ctx, order)
	if err != nil {
		s.logger.Error("record order failed",
			zap.String("payment_intent_id", intent.ID),
			zap.Error(err))
		return
	}
	if !inserted {
		return
	}

	// the wizard run is complete; discard its session instead of waiting
	// for the TTL
	if sessionID := intent.Metadata["sessionId"]; sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.logger.Warn("delete checkout session failed",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}

	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPaymentConfirmed,
		Timestamp: time.Now().UTC(),
		Payload: events.PaymentConfirmedPayload{
			PaymentIntentID: intent.ID,
			PlanID:          order.PlanID,
			PlanName:        order.PlanName,
			AmountCents:     order.AmountCents,
			CustomerName:    order.CustomerName,
			CustomerEmail:   order.CustomerEmail,
		},
	})
}

func mapSessionErr(err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return util.NewNotFound("checkout session", nil)
	}
	return err
}

func mapWizardErr(err error) error {
	switch {
	case errors.Is(err, checkout.ErrInvalidTransition):
		return util.NewConflict(err.Error(), nil)
	case errors.Is(err, checkout.ErrUnknownPlan):
		return util.NewValidationError(err.Error(), map[string]any{"plan": "Please select a plan"})
	default:
		return err
	}
}
