package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
	"github.com/BERSERKRobot/chess-website-v2/internal/events"
	"github.com/BERSERKRobot/chess-website-v2/internal/payments"
)

type fakeGateway struct {
	createCalls   int
	retrieveCalls int
	lastCreate    payments.CreateIntentParams
	lastRetrieve  string

	createResult   *payments.Intent
	createErr      error
	retrieveResult *payments.Intent
	retrieveErr    error
}

func (g *fakeGateway) CreateIntent(_ context.Context, params payments.CreateIntentParams) (*payments.Intent, error) {
	g.createCalls++
	g.lastCreate = params
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createResult, nil
}

func (g *fakeGateway) RetrieveIntent(_ context.Context, id string) (*payments.Intent, error) {
	g.retrieveCalls++
	g.lastRetrieve = id
	if g.retrieveErr != nil {
		return nil, g.retrieveErr
	}
	return g.retrieveResult, nil
}

type memSessionRepo struct {
	sessions map[string]domain.CheckoutSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]domain.CheckoutSession{}}
}

func (r *memSessionRepo) Save(_ context.Context, s *domain.CheckoutSession) error {
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, id string) (*domain.CheckoutSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	stored := s
	return &stored, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type memOrderRepo struct {
	orders []domain.Order
	seen   map[string]bool
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{seen: map[string]bool{}}
}

func (r *memOrderRepo) RecordOnce(_ context.Context, order *domain.Order) (bool, error) {
	if r.seen[order.PaymentIntentID] {
		return false, nil
	}
	r.seen[order.PaymentIntentID] = true
	r.orders = append(r.orders, *order)
	return true, nil
}

func (r *memOrderRepo) ListRecent(_ context.Context, _ int) ([]domain.Order, error) {
	return r.orders, nil
}

func newTestService(gateway payments.Gateway) (*CheckoutService, *memSessionRepo, *memOrderRepo, *int) {
	sessions := newMemSessionRepo()
	orders := newMemOrderRepo()
	dispatcher := events.NewInMemoryDispatcher()

	published := 0
	dispatcher.Subscribe(events.EventPaymentConfirmed, func(context.Context, events.Event) error {
		published++
		return nil
	})

	svc := NewCheckoutService(CheckoutDependencies{
		SessionRepo: sessions,
		OrderRepo:   orders,
		Gateway:     gateway,
		Dispatcher:  dispatcher,
		Logger:      zap.NewNop(),
	})
	return svc, sessions, orders, &published
}

func completeWizard(t *testing.T, svc *CheckoutService, planID string) *domain.CheckoutSession {
	t.Helper()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.SelectPlan(ctx, session.ID, planID)
	require.NoError(t, err)

	session, fieldErrs, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	session, err = svc.SetDetails(ctx, session.ID, domain.CustomerDetails{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Phone:      "555-0100",
		Experience: domain.ExperienceIntermediate,
	})
	require.NoError(t, err)

	session, fieldErrs, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, domain.StepPayment, session.Step)
	return session
}

func TestStartSessionDefaults(t *testing.T) {
	svc, _, _, _ := newTestService(&fakeGateway{})

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectPlan, session.Step)
	assert.Equal(t, "5-lessons", session.PlanID)
	assert.Equal(t, domain.ExperienceIntermediate, session.Details.Experience)
}

func TestAdvanceFailureLeavesStoredStateUnchanged(t *testing.T) {
	svc, sessions, _, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, fieldErrs, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	// step 2 with a bad email must not advance
	_, err = svc.SetDetails(ctx, session.ID, domain.CustomerDetails{
		FirstName: "Jane", LastName: "Doe", Email: "nope", Phone: "555-0100",
	})
	require.NoError(t, err)

	_, fieldErrs, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, fieldErrs["email"])

	stored := sessions.sessions[session.ID]
	assert.Equal(t, domain.StepCustomerDetails, stored.Step)
}

func TestCreatePaymentIntentRejectsMissingData(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _, _, _ := newTestService(gateway)

	result := svc.CreatePaymentIntent(context.Background(), PaymentData{
		Name: "Jane Doe", Email: "", Amount: 70, PlanID: "single-lesson",
	})
	assert.False(t, result.Success)
	assert.Equal(t, "Missing required payment information", result.Message)
	assert.Zero(t, gateway.createCalls)
}

func TestCreatePaymentIntentParams(t *testing.T) {
	gateway := &fakeGateway{createResult: &payments.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}}
	svc, _, _, _ := newTestService(gateway)

	result := svc.CreatePaymentIntent(context.Background(), PaymentData{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Amount:   325,
		PlanID:   "5-lessons",
		PlanName: "5 Lesson Package",
		Metadata: map[string]string{"phone": "555-0100"},
	})

	require.True(t, result.Success)
	assert.Equal(t, "pi_1_secret", result.ClientSecret)
	assert.Equal(t, int64(32500), gateway.lastCreate.AmountCents)
	assert.Equal(t, "jane@example.com", gateway.lastCreate.ReceiptEmail)
	assert.Equal(t, "Jane Doe", gateway.lastCreate.Metadata["name"])
	assert.Equal(t, "5-lessons", gateway.lastCreate.Metadata["planId"])
	assert.Equal(t, "5 Lesson Package", gateway.lastCreate.Metadata["planName"])
	assert.Equal(t, "555-0100", gateway.lastCreate.Metadata["phone"])
}

func TestPaymentIntentAmountComesFromCatalog(t *testing.T) {
	gateway := &fakeGateway{createResult: &payments.Intent{ClientSecret: "secret"}}
	svc, _, _, _ := newTestService(gateway)

	session := completeWizard(t, svc, "5-lessons")

	result, err := svc.PaymentIntentForSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, int64(32500), gateway.lastCreate.AmountCents)
	assert.Equal(t, session.ID, gateway.lastCreate.Metadata["sessionId"])
}

func TestPaymentIntentRequiresPaymentStep(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _, _, _ := newTestService(gateway)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	_, err = svc.PaymentIntentForSession(context.Background(), session.ID)
	assert.Error(t, err)
	assert.Zero(t, gateway.createCalls)
}

func TestCreatePaymentIntentGatewayError(t *testing.T) {
	gateway := &fakeGateway{createErr: errors.New("stripe: boom")}
	svc, _, _, _ := newTestService(gateway)

	result := svc.CreatePaymentIntent(context.Background(), PaymentData{
		Name: "Jane Doe", Email: "jane@example.com", Amount: 70, PlanID: "single-lesson",
	})
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to process payment. Please try again later.", result.Message)
}

func TestConfirmPaymentMissingID(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _, _, _ := newTestService(gateway)

	result := svc.ConfirmPayment(context.Background(), "")
	assert.False(t, result.Success)
	assert.Equal(t, "Payment information not found", result.Message)
	assert.Zero(t, gateway.retrieveCalls)
}

func TestConfirmPaymentNotSucceeded(t *testing.T) {
	gateway := &fakeGateway{retrieveResult: &payments.Intent{ID: "pi_2", Status: "processing"}}
	svc, _, orders, published := newTestService(gateway)

	result := svc.ConfirmPayment(context.Background(), "pi_2")
	assert.False(t, result.Success)
	assert.Equal(t, "Payment has not been completed", result.Message)
	assert.Equal(t, 1, gateway.retrieveCalls)
	assert.Empty(t, orders.orders)
	assert.Zero(t, *published)
}

func TestConfirmPaymentTransportError(t *testing.T) {
	gateway := &fakeGateway{retrieveErr: errors.New("stripe: unreachable")}
	svc, _, _, _ := newTestService(gateway)

	result := svc.ConfirmPayment(context.Background(), "pi_3")
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to process payment confirmation.", result.Message)
}

func TestConfirmPaymentSucceeded(t *testing.T) {
	gateway := &fakeGateway{retrieveResult: &payments.Intent{
		ID:           "pi_4",
		Status:       "succeeded",
		Amount:       32500,
		ReceiptEmail: "jane@example.com",
		Metadata: map[string]string{
			"name":     "Jane Doe",
			"email":    "jane@example.com",
			"planId":   "5-lessons",
			"planName": "5 Lesson Package",
		},
	}}
	svc, _, orders, published := newTestService(gateway)

	result := svc.ConfirmPayment(context.Background(), "pi_4")
	require.True(t, result.Success)
	assert.Equal(t, "5 Lesson Package", result.PlanName)
	assert.Equal(t, "325.00", result.Amount)
	assert.Equal(t, "pi_4", result.PaymentIntentID)
	assert.Equal(t, "jane@example.com", result.Email)
	assert.NotEmpty(t, result.Date)

	require.Len(t, orders.orders, 1)
	assert.Equal(t, "pi_4", orders.orders[0].PaymentIntentID)
	assert.Equal(t, int64(32500), orders.orders[0].AmountCents)
	assert.Equal(t, 1, *published)
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	gateway := &fakeGateway{retrieveResult: &payments.Intent{
		ID:     "pi_5",
		Status: "succeeded",
		Amount: 7000,
		Metadata: map[string]string{
			"planName": "Single Lesson",
			"email":    "jane@example.com",
		},
	}}
	svc, _, orders, published := newTestService(gateway)

	first := svc.ConfirmPayment(context.Background(), "pi_5")
	second := svc.ConfirmPayment(context.Background(), "pi_5")

	assert.Equal(t, first, second)
	assert.Len(t, orders.orders, 1)
	assert.Equal(t, 1, *published)
}

func TestConfirmPaymentDiscardsSession(t *testing.T) {
	gateway := &fakeGateway{createResult: &payments.Intent{ID: "pi_7", ClientSecret: "secret"}}
	svc, sessions, _, _ := newTestService(gateway)

	session := completeWizard(t, svc, "single-lesson")
	_, err := svc.PaymentIntentForSession(context.Background(), session.ID)
	require.NoError(t, err)

	gateway.retrieveResult = &payments.Intent{
		ID:       "pi_7",
		Status:   "succeeded",
		Amount:   7000,
		Metadata: gateway.lastCreate.Metadata,
	}

	result := svc.ConfirmPayment(context.Background(), "pi_7")
	require.True(t, result.Success)
	_, ok := sessions.sessions[session.ID]
	assert.False(t, ok, "completed wizard session should be gone")
}

func TestConfirmPaymentKeepsSessionWhenNotSucceeded(t *testing.T) {
	gateway := &fakeGateway{createResult: &payments.Intent{ID: "pi_8", ClientSecret: "secret"}}
	svc, sessions, _, _ := newTestService(gateway)

	session := completeWizard(t, svc, "single-lesson")
	_, err := svc.PaymentIntentForSession(context.Background(), session.ID)
	require.NoError(t, err)

	gateway.retrieveResult = &payments.Intent{
		ID:       "pi_8",
		Status:   "requires_payment_method",
		Metadata: gateway.lastCreate.Metadata,
	}

	result := svc.ConfirmPayment(context.Background(), "pi_8")
	require.False(t, result.Success)
	_, ok := sessions.sessions[session.ID]
	assert.True(t, ok, "a failed attempt must keep the session alive for a retry")
}

func TestListOrdersPassesLimit(t *testing.T) {
	svc, _, orders, _ := newTestService(&fakeGateway{})
	orders.orders = []domain.Order{{ID: "ord-1", PaymentIntentID: "pi_1"}}

	listed, err := svc.ListOrders(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "pi_1", listed[0].PaymentIntentID)
}

func TestConfirmPaymentFallbackDisplayFields(t *testing.T) {
	gateway := &fakeGateway{retrieveResult: &payments.Intent{
		ID:           "pi_6",
		Status:       "succeeded",
		Amount:       7000,
		ReceiptEmail: "fallback@example.com",
	}}
	svc, _, _, _ := newTestService(gateway)

	result := svc.ConfirmPayment(context.Background(), "pi_6")
	require.True(t, result.Success)
	assert.Equal(t, "Chess Lessons", result.PlanName)
	assert.Equal(t, "fallback@example.com", result.Email)
}
