package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

func newSessionRepo(t *testing.T, ttl time.Duration) (CheckoutSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCheckoutSessionRepository(client, ttl), m
}

func TestSessionRoundTrip(t *testing.T) {
	repo, _ := newSessionRepo(t, time.Hour)
	ctx := context.Background()

	session := &domain.CheckoutSession{
		ID:     "sess-1",
		Step:   domain.StepCustomerDetails,
		PlanID: "5-lessons",
		Details: domain.CustomerDetails{
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane@example.com",
			Phone:      "555-0100",
			Experience: domain.ExperienceIntermediate,
		},
	}
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.Step, loaded.Step)
	assert.Equal(t, session.PlanID, loaded.PlanID)
	assert.Equal(t, session.Details, loaded.Details)
}

func TestSessionSaveSetsTTL(t *testing.T) {
	repo, m := newSessionRepo(t, 2*time.Hour)

	session := &domain.CheckoutSession{ID: "sess-2", Step: domain.StepSelectPlan}
	require.NoError(t, repo.Save(context.Background(), session))

	assert.Equal(t, 2*time.Hour, m.TTL("checkout:session:sess-2"))
}

func TestSessionSaveRefreshesTTL(t *testing.T) {
	repo, m := newSessionRepo(t, 2*time.Hour)
	ctx := context.Background()

	session := &domain.CheckoutSession{ID: "sess-3", Step: domain.StepSelectPlan}
	require.NoError(t, repo.Save(ctx, session))

	m.FastForward(90 * time.Minute)
	require.Equal(t, 30*time.Minute, m.TTL("checkout:session:sess-3"))

	// every write restarts the expiry clock
	session.PlanID = "single-lesson"
	require.NoError(t, repo.Save(ctx, session))
	assert.Equal(t, 2*time.Hour, m.TTL("checkout:session:sess-3"))
}

func TestSessionExpiresAfterTTL(t *testing.T) {
	repo, m := newSessionRepo(t, time.Hour)
	ctx := context.Background()

	session := &domain.CheckoutSession{ID: "sess-4", Step: domain.StepSelectPlan}
	require.NoError(t, repo.Save(ctx, session))

	m.FastForward(time.Hour + time.Second)

	_, err := repo.Get(ctx, "sess-4")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionDelete(t *testing.T) {
	repo, _ := newSessionRepo(t, time.Hour)
	ctx := context.Background()

	session := &domain.CheckoutSession{ID: "sess-5", Step: domain.StepSelectPlan}
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, "sess-5"))

	_, err := repo.Get(ctx, "sess-5")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
