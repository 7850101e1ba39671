package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

// ErrSessionNotFound is returned when a checkout session is missing or expired.
var ErrSessionNotFound = errors.New("checkout session not found")

// CheckoutSessionRepository stores wizard sessions with a TTL. Sessions are
// transient; they never touch the database.
type CheckoutSessionRepository interface {
	Save(ctx context.Context, session *domain.CheckoutSession) error
	Get(ctx context.Context, id string) (*domain.CheckoutSession, error)
	Delete(ctx context.Context, id string) error
}

type checkoutSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckoutSessionRepository returns a Redis-backed implementation.
func NewCheckoutSessionRepository(client *redis.Client, ttl time.Duration) CheckoutSessionRepository {
	return &checkoutSessionRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "checkout:session:" + id
}

// Save writes the session and refreshes its TTL.
func (r *checkoutSessionRepository) Save(ctx context.Context, session *domain.CheckoutSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.ID), payload, r.ttl).Err()
}

func (r *checkoutSessionRepository) Get(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session domain.CheckoutSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *checkoutSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
