package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

// ContactMessageRepository archives delivered contact form submissions.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *domain.ArchivedContactMessage) error
}

type contactMessageRepository struct {
	pool *pgxpool.Pool
}

// NewContactMessageRepository returns a Postgres-backed implementation.
func NewContactMessageRepository(pool *pgxpool.Pool) ContactMessageRepository {
	return &contactMessageRepository{pool: pool}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *domain.ArchivedContactMessage) error {
	if r.pool == nil {
		return nil
	}

	const query = `
        INSERT INTO contact_messages (name, email, subject, message, delivery_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.DeliveryID,
	).Scan(&msg.ID, &msg.CreatedAt)
}
