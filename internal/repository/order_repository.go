package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

// OrderRepository defines persistence access for completed orders.
type OrderRepository interface {
	// RecordOnce inserts the order unless one already exists for the same
	// payment intent id. Reports whether a row was written.
	RecordOnce(ctx context.Context, order *domain.Order) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) RecordOnce(ctx context.Context, order *domain.Order) (bool, error) {
	if r.pool == nil {
		return false, nil
	}

	const query = `
        INSERT INTO orders (payment_intent_id, plan_id, plan_name, amount_cents,
            customer_name, customer_email, customer_phone, experience)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (payment_intent_id) DO NOTHING`

	cmd, err := r.pool.Exec(ctx, query,
		order.PaymentIntentID,
		order.PlanID,
		order.PlanName,
		order.AmountCents,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.Experience,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	if r.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	const query = `
        SELECT id, payment_intent_id, plan_id, plan_name, amount_cents,
            customer_name, customer_email, customer_phone, experience, created_at
        FROM orders ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID,
			&o.PaymentIntentID,
			&o.PlanID,
			&o.PlanName,
			&o.AmountCents,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.CustomerPhone,
			&o.Experience,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
