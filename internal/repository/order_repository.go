package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(36) PRIMARY KEY,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, status, created_at, updated_at FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "order", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Put(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET status = $2, updated_at = $4
	`, order.ID, order.Status, order.CreatedAt, order.UpdatedAt)
	return err
}

// TransitionStatus performs the conditional status update the coordinator
// relies on for its at-most-once transition guarantee.
func (r *OrderRepository) TransitionStatus(ctx context.Context, id string, from, to models.OrderStatus) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
