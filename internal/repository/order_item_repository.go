package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
)

type OrderItemRepository struct {
	db *sql.DB
}

func NewOrderItemRepository(db *sql.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) InitDB() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS order_items (
		id VARCHAR(36) PRIMARY KEY,
		product_id VARCHAR(36) NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL,
		total_price DOUBLE PRECISION NOT NULL
	)`)
	return err
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id string) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, product_id, quantity, unit_price, total_price
		FROM order_items WHERE id = $1
	`, id).Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "order item", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderItemRepository) Put(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items (id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			product_id = $2, quantity = $3, unit_price = $4, total_price = $5
	`, item.ID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *OrderItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &models.NotFoundError{Entity: "order item", ID: id}
	}
	return nil
}

func (r *OrderItemRepository) ListAll(ctx context.Context) ([]*models.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, quantity, unit_price, total_price FROM order_items
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
