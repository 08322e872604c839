package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS payments (
			id VARCHAR(36) PRIMARY KEY,
			order_id VARCHAR(36),
			method VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			reference_number VARCHAR(100),
			payment_date TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order_id ON payments(order_id)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	var orderID sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, method, status, amount, reference_number, payment_date
		FROM payments WHERE id = $1
	`, id).Scan(&payment.ID, &orderID, &payment.Method, &payment.Status,
		&payment.Amount, &payment.ReferenceNumber, &payment.PaymentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "payment", ID: id}
	}
	if err != nil {
		return nil, err
	}
	payment.OrderID = orderID.String
	return &payment, nil
}

// Put inserts the payment, assigning an identity on first insert. The update
// branch deliberately leaves order_id untouched: a payment is never
// reassigned to another order.
func (r *PaymentRepository) Put(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	var orderID sql.NullString
	if payment.OrderID != "" {
		orderID = sql.NullString{String: payment.OrderID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (id, order_id, method, status, amount, reference_number, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			method = $3, status = $4, amount = $5, reference_number = $6, payment_date = $7
	`, payment.ID, orderID, payment.Method, payment.Status,
		payment.Amount, payment.ReferenceNumber, payment.PaymentDate)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &models.NotFoundError{Entity: "payment", ID: id}
	}
	return nil
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]*models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, method, status, amount, reference_number, payment_date
		FROM payments
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var payment models.Payment
		var orderID sql.NullString
		if err := rows.Scan(&payment.ID, &orderID, &payment.Method, &payment.Status,
			&payment.Amount, &payment.ReferenceNumber, &payment.PaymentDate); err != nil {
			return nil, err
		}
		payment.OrderID = orderID.String
		payments = append(payments, &payment)
	}
	return payments, rows.Err()
}
