package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/order-coordinator/internal/interfaces"
	"github.com/akylbek/payment-system/order-coordinator/internal/lock"
	"github.com/akylbek/payment-system/order-coordinator/internal/metrics"
	"github.com/akylbek/payment-system/order-coordinator/internal/models"
)

// Coordinator owns the consistency rules between an order and its payments:
// a payment is only created against a PENDING order, a COMPLETED payment
// ships its order exactly once, and a completed order-linked payment cannot
// be deleted. It holds no state between calls; every write goes through the
// repositories, and writes touching an order happen under that order's lock.
type Coordinator struct {
	orders    interfaces.OrderRepository
	payments  interfaces.PaymentRepository
	locker    lock.Locker
	publisher interfaces.EventPublisher
	logger    *zap.Logger
}

func NewCoordinator(
	orders interfaces.OrderRepository,
	payments interfaces.PaymentRepository,
	locker lock.Locker,
	publisher interfaces.EventPublisher,
	logger *zap.Logger,
) *Coordinator {
	return &Coordinator{
		orders:    orders,
		payments:  payments,
		locker:    locker,
		publisher: publisher,
		logger:    logger,
	}
}

func orderLockKey(orderID string) string {
	return fmt.Sprintf("order_lock:%s", orderID)
}

// ProcessPayment creates a payment for the given order. The order must exist
// and be PENDING. When the new payment is already COMPLETED the order is
// shipped in the same critical section.
func (c *Coordinator) ProcessPayment(ctx context.Context, orderID string, draft models.PaymentDraft) (*models.Payment, error) {
	release, err := c.locker.Acquire(ctx, orderLockKey(orderID))
	if err != nil {
		return nil, fmt.Errorf("failed to acquire order lock: %w", err)
	}
	defer release()

	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, &models.InvalidStateError{
			Entity: "order",
			ID:     orderID,
			State:  string(order.Status),
			Reason: "payments can only be processed for pending orders",
		}
	}

	payment := &models.Payment{
		OrderID:         orderID,
		Method:          draft.Method,
		Status:          draft.Status,
		Amount:          draft.Amount,
		ReferenceNumber: draft.ReferenceNumber,
		PaymentDate:     time.Now(),
	}

	saved, err := c.payments.Put(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to persist payment for order %s: %w", orderID, err)
	}

	metrics.PaymentsProcessed.WithLabelValues(string(saved.Status)).Inc()
	c.publishPaymentEvent(ctx, saved)

	c.logger.Info("Payment processed",
		zap.String("payment_id", saved.ID),
		zap.String("order_id", orderID),
		zap.String("status", string(saved.Status)),
		zap.Float64("amount", saved.Amount),
	)

	if saved.Status == models.PaymentStatusCompleted {
		if err := c.propagateCompletion(ctx, orderID, saved.ID); err != nil {
			return nil, err
		}
	}

	return saved, nil
}

// GetPaymentByID returns the payment or a NotFoundError.
func (c *Coordinator) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	return c.payments.GetByID(ctx, id)
}

// ListPayments returns every persisted payment in storage order.
func (c *Coordinator) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return c.payments.ListAll(ctx)
}

// UpdatePayment replaces the mutable fields of an existing payment and
// re-stamps its date. Identity and order linkage are never touched. If the
// updated payment is COMPLETED and linked to an order, the completion is
// propagated without re-checking the order's status; re-confirming an
// already shipped order is a no-op, not an error.
func (c *Coordinator) UpdatePayment(ctx context.Context, id string, draft models.PaymentDraft) (*models.Payment, error) {
	existing, err := c.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.OrderID != "" {
		release, err := c.locker.Acquire(ctx, orderLockKey(existing.OrderID))
		if err != nil {
			return nil, fmt.Errorf("failed to acquire order lock: %w", err)
		}
		defer release()
	}

	existing.Method = draft.Method
	existing.Status = draft.Status
	existing.Amount = draft.Amount
	existing.ReferenceNumber = draft.ReferenceNumber
	existing.PaymentDate = time.Now()

	saved, err := c.payments.Put(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to persist payment %s: %w", id, err)
	}

	c.publishPaymentEvent(ctx, saved)

	c.logger.Info("Payment updated",
		zap.String("payment_id", saved.ID),
		zap.String("order_id", saved.OrderID),
		zap.String("status", string(saved.Status)),
	)

	if saved.OrderID != "" && saved.Status == models.PaymentStatusCompleted {
		if err := c.propagateCompletion(ctx, saved.OrderID, saved.ID); err != nil {
			// The payment write has already committed; the split state is
			// surfaced rather than hidden behind a successful response.
			c.logger.Error("Order propagation failed after committed payment update",
				zap.String("payment_id", saved.ID),
				zap.String("order_id", saved.OrderID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	return saved, nil
}

// DeletePayment removes a payment unless it is COMPLETED and linked to an
// order, in which case deleting it would falsify the order's history.
func (c *Coordinator) DeletePayment(ctx context.Context, id string) error {
	payment, err := c.payments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if payment.OrderID != "" && payment.Status == models.PaymentStatusCompleted {
		return &models.InvalidStateError{
			Entity: "payment",
			ID:     id,
			State:  string(payment.Status),
			Reason: "completed payments attached to an order cannot be deleted",
		}
	}

	if err := c.payments.Delete(ctx, id); err != nil {
		return err
	}

	c.logger.Info("Payment deleted",
		zap.String("payment_id", id),
		zap.String("order_id", payment.OrderID),
	)
	return nil
}

// propagateCompletion is the single cross-aggregate transition: it ships a
// PENDING order after one of its payments completed. The conditional update
// guarantees the transition happens at most once; losing the race, or an
// order that already left PENDING, is a no-op.
func (c *Coordinator) propagateCompletion(ctx context.Context, orderID, paymentID string) error {
	rows, err := c.orders.TransitionStatus(ctx, orderID, models.OrderStatusPending, models.OrderStatusShipped)
	if err != nil {
		metrics.OrderTransitions.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to transition order %s to %s: %w", orderID, models.OrderStatusShipped, err)
	}

	if rows == 0 {
		metrics.OrderTransitions.WithLabelValues("noop").Inc()
		c.logger.Debug("Order transition skipped, order not pending",
			zap.String("order_id", orderID),
			zap.String("payment_id", paymentID),
		)
		return nil
	}

	metrics.OrderTransitions.WithLabelValues("shipped").Inc()

	event := models.OrderStatusEvent{
		Type:           models.EventTypeOrderStatusChanged,
		OrderID:        orderID,
		Status:         models.OrderStatusShipped,
		PreviousStatus: models.OrderStatusPending,
		PaymentID:      paymentID,
		Timestamp:      time.Now(),
	}
	if err := c.publisher.Publish(ctx, orderID, event); err != nil {
		c.logger.Error("Failed to publish order status event",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}

	c.logger.Info("Order shipped",
		zap.String("order_id", orderID),
		zap.String("payment_id", paymentID),
	)
	return nil
}

func (c *Coordinator) publishPaymentEvent(ctx context.Context, payment *models.Payment) {
	event := models.PaymentEvent{
		Type:      models.EventTypePaymentProcessed,
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Status:    payment.Status,
		Amount:    payment.Amount,
		Timestamp: time.Now(),
	}

	key := payment.OrderID
	if key == "" {
		key = payment.ID
	}
	if err := c.publisher.Publish(ctx, key, event); err != nil {
		c.logger.Error("Failed to publish payment event",
			zap.String("payment_id", payment.ID),
			zap.Error(err),
		)
	}
}
