package interfaces

import (
	"context"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
)

// OrderRepository defines the contract for order data access. TransitionStatus
// is a compare-and-set: the status is updated only if it still equals from,
// and the number of affected rows is reported so callers can tell whether
// they won the transition.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Put(ctx context.Context, order *models.Order) error
	TransitionStatus(ctx context.Context, id string, from, to models.OrderStatus) (int64, error)
}

// PaymentRepository defines the contract for payment data access. Put assigns
// an identity on first insert and returns the committed record.
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Put(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*models.Payment, error)
}

// OrderItemRepository defines the contract for order line data access.
type OrderItemRepository interface {
	GetByID(ctx context.Context, id string) (*models.OrderItem, error)
	Put(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*models.OrderItem, error)
}

// EventPublisher emits domain events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}
