package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
)

// In-memory repositories backing local runs (no DATABASE_URL) and tests.
// They hold copies, never the caller's pointers, so records cannot be
// mutated behind the store's back.

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "order", ID: id}
	}
	return &order, nil
}

func (r *MemoryOrderRepository) Put(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryOrderRepository) TransitionStatus(ctx context.Context, id string, from, to models.OrderStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok || order.Status != from {
		return 0, nil
	}
	order.Status = to
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return 1, nil
}

type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]models.Payment
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{payments: make(map[string]models.Payment)}
}

func (r *MemoryPaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payment, ok := r.payments[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "payment", ID: id}
	}
	return &payment, nil
}

func (r *MemoryPaymentRepository) Put(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	r.payments[payment.ID] = *payment
	saved := *payment
	return &saved, nil
}

func (r *MemoryPaymentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[id]; !ok {
		return &models.NotFoundError{Entity: "payment", ID: id}
	}
	delete(r.payments, id)
	return nil
}

func (r *MemoryPaymentRepository) ListAll(ctx context.Context) ([]*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payments := make([]*models.Payment, 0, len(r.payments))
	for _, payment := range r.payments {
		p := payment
		payments = append(payments, &p)
	}
	return payments, nil
}

type MemoryOrderItemRepository struct {
	mu    sync.RWMutex
	items map[string]models.OrderItem
}

func NewMemoryOrderItemRepository() *MemoryOrderItemRepository {
	return &MemoryOrderItemRepository{items: make(map[string]models.OrderItem)}
}

func (r *MemoryOrderItemRepository) GetByID(ctx context.Context, id string) (*models.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "order item", ID: id}
	}
	return &item, nil
}

func (r *MemoryOrderItemRepository) Put(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.items[item.ID] = *item
	saved := *item
	return &saved, nil
}

func (r *MemoryOrderItemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return &models.NotFoundError{Entity: "order item", ID: id}
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryOrderItemRepository) ListAll(ctx context.Context) ([]*models.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]*models.OrderItem, 0, len(r.items))
	for _, item := range r.items {
		i := item
		items = append(items, &i)
	}
	return items, nil
}
