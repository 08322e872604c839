package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/order-coordinator/internal/interfaces"
	"github.com/akylbek/payment-system/order-coordinator/internal/models"
)

// OrderItemService manages purchase lines. The line total is plain
// arithmetic; there are no cross-aggregate rules here.
type OrderItemService struct {
	items  interfaces.OrderItemRepository
	logger *zap.Logger
}

func NewOrderItemService(items interfaces.OrderItemRepository, logger *zap.Logger) *OrderItemService {
	return &OrderItemService{items: items, logger: logger}
}

func (s *OrderItemService) AddOrderItem(ctx context.Context, productID string, quantity int, unitPrice float64) (*models.OrderItem, error) {
	item := &models.OrderItem{
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: float64(quantity) * unitPrice,
	}

	saved, err := s.items.Put(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order item added",
		zap.String("order_item_id", saved.ID),
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Float64("total_price", saved.TotalPrice),
	)
	return saved, nil
}

func (s *OrderItemService) GetOrderItemByID(ctx context.Context, id string) (*models.OrderItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *OrderItemService) ListOrderItems(ctx context.Context) ([]*models.OrderItem, error) {
	return s.items.ListAll(ctx)
}

func (s *OrderItemService) DeleteOrderItem(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Order item deleted", zap.String("order_item_id", id))
	return nil
}
