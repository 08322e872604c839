package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
	"github.com/akylbek/payment-system/order-coordinator/internal/repository"
)

func newOrderItemService() *OrderItemService {
	return NewOrderItemService(repository.NewMemoryOrderItemRepository(), zap.NewNop())
}

func TestAddOrderItemComputesLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice float64
		want      float64
	}{
		{name: "single unit", quantity: 1, unitPrice: 20.00, want: 20.00},
		{name: "multiple units", quantity: 3, unitPrice: 15.00, want: 45.00},
		{name: "free item", quantity: 2, unitPrice: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newOrderItemService()
			item, err := svc.AddOrderItem(context.Background(), "book-1", tt.quantity, tt.unitPrice)
			if err != nil {
				t.Fatalf("AddOrderItem returned error: %v", err)
			}
			if item.ID == "" {
				t.Error("expected order item to be assigned an identity")
			}
			if item.TotalPrice != tt.want {
				t.Errorf("total price = %v, want %v", item.TotalPrice, tt.want)
			}
		})
	}
}

func TestOrderItemLookupAndDelete(t *testing.T) {
	svc := newOrderItemService()
	ctx := context.Background()

	created, err := svc.AddOrderItem(ctx, "book-1", 2, 20.00)
	if err != nil {
		t.Fatalf("AddOrderItem returned error: %v", err)
	}

	got, err := svc.GetOrderItemByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetOrderItemByID returned error: %v", err)
	}
	if got.ID != created.ID || got.TotalPrice != 40.00 {
		t.Errorf("got %+v, want id %s with total 40.00", got, created.ID)
	}

	if err := svc.DeleteOrderItem(ctx, created.ID); err != nil {
		t.Fatalf("DeleteOrderItem returned error: %v", err)
	}
	if _, err := svc.GetOrderItemByID(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	if err := svc.DeleteOrderItem(ctx, "missing"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListOrderItems(t *testing.T) {
	svc := newOrderItemService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.AddOrderItem(ctx, "book-1", i+1, 10.00); err != nil {
			t.Fatalf("AddOrderItem returned error: %v", err)
		}
	}

	items, err := svc.ListOrderItems(ctx)
	if err != nil {
		t.Fatalf("ListOrderItems returned error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
}
