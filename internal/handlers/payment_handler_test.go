package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/order-coordinator/internal/lock"
	"github.com/akylbek/payment-system/order-coordinator/internal/models"
	"github.com/akylbek/payment-system/order-coordinator/internal/repository"
	"github.com/akylbek/payment-system/order-coordinator/internal/service"
	"github.com/akylbek/payment-system/order-coordinator/internal/telemetry"
)

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, key string, event any) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryOrderRepository, *repository.MemoryPaymentRepository) {
	t.Helper()
	telemetry.Logger = zap.NewNop()
	gin.SetMode(gin.TestMode)

	orders := repository.NewMemoryOrderRepository()
	payments := repository.NewMemoryPaymentRepository()
	coordinator := service.NewCoordinator(orders, payments, lock.NewMemoryLocker(), noopPublisher{}, zap.NewNop())

	r := gin.New()
	h := NewPaymentHandler(coordinator)
	r.POST("/orders/:id/payments", h.ProcessPayment)
	r.GET("/payments/:id", h.GetPayment)
	r.GET("/payments", h.ListPayments)
	r.PUT("/payments/:id", h.UpdatePayment)
	r.DELETE("/payments/:id", h.DeletePayment)
	return r, orders, payments
}

func seedOrder(t *testing.T, orders *repository.MemoryOrderRepository, status models.OrderStatus) string {
	t.Helper()
	order := &models.Order{Status: status}
	if err := orders.Put(context.Background(), order); err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order.ID
}

func TestProcessPaymentEndpoint(t *testing.T) {
	r, orders, _ := newTestRouter(t)
	orderID := seedOrder(t, orders, models.OrderStatusPending)

	body := `{"method":"CARD","status":"COMPLETED","amount":20.00}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/payments", strings.NewReader(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var payment models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &payment); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payment.OrderID != orderID || payment.Status != models.PaymentStatusCompleted {
		t.Errorf("unexpected payment in response: %+v", payment)
	}
}

func TestProcessPaymentEndpointErrors(t *testing.T) {
	r, orders, _ := newTestRouter(t)
	shippedID := seedOrder(t, orders, models.OrderStatusShipped)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "missing order", path: "/orders/missing/payments", body: `{"method":"CARD","status":"COMPLETED"}`, want: http.StatusNotFound},
		{name: "shipped order", path: "/orders/" + shippedID + "/payments", body: `{"method":"CARD","status":"COMPLETED"}`, want: http.StatusConflict},
		{name: "malformed body", path: "/orders/" + shippedID + "/payments", body: `{`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestDeletePaymentEndpoint(t *testing.T) {
	r, orders, payments := newTestRouter(t)
	orderID := seedOrder(t, orders, models.OrderStatusPending)

	locked, err := payments.Put(context.Background(), &models.Payment{
		OrderID: orderID,
		Method:  "CARD",
		Status:  models.PaymentStatusCompleted,
		Amount:  20.00,
	})
	if err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/payments/"+locked.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("deleting locked payment: status = %d, want %d", w.Code, http.StatusConflict)
	}

	// The locked payment must still be retrievable.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/payments/"+locked.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fetching locked payment: status = %d, want %d", w.Code, http.StatusOK)
	}

	pending, err := payments.Put(context.Background(), &models.Payment{
		OrderID: orderID,
		Method:  "CARD",
		Status:  models.PaymentStatusPending,
		Amount:  20.00,
	})
	if err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/payments/"+pending.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("deleting pending payment: status = %d, want %d", w.Code, http.StatusNoContent)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/payments/"+pending.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("fetching deleted payment: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetPaymentEndpointNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/missing", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
