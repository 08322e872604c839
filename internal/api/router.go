package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akylbek/payment-system/order-coordinator/internal/handlers"
	"github.com/akylbek/payment-system/order-coordinator/internal/interfaces"
	"github.com/akylbek/payment-system/order-coordinator/internal/service"
	"github.com/akylbek/payment-system/order-coordinator/internal/telemetry"
)

func NewRouter(
	coordinator *service.Coordinator,
	orderItems *service.OrderItemService,
	orders interfaces.OrderRepository,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "order-coordinator"})
	})

	paymentHandler := handlers.NewPaymentHandler(coordinator)
	orderHandler := handlers.NewOrderHandler(orders)
	itemHandler := handlers.NewOrderItemHandler(orderItems)

	// Order routes
	r.GET("/orders/:id", orderHandler.GetOrder)
	r.POST("/orders/:id/payments", paymentHandler.ProcessPayment)

	// Payment routes
	r.GET("/payments", paymentHandler.ListPayments)
	r.GET("/payments/:id", paymentHandler.GetPayment)
	r.PUT("/payments/:id", paymentHandler.UpdatePayment)
	r.DELETE("/payments/:id", paymentHandler.DeletePayment)

	// Order item routes
	r.POST("/order-items", itemHandler.AddOrderItem)
	r.GET("/order-items", itemHandler.ListOrderItems)
	r.GET("/order-items/:id", itemHandler.GetOrderItem)
	r.DELETE("/order-items/:id", itemHandler.DeleteOrderItem)

	return r
}
