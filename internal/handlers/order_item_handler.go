package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
	"github.com/akylbek/payment-system/order-coordinator/internal/service"
	"github.com/akylbek/payment-system/order-coordinator/internal/telemetry"
)

type OrderItemHandler struct {
	items *service.OrderItemService
}

func NewOrderItemHandler(items *service.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{items: items}
}

type addOrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (h *OrderItemHandler) AddOrderItem(c *gin.Context) {
	var req addOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Error("Error decoding order item request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ProductID == "" || req.Quantity <= 0 || req.UnitPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id, positive quantity and non-negative unit_price are required"})
		return
	}

	item, err := h.items.AddOrderItem(c.Request.Context(), req.ProductID, req.Quantity, req.UnitPrice)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *OrderItemHandler) GetOrderItem(c *gin.Context) {
	item, err := h.items.GetOrderItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) ListOrderItems(c *gin.Context) {
	items, err := h.items.ListOrderItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []*models.OrderItem{}
	}

	c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) DeleteOrderItem(c *gin.Context) {
	if err := h.items.DeleteOrderItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
