package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/order-coordinator/internal/interfaces"
)

type OrderHandler struct {
	orders interfaces.OrderRepository
}

func NewOrderHandler(orders interfaces.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
