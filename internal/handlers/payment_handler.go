package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/order-coordinator/internal/models"
	"github.com/akylbek/payment-system/order-coordinator/internal/service"
	"github.com/akylbek/payment-system/order-coordinator/internal/telemetry"
)

type PaymentHandler struct {
	coordinator *service.Coordinator
}

func NewPaymentHandler(coordinator *service.Coordinator) *PaymentHandler {
	return &PaymentHandler{coordinator: coordinator}
}

// writeError maps the coordinator's failure taxonomy to HTTP statuses:
// NotFound -> 404, InvalidState -> 409, anything else -> 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		telemetry.Logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	orderID := c.Param("id")

	var draft models.PaymentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		telemetry.Logger.Error("Error decoding payment draft", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.coordinator.ProcessPayment(c.Request.Context(), orderID, draft)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.coordinator.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.coordinator.ListPayments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var draft models.PaymentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		telemetry.Logger.Error("Error decoding payment draft", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.coordinator.UpdatePayment(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.coordinator.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
