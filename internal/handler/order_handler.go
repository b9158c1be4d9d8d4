package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/service"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(service service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("orders", h.CreateOrder)
	public.GET("orders/folio/:folio", h.GetOrderByFolio)

	admin.GET("orders", h.GetOrders)
	admin.GET("orders/:id", h.GetOrder)
	admin.PUT("orders/:id/paid", h.MarkPaid)
	admin.PUT("orders/:id/cancel", h.CancelOrder)
	admin.DELETE("orders/:id", h.DeleteOrder)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var orderReq model.CreateOrderRequest
	if err := BindJson(c, &orderReq); err != nil {
		return
	}

	created, err := h.service.CreateOrder(c, orderReq)
	if err != nil {
		h.handleOrderError(c, err, "CreateOrder")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) GetOrderByFolio(c *gin.Context) {
	order, err := h.service.GetOrderByFolio(c, c.Param("folio"))
	if err != nil {
		h.handleOrderError(c, err, "GetOrderByFolio")
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.service.OrderList(c)
	if err != nil {
		h.handleOrderError(c, err, "GetOrders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrderByID(c, id)
	if err != nil {
		h.handleOrderError(c, err, "GetOrder")
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) MarkPaid(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.service.MarkPaid(c, id); err != nil {
		h.handleOrderError(c, err, "MarkPaid")
		return
	}

	c.Status(http.StatusOK)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.service.CancelOrder(c, id); err != nil {
		h.handleOrderError(c, err, "CancelOrder")
		return
	}

	c.Status(http.StatusOK)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(c, id); err != nil {
		h.handleOrderError(c, err, "DeleteOrder")
		return
	}

	c.Status(http.StatusOK)
}

func (h *OrderHandler) handleOrderError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrTicketsUnavailable):
		log.Warn("Tickets unavailable")
		c.JSON(http.StatusConflict, gin.H{"error": "Tickets unavailable"})
	case errors.Is(err, apperrors.ErrTicketOutOfRange):
		log.Warn("Ticket number out of range")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket number out of range"})
	case errors.Is(err, apperrors.ErrRaffleNotFound):
		log.Warn("Raffle not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
	case errors.Is(err, apperrors.ErrRaffleNotActive):
		log.Warn("Raffle not active")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Raffle not active"})
	case errors.Is(err, apperrors.ErrOrderNotFound):
		log.Warn("Order not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		log.Warn("Invalid status transition")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
