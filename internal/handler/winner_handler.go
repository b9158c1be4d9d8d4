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

type WinnerHandler struct {
	service service.WinnerService
}

func NewWinnerHandler(service service.WinnerService) *WinnerHandler {
	return &WinnerHandler{service: service}
}

func (h *WinnerHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("winners", h.List)
	admin.DELETE("winners/:id", h.Delete)
	admin.POST("raffles/:id/draw", h.Draw)
	admin.POST("raffles/:id/winner", h.ConfirmWinner)
	admin.GET("raffles/:id/winners", h.ListByRaffle)
}

func (h *WinnerHandler) List(c *gin.Context) {
	winners, err := h.service.List(c)
	if err != nil {
		h.handleWinnerError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, winners)
}

func (h *WinnerHandler) ListByRaffle(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	winners, err := h.service.ListByRaffle(c, id)
	if err != nil {
		h.handleWinnerError(c, err, "ListByRaffle")
		return
	}
	c.JSON(http.StatusOK, winners)
}

func (h *WinnerHandler) Draw(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	candidate, err := h.service.Draw(c, id)
	if err != nil {
		h.handleWinnerError(c, err, "Draw")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *WinnerHandler) ConfirmWinner(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req model.ConfirmWinnerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	winner, err := h.service.ConfirmWinner(c, id, req.TicketNumber)
	if err != nil {
		h.handleWinnerError(c, err, "ConfirmWinner")
		return
	}
	c.JSON(http.StatusCreated, winner)
}

func (h *WinnerHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleWinnerError(c, err, "Delete")
		return
	}
	c.Status(http.StatusOK)
}

func (h *WinnerHandler) handleWinnerError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRaffleNotFound):
		log.Warn("Raffle not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
	case errors.Is(err, apperrors.ErrRaffleNotFinished):
		log.Warn("Raffle not finished")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Raffle not finished"})
	case errors.Is(err, apperrors.ErrNoTicketsOccupied):
		log.Warn("No tickets occupied")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No tickets occupied"})
	case errors.Is(err, apperrors.ErrTicketsUnavailable):
		log.Warn("Ticket not occupied")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket not occupied"})
	case errors.Is(err, apperrors.ErrWinnerNotFound):
		log.Warn("Winner not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Winner not found"})
	case errors.Is(err, apperrors.ErrOrderNotFound):
		log.Warn("Order not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
