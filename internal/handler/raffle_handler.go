package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/service"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
)

type RaffleHandler struct {
	service service.RaffleService
}

func NewRaffleHandler(service service.RaffleService) *RaffleHandler {
	return &RaffleHandler{service: service}
}

func (h *RaffleHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("raffles/active", h.ListActive)
	public.GET("raffles/slug/:slug", h.GetBySlug)
	public.GET("raffles/:id", h.GetByPublicID)
	public.GET("raffles/:id/occupied-tickets", h.OccupiedTickets)

	admin.GET("raffles", h.List)
	admin.POST("raffles", h.Create)
	admin.GET("raffles/:id", h.Get)
	admin.PATCH("raffles/:id", h.Update)
	admin.PUT("raffles/:id/activate", h.Activate)
	admin.PUT("raffles/:id/finish", h.Finish)
	admin.DELETE("raffles/:id", h.Delete)
}

func (h *RaffleHandler) ListActive(c *gin.Context) {
	raffles, err := h.service.ListActive(c)
	if err != nil {
		h.handleRaffleError(c, err, "ListActive")
		return
	}
	c.JSON(http.StatusOK, raffles)
}

func (h *RaffleHandler) GetBySlug(c *gin.Context) {
	raffle, err := h.service.GetBySlug(c, c.Param("slug"))
	if err != nil {
		h.handleRaffleError(c, err, "GetBySlug")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) GetByPublicID(c *gin.Context) {
	raffleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	raffle, err := h.service.GetByRaffleID(c, raffleID)
	if err != nil {
		h.handleRaffleError(c, err, "GetByPublicID")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) OccupiedTickets(c *gin.Context) {
	raffleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	occupied, err := h.service.OccupiedTickets(c, raffleID)
	if err != nil {
		h.handleRaffleError(c, err, "OccupiedTickets")
		return
	}
	c.JSON(http.StatusOK, occupied)
}

func (h *RaffleHandler) List(c *gin.Context) {
	raffles, err := h.service.List(c)
	if err != nil {
		h.handleRaffleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, raffles)
}

func (h *RaffleHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	raffle, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleRaffleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) Create(c *gin.Context) {
	var req model.CreateRaffleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	raffle, err := h.service.Create(c, req)
	if err != nil {
		h.handleRaffleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, raffle)
}

func (h *RaffleHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var params model.UpdateRaffleParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	raffle, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleRaffleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) Activate(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	raffle, err := h.service.Activate(c, id)
	if err != nil {
		h.handleRaffleError(c, err, "Activate")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) Finish(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	raffle, err := h.service.Finish(c, id)
	if err != nil {
		h.handleRaffleError(c, err, "Finish")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *RaffleHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleRaffleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusOK)
}

func (h *RaffleHandler) handleRaffleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrRaffleNotFound):
		log.Warn("Raffle not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Raffle not found"})
	case errors.Is(err, apperrors.ErrSlugTaken):
		log.Warn("Slug already in use")
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
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
