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

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("settings", h.Get)
	admin.PUT("settings", h.Update)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c)
	if err != nil {
		h.handleSettingsError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	settings, err := h.service.Update(c, req)
	if err != nil {
		h.handleSettingsError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) handleSettingsError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrVersionConflict):
		log.Warn("Settings version conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "Settings version conflict"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
