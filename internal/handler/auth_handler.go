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

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/auth/login", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Login(c, req)
	if err != nil {
		log := logger.WithComponent("handler").With(zap.String("operation", "Login"), zap.Error(err))
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			log.Warn("Invalid credentials", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
