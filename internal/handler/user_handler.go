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

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("users", h.List)
	admin.POST("users", h.Create)
	admin.GET("users/:id", h.Get)
	admin.PATCH("users/:id", h.Update)
	admin.DELETE("users/:id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c)
	if err != nil {
		h.handleUserError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Create(c, req)
	if err != nil {
		h.handleUserError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	user, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleUserError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var params model.UpdateUserParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	user, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleUserError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleUserError(c, err, "Delete")
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
