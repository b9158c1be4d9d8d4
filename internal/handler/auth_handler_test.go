package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luckysnap/backend/internal/model"
	servicemocks "github.com/luckysnap/backend/internal/service/mocks"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthHandler(t *testing.T) (*gin.Engine, *servicemocks.MockAuthService) {
	svc := servicemocks.NewMockAuthService(t)
	r := gin.New()
	NewAuthHandler(svc).RegisterRoutes(r)
	return r, svc
}

func TestLoginEndpoint(t *testing.T) {
	r, svc := setupAuthHandler(t)

	resp := &model.LoginResponse{Token: "signed-token", ExpiresAt: time.Now().Add(time.Hour)}
	svc.EXPECT().Login(mock.Anything, mock.Anything).Return(resp, nil).Once()

	w := performRequest(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "hunter2",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.LoginResponse
	decodeBody(t, w, &got)
	assert.Equal(t, "signed-token", got.Token)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	r, svc := setupAuthHandler(t)

	svc.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := performRequest(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpointMissingFields(t *testing.T) {
	r, _ := setupAuthHandler(t)

	w := performRequest(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
