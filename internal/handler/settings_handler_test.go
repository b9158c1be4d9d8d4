package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luckysnap/backend/internal/model"
	servicemocks "github.com/luckysnap/backend/internal/service/mocks"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSettingsHandler(t *testing.T) (*gin.Engine, *servicemocks.MockSettingsService) {
	svc := servicemocks.NewMockSettingsService(t)
	r, public, admin := newTestRouter()
	NewSettingsHandler(svc).RegisterRoutes(public, admin)
	return r, svc
}

func TestGetSettingsEndpoint(t *testing.T) {
	r, svc := setupSettingsHandler(t)

	stored := &model.Settings{
		ID:       model.SettingsID,
		Document: json.RawMessage(`{"site_name":"Lucky Snap"}`),
		Version:  2,
	}
	svc.EXPECT().Get(mock.Anything).Return(stored, nil).Once()

	w := performRequest(t, r, http.MethodGet, "/api/public/settings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.Settings
	decodeBody(t, w, &got)
	assert.Equal(t, 2, got.Version)
}

func TestUpdateSettingsEndpoint(t *testing.T) {
	r, svc := setupSettingsHandler(t)

	updated := &model.Settings{ID: model.SettingsID, Version: 3}
	svc.EXPECT().Update(mock.Anything, mock.Anything).Return(updated, nil).Once()

	w := performRequest(t, r, http.MethodPut, "/api/admin/settings", map[string]interface{}{
		"document":         map[string]string{"site_name": "Lucky Snap"},
		"expected_version": 2,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSettingsEndpointVersionConflict(t *testing.T) {
	r, svc := setupSettingsHandler(t)

	svc.EXPECT().Update(mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrVersionConflict).Once()

	w := performRequest(t, r, http.MethodPut, "/api/admin/settings", map[string]interface{}{
		"document":         map[string]string{"site_name": "Lucky Snap"},
		"expected_version": 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}
