package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/luckysnap/backend/internal/model"
	repomocks "github.com/luckysnap/backend/internal/repository/mocks"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsRejectsInvalidJSON(t *testing.T) {
	repo := repomocks.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo)

	_, err := svc.Update(context.Background(), model.UpdateSettingsRequest{
		Document: json.RawMessage(`{"broken":`),
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateSettingsDelegates(t *testing.T) {
	repo := repomocks.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo)

	doc := json.RawMessage(`{"site_name":"Lucky Snap"}`)
	version := 3
	stored := &model.Settings{ID: model.SettingsID, Document: doc, Version: 4}

	repo.EXPECT().Update(mock.Anything, doc, &version).Return(stored, nil).Once()

	settings, err := svc.Update(context.Background(), model.UpdateSettingsRequest{
		Document:        doc,
		ExpectedVersion: &version,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, settings.Version)
}

func TestUpdateSettingsVersionConflict(t *testing.T) {
	repo := repomocks.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo)

	doc := json.RawMessage(`{}`)
	version := 1
	repo.EXPECT().Update(mock.Anything, doc, &version).
		Return(nil, apperrors.ErrVersionConflict).Once()

	_, err := svc.Update(context.Background(), model.UpdateSettingsRequest{
		Document:        doc,
		ExpectedVersion: &version,
	})

	assert.ErrorIs(t, err, apperrors.ErrVersionConflict)
}

func TestGetSettings(t *testing.T) {
	repo := repomocks.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo)

	stored := &model.Settings{ID: model.SettingsID, Version: 1}
	repo.EXPECT().Get(mock.Anything).Return(stored, nil).Once()

	settings, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, settings)
}
