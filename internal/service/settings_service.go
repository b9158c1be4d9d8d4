package service

import (
	"context"
	"encoding/json"

	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/repository"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, req model.UpdateSettingsRequest) (*model.Settings, error)
}

type SettingsServiceImpl struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{repo: repo}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*model.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsServiceImpl) Update(ctx context.Context, req model.UpdateSettingsRequest) (*model.Settings, error) {
	if !json.Valid(req.Document) {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Update(ctx, req.Document, req.ExpectedVersion)
}
