package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luckysnap/backend/internal/model"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	// Update replaces the document. When expectedVersion is non-nil the write
	// only succeeds against that stored version. The version only advances
	// when the document actually changes, so identical writes are idempotent.
	Update(ctx context.Context, document json.RawMessage, expectedVersion *int) (*model.Settings, error)
}

type SettingsRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &SettingsRepositoryImpl{
		pool: pool,
	}
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context) (*model.Settings, error) {
	query := `
		SELECT id, document, version, updated_at
		FROM settings
		WHERE id = $1
	`

	var settings model.Settings
	err := r.pool.QueryRow(ctx, query, model.SettingsID).Scan(
		&settings.ID,
		&settings.Document,
		&settings.Version,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &settings, nil
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, document json.RawMessage, expectedVersion *int) (*model.Settings, error) {
	query := `
		UPDATE settings
		SET document = $2,
			version = version + CASE WHEN document IS DISTINCT FROM $2 THEN 1 ELSE 0 END,
			updated_at = now()
		WHERE id = $1
	`
	args := []interface{}{model.SettingsID, document}

	if expectedVersion != nil {
		query += ` AND version = $3`
		args = append(args, *expectedVersion)
	}

	query += `
		RETURNING id, document, version, updated_at`

	var settings model.Settings
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&settings.ID,
		&settings.Document,
		&settings.Version,
		&settings.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// The singleton row always exists; no row means a stale version.
			return nil, apperrors.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return &settings, nil
}
