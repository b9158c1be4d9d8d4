package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luckysnap/backend/internal/model"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	// Upsert creates or replaces an account; used by the seeding CLI.
	Upsert(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error)
}

type AdminUserRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) AdminUserRepository {
	return &AdminUserRepositoryImpl{
		pool: pool,
	}
}

const adminUserColumns = `id, username, password_hash, display_name, created_at, updated_at`

func scanAdminUser(row pgx.Row) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.DisplayName,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	query := `
		SELECT ` + adminUserColumns + `
		FROM admin_users
		WHERE username = $1
	`
	admin, err := scanAdminUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	return admin, nil
}

func (r *AdminUserRepositoryImpl) Upsert(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error) {
	query := `
		INSERT INTO admin_users (username, password_hash, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			display_name = EXCLUDED.display_name,
			updated_at = now()
		RETURNING ` + adminUserColumns

	upserted, err := scanAdminUser(r.pool.QueryRow(ctx, query,
		admin.Username, admin.PasswordHash, admin.DisplayName,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert admin user: %w", err)
	}

	return upserted, nil
}
