package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luckysnap/backend/internal/model"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type RaffleRepository interface {
	Create(ctx context.Context, raffle *model.Raffle) (*model.Raffle, error)
	List(ctx context.Context) ([]*model.Raffle, error)
	ListActive(ctx context.Context) ([]*model.Raffle, error)
	FindByID(ctx context.Context, id int) (*model.Raffle, error)
	FindByRaffleID(ctx context.Context, raffleID uuid.UUID) (*model.Raffle, error)
	FindBySlug(ctx context.Context, slug string) (*model.Raffle, error)
	Update(ctx context.Context, id int, values map[string]interface{}) (*model.Raffle, error)
	UpdateStatus(ctx context.Context, id int, status model.RaffleStatus) (*model.Raffle, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Raffle, error)
	AdjustSoldCount(ctx context.Context, tx pgx.Tx, id int, delta int) error
}

type RaffleRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRaffleRepository(pool *pgxpool.Pool) RaffleRepository {
	return &RaffleRepositoryImpl{
		pool: pool,
	}
}

const raffleColumns = `id, raffle_id, slug, title, description, images, price,
		ticket_count, sold_count, draw_date, status, created_at, updated_at, deleted_at`

func scanRaffle(row pgx.Row) (*model.Raffle, error) {
	var raffle model.Raffle
	err := row.Scan(
		&raffle.ID,
		&raffle.RaffleID,
		&raffle.Slug,
		&raffle.Title,
		&raffle.Description,
		&raffle.Images,
		&raffle.Price,
		&raffle.TicketCount,
		&raffle.SoldCount,
		&raffle.DrawDate,
		&raffle.Status,
		&raffle.CreatedAt,
		&raffle.UpdatedAt,
		&raffle.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}

func (r *RaffleRepositoryImpl) Create(ctx context.Context, raffle *model.Raffle) (*model.Raffle, error) {
	query := `
		INSERT INTO raffles (
			raffle_id, slug, title, description, images, price, ticket_count, draw_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + raffleColumns

	created, err := scanRaffle(r.pool.QueryRow(ctx, query,
		raffle.RaffleID, raffle.Slug, raffle.Title, raffle.Description,
		raffle.Images, raffle.Price, raffle.TicketCount, raffle.DrawDate, raffle.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if asPgError(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create raffle: %w", err)
	}

	return created, nil
}

func (r *RaffleRepositoryImpl) List(ctx context.Context) ([]*model.Raffle, error) {
	query := `
		SELECT ` + raffleColumns + `
		FROM raffles
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	return r.queryRaffles(ctx, query)
}

func (r *RaffleRepositoryImpl) ListActive(ctx context.Context) ([]*model.Raffle, error) {
	query := `
		SELECT ` + raffleColumns + `
		FROM raffles
		WHERE status = $1 AND deleted_at IS NULL
		ORDER BY draw_date ASC NULLS LAST
	`
	return r.queryRaffles(ctx, query, model.RaffleStatusActive)
}

func (r *RaffleRepositoryImpl) queryRaffles(ctx context.Context, query string, args ...interface{}) ([]*model.Raffle, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	raffles := make([]*model.Raffle, 0)
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			return nil, err
		}
		raffles = append(raffles, raffle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return raffles, nil
}

func (r *RaffleRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Raffle, error) {
	query := `
		SELECT ` + raffleColumns + `
		FROM raffles
		WHERE id = $1 AND deleted_at IS NULL
	`
	raffle, err := scanRaffle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		return nil, err
	}
	return raffle, nil
}

func (r *RaffleRepositoryImpl) FindByRaffleID(ctx context.Context, raffleID uuid.UUID) (*model.Raffle, error) {
	query := `
		SELECT ` + raffleColumns + `
		FROM raffles
		WHERE raffle_id = $1 AND deleted_at IS NULL
	`
	raffle, err := scanRaffle(r.pool.QueryRow(ctx, query, raffleID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		return nil, err
	}
	return raffle, nil
}

func (r *RaffleRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*model.Raffle, error) {
	query := `
		SELECT ` + raffleColumns + `
		FROM raffles
		WHERE slug = $1 AND deleted_at IS NULL
	`
	raffle, err := scanRaffle(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		return nil, err
	}
	return raffle, nil
}

func (r *RaffleRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Raffle, error) {
	query := `
		SELECT ` + raffleColumns + `
		FROM raffles
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`
	raffle, err := scanRaffle(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		return nil, err
	}
	return raffle, nil
}

func (r *RaffleRepositoryImpl) Update(ctx context.Context, id int, values map[string]interface{}) (*model.Raffle, error) {
	allowedFields := map[string]bool{
		"slug":        true,
		"title":       true,
		"description": true,
		"images":      true,
		"price":       true,
		"draw_date":   true,
	}

	sets := []string{}
	args := []interface{}{}
	argPos := 1

	for column, value := range values {
		if ok := allowedFields[column]; !ok {
			return nil, apperrors.ErrInvalidInput
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE raffles
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING `+raffleColumns,
		strings.Join(sets, ", "), argPos)

	raffle, err := scanRaffle(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		var pgErr *pgconn.PgError
		if asPgError(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, err
	}
	return raffle, nil
}

func (r *RaffleRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.RaffleStatus) (*model.Raffle, error) {
	query := `
		UPDATE raffles
		SET status = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
		RETURNING ` + raffleColumns

	raffle, err := scanRaffle(r.pool.QueryRow(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("failed to update raffle status: %w", err)
	}
	return raffle, nil
}

func (r *RaffleRepositoryImpl) AdjustSoldCount(ctx context.Context, tx pgx.Tx, id int, delta int) error {
	query := `
		UPDATE raffles
		SET sold_count = sold_count + $1, updated_at = $2
		WHERE id = $3 AND sold_count + $1 >= 0
	`

	result, err := tx.Exec(ctx, query, delta, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRaffleNotFound
	}

	return nil
}

func (r *RaffleRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE raffles
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`
	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return err
	}

	// check if raffle exists and not already deleted
	if result.RowsAffected() == 0 {
		return apperrors.ErrRaffleNotFound
	}

	return nil
}
