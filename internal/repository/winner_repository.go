package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luckysnap/backend/internal/model"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type WinnerRepository interface {
	Create(ctx context.Context, winner *model.Winner) (*model.Winner, error)
	List(ctx context.Context) ([]*model.Winner, error)
	ListByRaffleID(ctx context.Context, raffleID int) ([]*model.Winner, error)
	FindByID(ctx context.Context, id int) (*model.Winner, error)
	Delete(ctx context.Context, id int) error
}

type WinnerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewWinnerRepository(pool *pgxpool.Pool) WinnerRepository {
	return &WinnerRepositoryImpl{
		pool: pool,
	}
}

const winnerColumns = `id, winner_id, raffle_id, order_id, user_id, ticket_number,
		raffle_title, draw_date, created_at`

func scanWinner(row pgx.Row) (*model.Winner, error) {
	var winner model.Winner
	err := row.Scan(
		&winner.ID,
		&winner.WinnerID,
		&winner.RaffleID,
		&winner.OrderID,
		&winner.UserID,
		&winner.TicketNumber,
		&winner.RaffleTitle,
		&winner.DrawDate,
		&winner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &winner, nil
}

func (r *WinnerRepositoryImpl) Create(ctx context.Context, winner *model.Winner) (*model.Winner, error) {
	query := `
		INSERT INTO winners (
			winner_id, raffle_id, order_id, user_id, ticket_number, raffle_title, draw_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + winnerColumns

	created, err := scanWinner(r.pool.QueryRow(ctx, query,
		winner.WinnerID, winner.RaffleID, winner.OrderID, winner.UserID,
		winner.TicketNumber, winner.RaffleTitle, winner.DrawDate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create winner: %w", err)
	}

	return created, nil
}

func (r *WinnerRepositoryImpl) List(ctx context.Context) ([]*model.Winner, error) {
	query := `
		SELECT ` + winnerColumns + `
		FROM winners
		ORDER BY created_at DESC
	`
	return r.queryWinners(ctx, query)
}

func (r *WinnerRepositoryImpl) ListByRaffleID(ctx context.Context, raffleID int) ([]*model.Winner, error) {
	query := `
		SELECT ` + winnerColumns + `
		FROM winners
		WHERE raffle_id = $1
		ORDER BY created_at DESC
	`
	return r.queryWinners(ctx, query, raffleID)
}

func (r *WinnerRepositoryImpl) queryWinners(ctx context.Context, query string, args ...interface{}) ([]*model.Winner, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	winners := make([]*model.Winner, 0)
	for rows.Next() {
		winner, err := scanWinner(rows)
		if err != nil {
			return nil, err
		}
		winners = append(winners, winner)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return winners, nil
}

func (r *WinnerRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Winner, error) {
	query := `
		SELECT ` + winnerColumns + `
		FROM winners
		WHERE id = $1
	`
	winner, err := scanWinner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrWinnerNotFound
		}
		return nil, err
	}
	return winner, nil
}

func (r *WinnerRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM winners WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrWinnerNotFound
	}

	return nil
}
