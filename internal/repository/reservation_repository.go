package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

// ReservationRepository guards ticket numbers against double-selling. A row
// exists per (raffle, number) while the owning order is non-terminal; the
// primary key makes a conflicting insert fail no matter how the callers race.
type ReservationRepository interface {
	Occupied(ctx context.Context, raffleID int) ([]int, error)
	OwnerOrderID(ctx context.Context, raffleID int, ticketNumber int) (int, error)

	// Transaction methods
	Reserve(ctx context.Context, tx pgx.Tx, raffleID int, orderID int, numbers []int) error
	ReleaseByOrder(ctx context.Context, tx pgx.Tx, orderID int) ([]int, error)
}

type ReservationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &ReservationRepositoryImpl{
		pool: pool,
	}
}

func (r *ReservationRepositoryImpl) Occupied(ctx context.Context, raffleID int) ([]int, error) {
	query := `
		SELECT ticket_number
		FROM ticket_reservations
		WHERE raffle_id = $1
		ORDER BY ticket_number ASC
	`

	rows, err := r.pool.Query(ctx, query, raffleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	numbers := make([]int, 0)
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return numbers, nil
}

func (r *ReservationRepositoryImpl) OwnerOrderID(ctx context.Context, raffleID int, ticketNumber int) (int, error) {
	query := `
		SELECT order_id
		FROM ticket_reservations
		WHERE raffle_id = $1 AND ticket_number = $2
	`

	var orderID int
	err := r.pool.QueryRow(ctx, query, raffleID, ticketNumber).Scan(&orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrTicketsUnavailable
		}
		return 0, err
	}

	return orderID, nil
}

func (r *ReservationRepositoryImpl) Reserve(ctx context.Context, tx pgx.Tx, raffleID int, orderID int, numbers []int) error {
	query := `
		INSERT INTO ticket_reservations (raffle_id, ticket_number, order_id)
		SELECT $1, n, $2 FROM unnest($3::int[]) AS n
	`

	_, err := tx.Exec(ctx, query, raffleID, orderID, numbers)
	if err != nil {
		var pgErr *pgconn.PgError
		if asPgError(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrTicketsUnavailable
		}
		return fmt.Errorf("failed to reserve tickets: %w", err)
	}

	return nil
}

func (r *ReservationRepositoryImpl) ReleaseByOrder(ctx context.Context, tx pgx.Tx, orderID int) ([]int, error) {
	query := `
		DELETE FROM ticket_reservations
		WHERE order_id = $1
		RETURNING ticket_number
	`

	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	released := make([]int, 0)
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		released = append(released, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return released, nil
}
