package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luckysnap/backend/internal/model"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type OrderRepository interface {
	List(ctx context.Context) ([]*model.Order, error)
	FindByID(ctx context.Context, id int) (*model.Order, error)
	FindByFolio(ctx context.Context, folio string) (*model.Order, error)
	FindByRaffleID(ctx context.Context, raffleID int) ([]*model.Order, error)
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*model.Order, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Order, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.OrderStatus) (*model.Order, error)
}

type OrderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &OrderRepositoryImpl{
		pool: pool,
	}
}

const orderColumns = `id, folio, raffle_id, user_id, customer_name, customer_phone,
		customer_email, customer_district, tickets, total_amount, status,
		payment_method, notes, created_at, updated_at, expires_at, deleted_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var order model.Order
	err := row.Scan(
		&order.ID,
		&order.Folio,
		&order.RaffleID,
		&order.UserID,
		&order.Customer.Name,
		&order.Customer.Phone,
		&order.Customer.Email,
		&order.Customer.District,
		&order.Tickets,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentMethod,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.ExpiresAt,
		&order.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	query := `
		INSERT INTO orders (
			folio, raffle_id, user_id, customer_name, customer_phone,
			customer_email, customer_district, tickets, total_amount, status,
			payment_method, notes, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + orderColumns

	created, err := scanOrder(tx.QueryRow(ctx, query,
		order.Folio, order.RaffleID, order.UserID,
		order.Customer.Name, order.Customer.Phone, order.Customer.Email, order.Customer.District,
		order.Tickets, order.TotalAmount, order.Status,
		order.PaymentMethod, order.Notes, order.ExpiresAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return created, nil
}

func (r *OrderRepositoryImpl) List(ctx context.Context) ([]*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query)
}

func (r *OrderRepositoryImpl) FindByRaffleID(ctx context.Context, raffleID int) ([]*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE raffle_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, raffleID)
}

// ListStalePending returns pending orders whose expiry has passed, oldest
// first, capped at limit so the sweeper works in bounded batches.
func (r *OrderRepositoryImpl) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND expires_at < $2 AND deleted_at IS NULL
		ORDER BY expires_at ASC
		LIMIT $3
	`
	return r.queryOrders(ctx, query, model.OrderStatusPending, cutoff, limit)
}

func (r *OrderRepositoryImpl) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND deleted_at IS NULL
	`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *OrderRepositoryImpl) FindByFolio(ctx context.Context, folio string) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE folio = $1 AND deleted_at IS NULL
	`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, folio))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *OrderRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`
	order, err := scanOrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *OrderRepositoryImpl) UpdateStatus(
	ctx context.Context,
	tx pgx.Tx,
	id int,
	status model.OrderStatus,
) (*model.Order, error) {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + orderColumns

	order, err := scanOrder(tx.QueryRow(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE orders
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`
	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return err
	}

	// check if order exists and not already deleted
	if result.RowsAffected() == 0 {
		return apperrors.ErrOrderNotFound
	}

	return nil
}
