package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luckysnap/backend/internal/cache"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/notify"
	"github.com/luckysnap/backend/internal/queue"
	"github.com/luckysnap/backend/internal/repository"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	OrderList(ctx context.Context) ([]*model.Order, error)
	GetOrderByID(ctx context.Context, id int) (*model.Order, error)
	GetOrderByFolio(ctx context.Context, folio string) (*model.Order, error)
	MarkPaid(ctx context.Context, id int) error
	CancelOrder(ctx context.Context, id int) error
	DeleteOrder(ctx context.Context, id int) error
	// ExpireStaleOrders transitions pending orders past their expiry and
	// releases their tickets. Returns how many orders were expired.
	ExpireStaleOrders(ctx context.Context) (int, error)
}

type OrderServiceImpl struct {
	pool            *pgxpool.Pool
	repository      repository.OrderRepository
	raffleRepo      repository.RaffleRepository
	reservationRepo repository.ReservationRepository
	userRepo        repository.UserRepository
	holdManager     cache.TicketHoldManager
	notifications   queue.NotificationQueue
	orderTTL        time.Duration
}

func NewOrderService(
	pool *pgxpool.Pool,
	orderRepository repository.OrderRepository,
	raffleRepository repository.RaffleRepository,
	reservationRepository repository.ReservationRepository,
	userRepository repository.UserRepository,
	holdManager cache.TicketHoldManager,
	notifications queue.NotificationQueue,
	orderTTL time.Duration,
) OrderService {
	return &OrderServiceImpl{
		pool:            pool,
		repository:      orderRepository,
		raffleRepo:      raffleRepository,
		reservationRepo: reservationRepository,
		userRepo:        userRepository,
		holdManager:     holdManager,
		notifications:   notifications,
		orderTTL:        orderTTL,
	}
}

func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	raffleID, err := uuid.Parse(req.RaffleID)
	if err != nil {
		return nil, apperrors.ErrRaffleNotFound
	}

	raffle, err := s.raffleRepo.FindByRaffleID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if !raffle.IsActive() {
		return nil, apperrors.ErrRaffleNotActive
	}

	if err := validateTickets(raffle, req.Tickets); err != nil {
		return nil, err
	}

	// 1. Fast path: hold the numbers in Redis. Concurrent requests for an
	// overlapping number lose here before ever reaching Postgres.
	conflicts, err := s.holdManager.HoldTickets(ctx, raffle.ID, req.Tickets)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.ErrTicketsUnavailable
	}

	order, err := s.persistOrder(ctx, raffle, req)
	if err != nil {
		// 2. The holds must not outlive a failed order. Release with
		// context.Background() so an abandoned request still rolls back.
		if releaseErr := s.holdManager.ReleaseTickets(context.Background(), raffle.ID, req.Tickets); releaseErr != nil {
			logger.WithComponent("service").Error("failed to release ticket holds",
				zap.Int("raffle_id", raffle.ID), zap.Error(releaseErr))
		}
		return nil, err
	}

	// 3. Notification is best effort: the order stands even if the queue is
	// down.
	s.publishNotification(ctx, notify.KindOrderCreated, raffle, order)

	return order, nil
}

func validateTickets(raffle *model.Raffle, tickets []int) error {
	if len(tickets) == 0 {
		return apperrors.ErrInvalidInput
	}

	seen := make(map[int]bool, len(tickets))
	for _, n := range tickets {
		if !raffle.InRange(n) {
			return apperrors.ErrTicketOutOfRange
		}
		if seen[n] {
			return apperrors.ErrInvalidInput
		}
		seen[n] = true
	}

	return nil
}

// persistOrder writes the customer, the order, its reservations and the sold
// counter in one transaction. The reservation primary key is the final
// authority against double-selling.
func (s *OrderServiceImpl) persistOrder(ctx context.Context, raffle *model.Raffle, req model.CreateOrderRequest) (*model.Order, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	user, err := s.userRepo.UpsertByPhone(ctx, tx, &model.User{
		Name:     req.Customer.Name,
		Phone:    req.Customer.Phone,
		Email:    req.Customer.Email,
		District: req.Customer.District,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.Order{
		Folio:         GenerateFolio(),
		RaffleID:      raffle.ID,
		UserID:        user.ID,
		Customer:      req.Customer,
		Tickets:       req.Tickets,
		TotalAmount:   raffle.Price * float64(len(req.Tickets)),
		Status:        model.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		ExpiresAt:     now.Add(s.orderTTL),
	}

	created, err := s.repository.Create(ctx, tx, order)
	if err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Reserve(ctx, tx, raffle.ID, created.ID, req.Tickets); err != nil {
		return nil, err
	}

	if err := s.raffleRepo.AdjustSoldCount(ctx, tx, raffle.ID, len(req.Tickets)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *OrderServiceImpl) publishNotification(ctx context.Context, kind string, raffle *model.Raffle, order *model.Order) {
	notification := &notify.Notification{
		Kind:          kind,
		Folio:         order.Folio,
		OrderID:       order.ID,
		RaffleID:      raffle.ID,
		RaffleTitle:   raffle.Title,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		Tickets:       order.Tickets,
		TotalAmount:   order.TotalAmount,
		ExpiresAt:     order.ExpiresAt,
		CreatedAt:     order.CreatedAt,
	}

	if err := s.notifications.Publish(ctx, notification); err != nil {
		logger.WithComponent("service").Warn("failed to publish notification",
			zap.String("kind", kind), zap.String("folio", order.Folio), zap.Error(err))
	}
}

func (s *OrderServiceImpl) OrderList(ctx context.Context) ([]*model.Order, error) {
	return s.repository.List(ctx)
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *OrderServiceImpl) GetOrderByFolio(ctx context.Context, folio string) (*model.Order, error) {
	return s.repository.FindByFolio(ctx, folio)
}

func (s *OrderServiceImpl) MarkPaid(ctx context.Context, id int) error {
	order, err := s.transition(ctx, id, model.OrderStatusPaid)
	if err != nil {
		return err
	}

	raffle, err := s.raffleRepo.FindByID(ctx, order.RaffleID)
	if err == nil {
		s.publishNotification(ctx, notify.KindOrderPaid, raffle, order)
	}

	return nil
}

func (s *OrderServiceImpl) CancelOrder(ctx context.Context, id int) error {
	_, err := s.transition(ctx, id, model.OrderStatusCancelled)
	return err
}

// transition applies a guarded status change. Moving into a terminal status
// releases the reservations and gives the sold counter back, all in the same
// transaction; Redis holds are dropped afterwards so the numbers go back on
// sale immediately.
func (s *OrderServiceImpl) transition(ctx context.Context, id int, target model.OrderStatus) (*model.Order, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order, err := s.repository.FindByIDWithLock(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, apperrors.ErrInvalidTransition
	}

	updated, err := s.repository.UpdateStatus(ctx, tx, id, target)
	if err != nil {
		return nil, err
	}

	var released []int
	if target.IsTerminal() {
		released, err = s.reservationRepo.ReleaseByOrder(ctx, tx, order.ID)
		if err != nil {
			return nil, err
		}

		if len(released) > 0 {
			if err := s.raffleRepo.AdjustSoldCount(ctx, tx, order.RaffleID, -len(released)); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if len(released) > 0 {
		if err := s.holdManager.ReleaseTickets(context.Background(), order.RaffleID, released); err != nil {
			logger.WithComponent("service").Error("failed to release ticket holds",
				zap.Int("order_id", order.ID), zap.Error(err))
		}
	}

	return updated, nil
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id int) error {
	order, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Deleting an order that still holds tickets would leak its
	// reservations; cancel first.
	if !order.Status.IsTerminal() {
		if err := s.CancelOrder(ctx, id); err != nil {
			return err
		}
	}

	return s.repository.Delete(ctx, id)
}

func (s *OrderServiceImpl) ExpireStaleOrders(ctx context.Context) (int, error) {
	stale, err := s.repository.ListStalePending(ctx, time.Now().UTC(), 100)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, order := range stale {
		if _, err := s.transition(ctx, order.ID, model.OrderStatusExpired); err != nil {
			// Somebody may have paid or cancelled between the listing and
			// the lock; skip and keep sweeping.
			logger.WithComponent("service").Warn("failed to expire order",
				zap.Int("order_id", order.ID), zap.Error(err))
			continue
		}
		expired++
	}

	return expired, nil
}
