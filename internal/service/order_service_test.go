package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	cachemocks "github.com/luckysnap/backend/internal/cache/mocks"
	"github.com/luckysnap/backend/internal/model"
	queuemocks "github.com/luckysnap/backend/internal/queue/mocks"
	repomocks "github.com/luckysnap/backend/internal/repository/mocks"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderServiceMocks struct {
	orderRepo       *repomocks.MockOrderRepository
	raffleRepo      *repomocks.MockRaffleRepository
	reservationRepo *repomocks.MockReservationRepository
	userRepo        *repomocks.MockUserRepository
	holdManager     *cachemocks.MockTicketHoldManager
	notifications   *queuemocks.MockNotificationQueue
}

func newOrderService(t *testing.T) (OrderService, *orderServiceMocks) {
	m := &orderServiceMocks{
		orderRepo:       repomocks.NewMockOrderRepository(t),
		raffleRepo:      repomocks.NewMockRaffleRepository(t),
		reservationRepo: repomocks.NewMockReservationRepository(t),
		userRepo:        repomocks.NewMockUserRepository(t),
		holdManager:     cachemocks.NewMockTicketHoldManager(t),
		notifications:   queuemocks.NewMockNotificationQueue(t),
	}

	svc := NewOrderService(
		nil,
		m.orderRepo,
		m.raffleRepo,
		m.reservationRepo,
		m.userRepo,
		m.holdManager,
		m.notifications,
		24*time.Hour,
	)

	return svc, m
}

func activeRaffle() *model.Raffle {
	return &model.Raffle{
		ID:          1,
		RaffleID:    uuid.New(),
		Slug:        "iphone-17",
		Title:       "iPhone 17",
		Price:       50,
		TicketCount: 100,
		Status:      model.RaffleStatusActive,
	}
}

func createReq(raffleID string, tickets []int) model.CreateOrderRequest {
	return model.CreateOrderRequest{
		RaffleID: raffleID,
		Customer: model.Customer{Name: "Ana", Phone: "5512345678"},
		Tickets:  tickets,
	}
}

func TestCreateOrderInvalidRaffleID(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), createReq("not-a-uuid", []int{1}))

	assert.ErrorIs(t, err, apperrors.ErrRaffleNotFound)
}

func TestCreateOrderRaffleNotFound(t *testing.T) {
	svc, m := newOrderService(t)

	raffleID := uuid.New()
	m.raffleRepo.EXPECT().FindByRaffleID(mock.Anything, raffleID).
		Return(nil, apperrors.ErrRaffleNotFound).Once()

	_, err := svc.CreateOrder(context.Background(), createReq(raffleID.String(), []int{1}))

	assert.ErrorIs(t, err, apperrors.ErrRaffleNotFound)
}

func TestCreateOrderRaffleNotActive(t *testing.T) {
	svc, m := newOrderService(t)

	raffle := activeRaffle()
	raffle.Status = model.RaffleStatusDraft
	m.raffleRepo.EXPECT().FindByRaffleID(mock.Anything, raffle.RaffleID).
		Return(raffle, nil).Once()

	_, err := svc.CreateOrder(context.Background(), createReq(raffle.RaffleID.String(), []int{1}))

	assert.ErrorIs(t, err, apperrors.ErrRaffleNotActive)
}

func TestCreateOrderTicketOutOfRange(t *testing.T) {
	svc, m := newOrderService(t)

	raffle := activeRaffle()
	m.raffleRepo.EXPECT().FindByRaffleID(mock.Anything, raffle.RaffleID).
		Return(raffle, nil).Once()

	_, err := svc.CreateOrder(context.Background(), createReq(raffle.RaffleID.String(), []int{5, 101}))

	assert.ErrorIs(t, err, apperrors.ErrTicketOutOfRange)
}

func TestCreateOrderDuplicateTickets(t *testing.T) {
	svc, m := newOrderService(t)

	raffle := activeRaffle()
	m.raffleRepo.EXPECT().FindByRaffleID(mock.Anything, raffle.RaffleID).
		Return(raffle, nil).Once()

	_, err := svc.CreateOrder(context.Background(), createReq(raffle.RaffleID.String(), []int{5, 5}))

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCreateOrderEmptyTickets(t *testing.T) {
	svc, m := newOrderService(t)

	raffle := activeRaffle()
	m.raffleRepo.EXPECT().FindByRaffleID(mock.Anything, raffle.RaffleID).
		Return(raffle, nil).Once()

	_, err := svc.CreateOrder(context.Background(), createReq(raffle.RaffleID.String(), nil))

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCreateOrderTicketsAlreadyHeld(t *testing.T) {
	svc, m := newOrderService(t)

	raffle := activeRaffle()
	m.raffleRepo.EXPECT().FindByRaffleID(mock.Anything, raffle.RaffleID).
		Return(raffle, nil).Once()
	m.holdManager.EXPECT().HoldTickets(mock.Anything, raffle.ID, []int{10, 20}).
		Return([]int{10}, nil).Once()

	_, err := svc.CreateOrder(context.Background(), createReq(raffle.RaffleID.String(), []int{10, 20}))

	assert.ErrorIs(t, err, apperrors.ErrTicketsUnavailable)
}

func TestCreateOrderHoldFailure(t *testing.T) {
	svc, m := newOrderService(t)

	raffle := activeRaffle()
	m.raffleRepo.EXPECT().FindByRaffleID(mock.Anything, raffle.RaffleID).
		Return(raffle, nil).Once()
	m.holdManager.EXPECT().HoldTickets(mock.Anything, raffle.ID, []int{7}).
		Return(nil, errors.New("redis down")).Once()

	_, err := svc.CreateOrder(context.Background(), createReq(raffle.RaffleID.String(), []int{7}))

	assert.Error(t, err)
}

func TestDeleteOrderTerminalSkipsCancel(t *testing.T) {
	svc, m := newOrderService(t)

	m.orderRepo.EXPECT().FindByID(mock.Anything, 3).
		Return(&model.Order{ID: 3, Status: model.OrderStatusCancelled}, nil).Once()
	m.orderRepo.EXPECT().Delete(mock.Anything, 3).Return(nil).Once()

	err := svc.DeleteOrder(context.Background(), 3)

	assert.NoError(t, err)
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc, m := newOrderService(t)

	m.orderRepo.EXPECT().FindByID(mock.Anything, 99).
		Return(nil, apperrors.ErrOrderNotFound).Once()

	err := svc.DeleteOrder(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

func TestExpireStaleOrdersListError(t *testing.T) {
	svc, m := newOrderService(t)

	m.orderRepo.EXPECT().ListStalePending(mock.Anything, mock.Anything, 100).
		Return(nil, errors.New("db down")).Once()

	expired, err := svc.ExpireStaleOrders(context.Background())

	assert.Error(t, err)
	assert.Zero(t, expired)
}

func TestExpireStaleOrdersNothingPending(t *testing.T) {
	svc, m := newOrderService(t)

	m.orderRepo.EXPECT().ListStalePending(mock.Anything, mock.Anything, 100).
		Return(nil, nil).Once()

	expired, err := svc.ExpireStaleOrders(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, expired)
}

func TestGetOrderByFolio(t *testing.T) {
	svc, m := newOrderService(t)

	order := &model.Order{ID: 1, Folio: "LS-ABC-1234"}
	m.orderRepo.EXPECT().FindByFolio(mock.Anything, "LS-ABC-1234").
		Return(order, nil).Once()

	found, err := svc.GetOrderByFolio(context.Background(), "LS-ABC-1234")

	assert.NoError(t, err)
	assert.Equal(t, order, found)
}
