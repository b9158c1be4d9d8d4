package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	cachemocks "github.com/luckysnap/backend/internal/cache/mocks"
	"github.com/luckysnap/backend/internal/model"
	repomocks "github.com/luckysnap/backend/internal/repository/mocks"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type raffleServiceMocks struct {
	repo            *repomocks.MockRaffleRepository
	reservationRepo *repomocks.MockReservationRepository
	holdManager     *cachemocks.MockTicketHoldManager
}

func newRaffleService(t *testing.T) (RaffleService, *raffleServiceMocks) {
	m := &raffleServiceMocks{
		repo:            repomocks.NewMockRaffleRepository(t),
		reservationRepo: repomocks.NewMockReservationRepository(t),
		holdManager:     cachemocks.NewMockTicketHoldManager(t),
	}
	svc := NewRaffleService(m.repo, m.reservationRepo, m.holdManager)
	return svc, m
}

func TestCreateRaffleDefaults(t *testing.T) {
	svc, m := newRaffleService(t)

	var created *model.Raffle
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Raffle)
		}).
		Return(&model.Raffle{ID: 1}, nil).Once()

	_, err := svc.Create(context.Background(), model.CreateRaffleRequest{
		Slug:        "iphone-17",
		Title:       "iPhone 17",
		Price:       50,
		TicketCount: 100,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, model.RaffleStatusDraft, created.Status)
	assert.NotEqual(t, uuid.Nil, created.RaffleID)
	assert.NotNil(t, created.Images, "images should default to an empty slice, not null")
}

func TestActivateWarmsHoldsFromReservations(t *testing.T) {
	svc, m := newRaffleService(t)

	draft := &model.Raffle{ID: 1, Status: model.RaffleStatusDraft}
	occupied := []int{3, 8}

	m.repo.EXPECT().FindByID(mock.Anything, 1).Return(draft, nil).Once()
	m.reservationRepo.EXPECT().Occupied(mock.Anything, 1).Return(occupied, nil).Once()
	m.holdManager.EXPECT().WarmUpHolds(mock.Anything, 1, occupied).Return(nil).Once()
	m.repo.EXPECT().UpdateStatus(mock.Anything, 1, model.RaffleStatusActive).
		Return(&model.Raffle{ID: 1, Status: model.RaffleStatusActive}, nil).Once()

	raffle, err := svc.Activate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.RaffleStatusActive, raffle.Status)
}

func TestActivateRejectsNonDraft(t *testing.T) {
	svc, m := newRaffleService(t)

	m.repo.EXPECT().FindByID(mock.Anything, 1).
		Return(&model.Raffle{ID: 1, Status: model.RaffleStatusActive}, nil).Once()

	_, err := svc.Activate(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestFinishClearsHolds(t *testing.T) {
	svc, m := newRaffleService(t)

	active := &model.Raffle{ID: 1, Status: model.RaffleStatusActive}
	m.repo.EXPECT().FindByID(mock.Anything, 1).Return(active, nil).Once()
	m.repo.EXPECT().UpdateStatus(mock.Anything, 1, model.RaffleStatusFinished).
		Return(&model.Raffle{ID: 1, Status: model.RaffleStatusFinished}, nil).Once()
	m.holdManager.EXPECT().ClearHolds(mock.Anything, 1).Return(nil).Once()

	raffle, err := svc.Finish(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.RaffleStatusFinished, raffle.Status)
}

func TestFinishRejectsNonActive(t *testing.T) {
	svc, m := newRaffleService(t)

	m.repo.EXPECT().FindByID(mock.Anything, 1).
		Return(&model.Raffle{ID: 1, Status: model.RaffleStatusDraft}, nil).Once()

	_, err := svc.Finish(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestOccupiedTicketsResolvesPublicID(t *testing.T) {
	svc, m := newRaffleService(t)

	publicID := uuid.New()
	m.repo.EXPECT().FindByRaffleID(mock.Anything, publicID).
		Return(&model.Raffle{ID: 9, RaffleID: publicID}, nil).Once()
	m.reservationRepo.EXPECT().Occupied(mock.Anything, 9).
		Return([]int{1, 2, 3}, nil).Once()

	occupied, err := svc.OccupiedTickets(context.Background(), publicID)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, occupied)
}

func TestUpdateRaffleBuildsPartialValues(t *testing.T) {
	svc, m := newRaffleService(t)

	title := "New Title"
	price := 75.0

	m.repo.EXPECT().Update(mock.Anything, 1, map[string]interface{}{
		"title": title,
		"price": price,
	}).Return(&model.Raffle{ID: 1, Title: title, Price: price}, nil).Once()

	raffle, err := svc.Update(context.Background(), 1, model.UpdateRaffleParams{
		Title: &title,
		Price: &price,
	})

	require.NoError(t, err)
	assert.Equal(t, title, raffle.Title)
}
