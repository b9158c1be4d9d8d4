package service

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/repository"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type WinnerService interface {
	// Draw picks one occupied ticket uniformly at random from a finished
	// raffle. Nothing is persisted; the admin can re-roll and only
	// ConfirmWinner commits.
	Draw(ctx context.Context, raffleID int) (*model.DrawCandidate, error)
	ConfirmWinner(ctx context.Context, raffleID int, ticketNumber int) (*model.Winner, error)
	List(ctx context.Context) ([]*model.Winner, error)
	ListByRaffle(ctx context.Context, raffleID int) ([]*model.Winner, error)
	Delete(ctx context.Context, id int) error
}

type WinnerServiceImpl struct {
	repo            repository.WinnerRepository
	raffleRepo      repository.RaffleRepository
	orderRepo       repository.OrderRepository
	reservationRepo repository.ReservationRepository
}

func NewWinnerService(
	repo repository.WinnerRepository,
	raffleRepo repository.RaffleRepository,
	orderRepo repository.OrderRepository,
	reservationRepo repository.ReservationRepository,
) WinnerService {
	return &WinnerServiceImpl{
		repo:            repo,
		raffleRepo:      raffleRepo,
		orderRepo:       orderRepo,
		reservationRepo: reservationRepo,
	}
}

func (s *WinnerServiceImpl) Draw(ctx context.Context, raffleID int) (*model.DrawCandidate, error) {
	raffle, err := s.raffleRepo.FindByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.Status != model.RaffleStatusFinished {
		return nil, apperrors.ErrRaffleNotFinished
	}

	occupied, err := s.reservationRepo.Occupied(ctx, raffle.ID)
	if err != nil {
		return nil, err
	}
	if len(occupied) == 0 {
		return nil, apperrors.ErrNoTicketsOccupied
	}

	ticket := occupied[rand.Intn(len(occupied))]

	return s.resolveCandidate(ctx, raffle.ID, ticket)
}

func (s *WinnerServiceImpl) resolveCandidate(ctx context.Context, raffleID int, ticket int) (*model.DrawCandidate, error) {
	orderID, err := s.reservationRepo.OwnerOrderID(ctx, raffleID, ticket)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &model.DrawCandidate{
		RaffleID:     raffleID,
		TicketNumber: ticket,
		OrderID:      order.ID,
		Folio:        order.Folio,
		Customer:     order.Customer,
	}, nil
}

func (s *WinnerServiceImpl) ConfirmWinner(ctx context.Context, raffleID int, ticketNumber int) (*model.Winner, error) {
	raffle, err := s.raffleRepo.FindByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.Status != model.RaffleStatusFinished {
		return nil, apperrors.ErrRaffleNotFinished
	}

	// Re-validate: the ticket must still be occupied when the admin commits.
	candidate, err := s.resolveCandidate(ctx, raffle.ID, ticketNumber)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, candidate.OrderID)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.Winner{
		WinnerID:     uuid.New(),
		RaffleID:     raffle.ID,
		OrderID:      order.ID,
		UserID:       order.UserID,
		TicketNumber: ticketNumber,
		RaffleTitle:  raffle.Title,
		DrawDate:     raffle.DrawDate,
	})
}

func (s *WinnerServiceImpl) List(ctx context.Context) ([]*model.Winner, error) {
	return s.repo.List(ctx)
}

func (s *WinnerServiceImpl) ListByRaffle(ctx context.Context, raffleID int) ([]*model.Winner, error) {
	return s.repo.ListByRaffleID(ctx, raffleID)
}

func (s *WinnerServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
