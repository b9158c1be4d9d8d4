package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/luckysnap/backend/internal/cache"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/repository"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
)

type RaffleService interface {
	List(ctx context.Context) ([]*model.Raffle, error)
	ListActive(ctx context.Context) ([]*model.Raffle, error)
	GetByID(ctx context.Context, id int) (*model.Raffle, error)
	GetByRaffleID(ctx context.Context, raffleID uuid.UUID) (*model.Raffle, error)
	GetBySlug(ctx context.Context, slug string) (*model.Raffle, error)
	// OccupiedTickets returns the reserved numbers of a raffle, sorted
	// ascending, resolved by public raffle id.
	OccupiedTickets(ctx context.Context, raffleID uuid.UUID) ([]int, error)
	Create(ctx context.Context, req model.CreateRaffleRequest) (*model.Raffle, error)
	Update(ctx context.Context, id int, params model.UpdateRaffleParams) (*model.Raffle, error)
	// Activate opens a draft raffle for sale and warms the Redis hold set
	// from the reservations already on record.
	Activate(ctx context.Context, id int) (*model.Raffle, error)
	// Finish closes sales; the reservation rows stay for the draw.
	Finish(ctx context.Context, id int) (*model.Raffle, error)
	Delete(ctx context.Context, id int) error
}

type RaffleServiceImpl struct {
	repo            repository.RaffleRepository
	reservationRepo repository.ReservationRepository
	holdManager     cache.TicketHoldManager
}

func NewRaffleService(
	repo repository.RaffleRepository,
	reservationRepo repository.ReservationRepository,
	holdManager cache.TicketHoldManager,
) RaffleService {
	return &RaffleServiceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		holdManager:     holdManager,
	}
}

func (s *RaffleServiceImpl) List(ctx context.Context) ([]*model.Raffle, error) {
	return s.repo.List(ctx)
}

func (s *RaffleServiceImpl) ListActive(ctx context.Context) ([]*model.Raffle, error) {
	return s.repo.ListActive(ctx)
}

func (s *RaffleServiceImpl) GetByID(ctx context.Context, id int) (*model.Raffle, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RaffleServiceImpl) GetByRaffleID(ctx context.Context, raffleID uuid.UUID) (*model.Raffle, error) {
	return s.repo.FindByRaffleID(ctx, raffleID)
}

func (s *RaffleServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Raffle, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *RaffleServiceImpl) OccupiedTickets(ctx context.Context, raffleID uuid.UUID) ([]int, error) {
	raffle, err := s.repo.FindByRaffleID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	return s.reservationRepo.Occupied(ctx, raffle.ID)
}

func (s *RaffleServiceImpl) Create(ctx context.Context, req model.CreateRaffleRequest) (*model.Raffle, error) {
	images := req.Images
	if images == nil {
		images = []string{}
	}

	return s.repo.Create(ctx, &model.Raffle{
		RaffleID:    uuid.New(),
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Images:      images,
		Price:       req.Price,
		TicketCount: req.TicketCount,
		DrawDate:    req.DrawDate,
		Status:      model.RaffleStatusDraft,
	})
}

func (s *RaffleServiceImpl) Update(ctx context.Context, id int, params model.UpdateRaffleParams) (*model.Raffle, error) {
	values := map[string]interface{}{}
	if params.Slug != nil {
		values["slug"] = *params.Slug
	}
	if params.Title != nil {
		values["title"] = *params.Title
	}
	if params.Description != nil {
		values["description"] = *params.Description
	}
	if params.Images != nil {
		values["images"] = params.Images
	}
	if params.Price != nil {
		values["price"] = *params.Price
	}
	if params.DrawDate != nil {
		values["draw_date"] = *params.DrawDate
	}

	return s.repo.Update(ctx, id, values)
}

func (s *RaffleServiceImpl) Activate(ctx context.Context, id int) (*model.Raffle, error) {
	raffle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raffle.Status != model.RaffleStatusDraft {
		return nil, apperrors.ErrInvalidTransition
	}

	occupied, err := s.reservationRepo.Occupied(ctx, raffle.ID)
	if err != nil {
		return nil, err
	}
	if err := s.holdManager.WarmUpHolds(ctx, raffle.ID, occupied); err != nil {
		return nil, err
	}

	return s.repo.UpdateStatus(ctx, id, model.RaffleStatusActive)
}

func (s *RaffleServiceImpl) Finish(ctx context.Context, id int) (*model.Raffle, error) {
	raffle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raffle.Status != model.RaffleStatusActive {
		return nil, apperrors.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, model.RaffleStatusFinished)
	if err != nil {
		return nil, err
	}

	// Sales are closed; the hold set has no further use. The reservation
	// rows remain as the draw population.
	if err := s.holdManager.ClearHolds(ctx, raffle.ID); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *RaffleServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
