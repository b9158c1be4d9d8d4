package service

import (
	"context"

	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	Update(ctx context.Context, id int, params model.UpdateUserParams) (*model.User, error)
	Delete(ctx context.Context, id int) error
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	return s.repo.Create(ctx, &model.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		District: req.District,
	})
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	return s.repo.FindByPhone(ctx, phone)
}

func (s *UserServiceImpl) Update(ctx context.Context, id int, params model.UpdateUserParams) (*model.User, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
