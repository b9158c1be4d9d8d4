package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/repository"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

type AuthServiceImpl struct {
	repo      repository.AdminUserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(repo repository.AdminUserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	admin, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":      admin.Username,
		"admin_id": admin.ID,
		"exp":      expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
