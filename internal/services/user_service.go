package services

import (
	"context"
	"fmt"

	"github.com/ad/go-quiz-backend/internal/db"
	"github.com/ad/go-quiz-backend/internal/models"
	"github.com/go-playground/validator/v10"
)

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Login      string `json:"login" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

type AuthenticateRequest struct {
	Login      string `json:"login" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

type UpdateScoreRequest struct {
	SessionToken string `json:"sessionToken" validate:"required"`
	Delta        int    `json:"delta"`
}

type UserService struct {
	repo     *db.UserRepository
	validate *validator.Validate
}

func NewUserService(repo *db.UserRepository) *UserService {
	return &UserService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateUser registers a new account and returns its session token.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.Create(ctx, req.Name, req.Login, req.Credential)
}

// Authenticate returns the session token issued at account creation.
func (s *UserService) Authenticate(ctx context.Context, req AuthenticateRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.Authenticate(ctx, req.Login, req.Credential)
}

// UpdateScore applies a signed delta to the score of the token's owner.
func (s *UserService) UpdateScore(ctx context.Context, req UpdateScoreRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpdateScore(ctx, req.SessionToken, req.Delta)
}

// ListByScore returns the leaderboard, best score first.
func (s *UserService) ListByScore(ctx context.Context) ([]models.ScoreEntry, error) {
	return s.repo.ListByScore(ctx)
}
