package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, input domain.Bag) (domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type UserServiceImpl struct {
	log  *slog.Logger
	repo repository.UserRepository
}

func NewUserService(log *slog.Logger, repo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{log: log, repo: repo}
}

func (s *UserServiceImpl) Create(ctx context.Context, input domain.Bag) (domain.User, error) {
	const op = "internal.service.user.Create"

	u := domain.NormalizeUser(input)
	if err := domain.ValidateUser(u).Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.Create failed: %w", err)
	}

	s.log.Info("user created", slog.String("op", op), slog.String("username", created.Username))

	return created, nil
}

func (s *UserServiceImpl) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.GetByID failed: %w", err)
	}

	return u, nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.List failed: %w", err)
	}

	return users, nil
}
