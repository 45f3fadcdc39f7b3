package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ftth_backend/internals/features/users/user/dto"
	"ftth_backend/internals/features/users/user/model"
	"ftth_backend/internals/features/users/user/repository"
)

var ErrSelfDeactivate = errors.New("tidak bisa menonaktifkan akun sendiri")

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	u := req.ToModel()
	hash, err := HashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	u.Password = hash
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, actor, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	if actor == id && req.IsActive != nil && !*req.IsActive {
		return nil, ErrSelfDeactivate
	}
	fields := req.Fields()
	if len(fields) == 0 {
		return s.Repo.FindByID(ctx, id)
	}
	return s.Repo.Update(ctx, id, fields)
}

func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(ctx, id, hash)
}

// Deactivate: soft, baris user tetap ada (referensi project_logs).
func (s *UserService) Deactivate(ctx context.Context, actor, id uuid.UUID) (*model.UserModel, error) {
	if actor == id {
		return nil, ErrSelfDeactivate
	}
	return s.Repo.Update(ctx, id, map[string]any{"is_active": false})
}
