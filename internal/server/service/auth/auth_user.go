package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/models"
	utils "github.com/avdeyev/authgate/internal/server/utils/auth"
	sanitize "github.com/avdeyev/authgate/internal/server/utils/strings"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id models.UserID) (*models.User, error)
}

// AuthUser отвечает за учётные записи: создание, проверку пароля,
// нормализацию входных данных.
type AuthUser struct {
	repo UserRepository
}

func NewAuthUser(r UserRepository) *AuthUser {
	return &AuthUser{
		repo: r,
	}
}

func (s *AuthUser) Create(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	image := sanitize.Sanitize(req.Image)
	if image == "" {
		image = models.DefaultImage
	}

	user := &models.User{
		Username:     sanitize.Sanitize(req.Username),
		Email:        sanitize.NormalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		Image:        image,
		Role:         models.RoleUser,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return user, nil
}

// Authenticate проверяет пару email/пароль. Неизвестный email и неверный
// пароль дают один и тот же ErrInvalidCredentials, чтобы по ответу нельзя
// было перечислять зарегистрированные адреса.
func (s *AuthUser) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, sanitize.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, myerrors.ErrUserNotFound) {
			return nil, fmt.Errorf("find by email: %w", myerrors.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err = utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("verify password: %w", myerrors.ErrInvalidCredentials)
	}

	return user, nil
}

func (s *AuthUser) GetByID(ctx context.Context, id models.UserID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user by ID: %w", err)
	}
	return user, nil
}
