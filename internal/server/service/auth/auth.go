package auth

import (
	"context"
	"fmt"

	"github.com/avdeyev/authgate/internal/server/models"
	"github.com/avdeyev/authgate/internal/server/session"
	"go.uber.org/zap"
)

type SessionProvider interface {
	Create(ctx context.Context, userID models.UserID) (*session.Session, error)
	Resolve(ctx context.Context, token string) (models.UserID, error)
	Destroy(ctx context.Context, token string) error
}

type UserProvider interface {
	Create(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, userID models.UserID) (*models.User, error)
}

type LoginLedger interface {
	Append(ctx context.Context, event *models.LoginEvent) error
}

// Auth связывает учётные записи, журнал входов и сессии.
type Auth struct {
	user    UserProvider
	session SessionProvider
	ledger  LoginLedger
	logger  *zap.Logger
}

func NewAuth(u UserProvider, s SessionProvider, l LoginLedger, logger *zap.Logger) *Auth {
	return &Auth{
		user:    u,
		session: s,
		ledger:  l,
		logger:  logger,
	}
}

//nolint:dupl // register and login are different business processes with possible same structure
func (s *Auth) Register(ctx context.Context, req models.RegisterRequest, client models.ClientInfo) (*models.User, string, error) {
	user, err := s.user.Create(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	sess, err := s.session.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	s.recordLogin(ctx, user.ID, client)

	return user, sess.Token, nil
}

//nolint:dupl // register and login are different business processes with possible same structure
func (s *Auth) Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (*models.User, string, error) {
	user, err := s.user.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("authenticate user: %w", err)
	}

	sess, err := s.session.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	s.recordLogin(ctx, user.ID, client)

	return user, sess.Token, nil
}

// Logout гасит сессию. Повторный или «пустой» выход не ошибка.
func (s *Auth) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.session.Destroy(ctx, token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// ValidateSession превращает токен в пользователя. Токен без живой
// сессии и сессия на удалённого пользователя дают ошибку.
func (s *Auth) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.session.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}

	user, err := s.user.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user by ID: %w", err)
	}
	return user, nil
}

// recordLogin пишет событие входа. Неудача записи не валит запрос:
// пользователь уже вошёл, журнал лишь потеряет одну строку.
func (s *Auth) recordLogin(ctx context.Context, userID models.UserID, client models.ClientInfo) {
	event := &models.LoginEvent{
		UserID:    userID,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}
	if err := s.ledger.Append(ctx, event); err != nil {
		s.logger.Warn("append login event",
			zap.Uint("user_id", uint(userID)),
			zap.Error(err),
		)
	}
}
