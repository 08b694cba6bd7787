package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	"github.com/avdeyev/authgate/internal/server/session"
)

// tokenBytes даёт 256 бит энтропии на токен.
const tokenBytes = 32

// AuthSession выпускает, проверяет и гасит сессии поверх
// подключаемого session.Store.
type AuthSession struct {
	store session.Store
	ttl   time.Duration
}

func NewAuthSession(store session.Store, cfg *config.Config) *AuthSession {
	return &AuthSession{
		store: store,
		ttl:   cfg.SessionTTL,
	}
}

func (s *AuthSession) Create(ctx context.Context, userID models.UserID) (*session.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now()
	sess := &session.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err = s.store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

func (s *AuthSession) Resolve(ctx context.Context, token string) (models.UserID, error) {
	sess, err := s.store.Get(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	return sess.UserID, nil
}

// Destroy идемпотентен: отсутствие сессии не считается ошибкой.
func (s *AuthSession) Destroy(ctx context.Context, token string) error {
	err := s.store.Delete(ctx, token)
	if err != nil && !errors.Is(err, myerrors.ErrSessionNotFound) {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
