package session

import (
	"context"
	"time"

	"github.com/avdeyev/authgate/internal/server/models"
)

// Session связывает непрозрачный токен с пользователем.
// Живёт только в хранилище сессий, в Postgres не попадает.
type Session struct {
	Token     string        `json:"token"`
	UserID    models.UserID `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store — хранилище сессий с атомарностью на уровне одного токена.
// Get для неизвестного или истёкшего токена возвращает
// myerrors.ErrSessionNotFound. Delete идемпотентен.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Set(ctx context.Context, session *Session) error
	Delete(ctx context.Context, token string) error
}
