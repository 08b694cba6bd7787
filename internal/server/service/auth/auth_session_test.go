package auth

import (
	"context"
	"testing"
	"time"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthSession(t *testing.T, ttl time.Duration) *AuthSession {
	t.Helper()

	store := session.NewMemoryStore()
	t.Cleanup(store.Close)

	return NewAuthSession(store, &config.Config{
		AuthConfig: config.AuthConfig{
			AuthCookieName: config.DefaultAuthCookieName,
			SessionTTL:     ttl,
		},
	})
}

func TestAuthSessionCreate(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthSession(t, config.DefaultSessionTTL)

	sess, err := svc.Create(ctx, 42)
	require.NoError(t, err)

	// 32 байта энтропии в hex
	assert.Len(t, sess.Token, 64)
	assert.Equal(t, sess.CreatedAt.Add(config.DefaultSessionTTL), sess.ExpiresAt)

	userID, err := svc.Resolve(ctx, sess.Token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestAuthSessionTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthSession(t, config.DefaultSessionTTL)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := svc.Create(ctx, 1)
		require.NoError(t, err)
		assert.False(t, seen[sess.Token])
		seen[sess.Token] = true
	}
}

func TestAuthSessionResolveUnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthSession(t, config.DefaultSessionTTL)

	_, err := svc.Resolve(ctx, "no-such-token")
	assert.ErrorIs(t, err, myerrors.ErrSessionNotFound)
}

func TestAuthSessionResolveExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthSession(t, -time.Minute)

	sess, err := svc.Create(ctx, 42)
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, myerrors.ErrSessionNotFound)
}

func TestAuthSessionDestroy(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthSession(t, config.DefaultSessionTTL)

	sess, err := svc.Create(ctx, 42)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(ctx, sess.Token))

	_, err = svc.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, myerrors.ErrSessionNotFound)

	// повторное гашение не ошибка
	assert.NoError(t, svc.Destroy(ctx, sess.Token))
}
