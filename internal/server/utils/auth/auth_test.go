package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/avdeyev/authgate/internal/server/handler/config"
	"github.com/avdeyev/authgate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.NoError(t, VerifyPassword(hash, "password123"))
	assert.Error(t, VerifyPassword(hash, "wrongpass"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)

	second, err := HashPassword("password123")
	require.NoError(t, err)

	// bcrypt солит каждый хеш
	assert.NotEqual(t, first, second)
}

func TestCtxUser(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		want := CtxUser{ID: 42, Role: models.RoleAdmin}
		ctx := WithUser(context.Background(), want)

		got, err := GetCtxUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := GetCtxUser(context.Background())
		assert.ErrorIs(t, err, ErrUserNotFoundInContext)
	})
}

func TestSessionCookies(t *testing.T) {
	cfg := &config.Config{
		AuthConfig: config.AuthConfig{
			AuthCookieName: config.DefaultAuthCookieName,
			SessionTTL:     config.DefaultSessionTTL,
		},
	}

	t.Run("set", func(t *testing.T) {
		rr := httptest.NewRecorder()
		SetSessionCookie(cfg, rr, "test-token")

		resp := rr.Result()
		defer resp.Body.Close()

		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cfg.AuthCookieName, cookies[0].Name)
		assert.Equal(t, "test-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, "/", cookies[0].Path)
	})

	t.Run("clear", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ClearSessionCookie(cfg, rr)

		resp := rr.Result()
		defer resp.Body.Close()

		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cfg.AuthCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})
}
