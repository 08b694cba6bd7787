package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/avdeyev/authgate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(token string, userID models.UserID, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()

	st := NewMemoryStore()
	defer st.Close()

	require.NoError(t, st.Set(ctx, testSession("token-1", 42, time.Hour)))

	got, err := st.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.EqualValues(t, 42, got.UserID)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	ctx := context.Background()

	st := NewMemoryStore()
	defer st.Close()

	_, err := st.Get(ctx, "no-such-token")
	assert.ErrorIs(t, err, myerrors.ErrSessionNotFound)
}

func TestMemoryStoreExpiredSession(t *testing.T) {
	ctx := context.Background()

	st := NewMemoryStore()
	defer st.Close()

	require.NoError(t, st.Set(ctx, testSession("stale", 42, -time.Minute)))

	// истёкшая запись отфильтровывается при чтении, не дожидаясь janitor-а
	_, err := st.Get(ctx, "stale")
	assert.ErrorIs(t, err, myerrors.ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()

	st := NewMemoryStore()
	defer st.Close()

	require.NoError(t, st.Set(ctx, testSession("token-1", 42, time.Hour)))
	require.NoError(t, st.Delete(ctx, "token-1"))

	_, err := st.Get(ctx, "token-1")
	assert.ErrorIs(t, err, myerrors.ErrSessionNotFound)

	// Delete идемпотентен
	assert.NoError(t, st.Delete(ctx, "token-1"))
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()

	st := NewMemoryStore()
	defer st.Close()

	require.NoError(t, st.Set(ctx, testSession("token-1", 1, time.Hour)))
	require.NoError(t, st.Set(ctx, testSession("token-1", 2, time.Hour)))

	got, err := st.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.UserID)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()

	st := NewMemoryStore()
	defer st.Close()

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				token := fmt.Sprintf("token-%d-%d", g, i)
				_ = st.Set(ctx, testSession(token, models.UserID(g), time.Hour))
				_, _ = st.Get(ctx, token)
				_ = st.Delete(ctx, token)
			}
		}(g)
	}
	wg.Wait()
}

func TestMemoryStoreCloseIsIdempotent(t *testing.T) {
	st := NewMemoryStore()
	st.Close()
	st.Close()
}
