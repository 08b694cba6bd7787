package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avdeyev/authgate/internal/myerrors"
)

const defaultJanitorInterval = time.Minute

// MemoryStore — внутрипроцессное хранилище сессий.
// Истёкшие записи отфильтровываются при чтении и убираются janitor-ом.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	stopOnce sync.Once
	stop     chan struct{}
}

func NewMemoryStore() *MemoryStore {
	st := &MemoryStore{
		sessions: make(map[string]Session),
		stop:     make(chan struct{}),
	}

	go st.janitor(defaultJanitorInterval)

	return st
}

func (st *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[token]
	st.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("get session: %w", myerrors.ErrSessionNotFound)
	}

	if s.Expired(time.Now()) {
		st.mu.Lock()
		delete(st.sessions, token)
		st.mu.Unlock()
		return nil, fmt.Errorf("get session: %w", myerrors.ErrSessionNotFound)
	}

	return &s, nil
}

func (st *MemoryStore) Set(_ context.Context, session *Session) error {
	st.mu.Lock()
	st.sessions[session.Token] = *session
	st.mu.Unlock()
	return nil
}

func (st *MemoryStore) Delete(_ context.Context, token string) error {
	st.mu.Lock()
	delete(st.sessions, token)
	st.mu.Unlock()
	return nil
}

func (st *MemoryStore) Close() {
	st.stopOnce.Do(func() {
		close(st.stop)
	})
}

func (st *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case now := <-ticker.C:
			st.mu.Lock()
			for token, s := range st.sessions {
				if s.Expired(now) {
					delete(st.sessions, token)
				}
			}
			st.mu.Unlock()
		}
	}
}
