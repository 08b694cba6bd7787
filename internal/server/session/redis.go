package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/authgate/internal/myerrors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore хранит сессии в Redis с TTL на ключе,
// просроченные токены Redis убирает сам.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (st *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := st.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("get session: %w", myerrors.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("get session from redis: %w", err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	if s.Expired(time.Now()) {
		return nil, fmt.Errorf("get session: %w", myerrors.ErrSessionNotFound)
	}

	return &s, nil
}

func (st *RedisStore) Set(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("set session: %w", myerrors.ErrSessionNotFound)
	}

	if err := st.client.Set(ctx, redisKeyPrefix+session.Token, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set session in redis: %w", err)
	}
	return nil
}

func (st *RedisStore) Delete(ctx context.Context, token string) error {
	if err := st.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session in redis: %w", err)
	}
	return nil
}
