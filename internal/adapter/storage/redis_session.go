package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions under session:{identity} with a
// per-key TTL, so idle sessions expire server-side.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (r *RedisSessionStore) Get(ctx context.Context, identity string) (domain.Session, bool, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+identity).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("get session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return sess, true, nil
}

func (r *RedisSessionStore) Put(ctx context.Context, identity string, sess domain.Session) error {
	sess.UpdatedAt = time.Now()
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+identity, raw, r.ttl).Err()
}

func (r *RedisSessionStore) Clear(ctx context.Context, identity string) error {
	return r.client.Del(ctx, sessionKeyPrefix+identity).Err()
}
