package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"task-calendar/internal/assistant"
	"task-calendar/internal/assistant/repository"
	"task-calendar/pkg/log"
)

const keyPrefix = "assistant:session:"

// Client is the subset of go-redis used by the store. *goredis.Client satisfies it.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

type implRepository struct {
	client Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed session store. Each save refreshes the TTL.
func New(client Client, ttl time.Duration, l log.Logger) repository.SessionRepository {
	return &implRepository{client: client, ttl: ttl, l: l}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *implRepository) Get(ctx context.Context, id string) (assistant.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return assistant.Session{}, assistant.ErrSessionNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.Get %s: %v", id, err)
		return assistant.Session{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	var s assistant.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		r.l.Warnf(ctx, "assistant.repository.redis.Get %s: corrupt session: %v", id, err)
		return assistant.Session{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	if s.History == nil {
		s.History = assistant.NewSession(id).History
	}
	return s, nil
}

func (r *implRepository) Save(ctx context.Context, s assistant.Session) error {
	if s.History == nil {
		s.History = assistant.NewSession(s.ID).History
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.Save %s: %v", s.ID, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		r.l.Errorf(ctx, "assistant.repository.redis.Delete %s: %v", id, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}
