package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-calendar/internal/assistant"
	"task-calendar/internal/assistant/repository"
)

const (
	DefaultSize = 10000
	DefaultTTL  = 24 * time.Hour
)

type implRepository struct {
	sessions *expirable.LRU[string, assistant.Session]
}

// New creates an in-process session store. Least recently used sessions are evicted
// beyond size, and idle sessions expire after ttl.
func New(size int, ttl time.Duration) repository.SessionRepository {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, assistant.Session](size, nil, ttl),
	}
}

func (r *implRepository) Get(ctx context.Context, id string) (assistant.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return assistant.Session{}, assistant.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (r *implRepository) Save(ctx context.Context, s assistant.Session) error {
	r.sessions.Add(s.ID, s.Clone())
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.sessions.Remove(id)
	return nil
}
