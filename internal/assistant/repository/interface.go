package repository

import (
	"context"

	"task-calendar/internal/assistant"
)

// SessionRepository stores assistant sessions. Implementations are safe for concurrent use.
type SessionRepository interface {
	// Get returns assistant.ErrSessionNotFound when id is unknown or expired.
	Get(ctx context.Context, id string) (assistant.Session, error)
	Save(ctx context.Context, s assistant.Session) error
	Delete(ctx context.Context, id string) error
}
