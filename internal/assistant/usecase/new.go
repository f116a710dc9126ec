package usecase

import (
	"time"

	"github.com/google/uuid"

	"task-calendar/internal/assistant"
	"task-calendar/internal/assistant/repository"
	"task-calendar/internal/event"
	"task-calendar/internal/router"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	router   router.Router
	events   event.UseCase
	sessions repository.SessionRepository
	parser   *datemath.Parser
	guard    *inflight
	now      func() time.Time
	newID    func() string
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithSessionIDGenerator overrides how IDs are minted for new sessions.
func WithSessionIDGenerator(gen func() string) Option {
	return func(uc *implUseCase) { uc.newID = gen }
}

// New creates the assistant use case.
func New(
	l log.Logger,
	r router.Router,
	events event.UseCase,
	sessions repository.SessionRepository,
	parser *datemath.Parser,
	opts ...Option,
) assistant.UseCase {
	uc := &implUseCase{
		l:        l,
		router:   r,
		events:   events,
		sessions: sessions,
		parser:   parser,
		guard:    newInflight(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
