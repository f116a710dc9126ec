package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"task-calendar/internal/event"
	"task-calendar/internal/event/repository"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/log"
)

// OpRecorder counts store operations.
type OpRecorder interface {
	IncEventOp(op string, err error)
}

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	parser   *datemath.Parser
	validate *validator.Validate
	mirror   event.Mirror
	recorder OpRecorder
	now      func() time.Time
	newID    func() string
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithMirror copies writes to an external calendar.
func WithMirror(m event.Mirror) Option {
	return func(uc *implUseCase) { uc.mirror = m }
}

// WithRecorder counts every store operation.
func WithRecorder(r OpRecorder) Option {
	return func(uc *implUseCase) { uc.recorder = r }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithIDGenerator overrides event ID generation.
func WithIDGenerator(gen func() string) Option {
	return func(uc *implUseCase) { uc.newID = gen }
}

// New creates a new event UseCase implementation.
func New(l log.Logger, repo repository.Repository, parser *datemath.Parser, opts ...Option) event.UseCase {
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		parser:   parser,
		validate: validator.New(),
		now:      time.Now,
		newID:    newEventID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
