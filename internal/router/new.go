package router

import (
	"context"
	"time"

	"task-calendar/pkg/llmprovider"
	"task-calendar/pkg/log"
)

// Router classifies free text into an intent. It never fails.
type Router interface {
	Classify(ctx context.Context, text string) ClassifiedIntent
}

// Generator is the text-generation dependency, satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Counter counts classifications by intent and source.
type Counter interface {
	IncClassification(intent, source string)
}

// SemanticRouter classifies user intent using an LLM with a keyword fallback.
type SemanticRouter struct {
	llm     Generator
	l       log.Logger
	loc     *time.Location
	now     func() time.Time
	counter Counter
}

var _ Router = (*SemanticRouter)(nil)

// Option customizes a SemanticRouter.
type Option func(*SemanticRouter)

// WithCounter records every classification.
func WithCounter(c Counter) Option {
	return func(r *SemanticRouter) { r.counter = c }
}

// WithClock overrides the time source used for the prompt and fallback dates.
func WithClock(now func() time.Time) Option {
	return func(r *SemanticRouter) { r.now = now }
}

// New creates a new SemanticRouter. Dates are computed in loc.
func New(llm Generator, l log.Logger, loc *time.Location, opts ...Option) *SemanticRouter {
	if loc == nil {
		loc = time.UTC
	}
	r := &SemanticRouter{
		llm: llm,
		l:   l,
		loc: loc,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
