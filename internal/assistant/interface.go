package assistant

import (
	"context"

	"task-calendar/internal/model"
	"task-calendar/internal/router"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process classifies text, runs the matching store operation and records the turn.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	ClearHistory(ctx context.Context, sessionID string) error
	Classify(ctx context.Context, text string) router.ClassifiedIntent
}
