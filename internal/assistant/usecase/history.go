package usecase

import (
	"context"
	"errors"

	"task-calendar/internal/assistant"
	"task-calendar/internal/router"
)

// History returns a session's turns, oldest first. An unknown session has no history.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (assistant.HistoryOutput, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if errors.Is(err, assistant.ErrSessionNotFound) {
		return assistant.HistoryOutput{SessionID: sessionID, Turns: []assistant.Turn{}}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.History %s: %v", sessionID, err)
		return assistant.HistoryOutput{}, err
	}

	return assistant.HistoryOutput{
		SessionID:    sessionID,
		Turns:        session.Turns(),
		LastResponse: session.LastResponse,
	}, nil
}

// ClearHistory resets both the history and the last response.
func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ClearHistory %s: %v", sessionID, err)
		return err
	}
	return nil
}

// Classify exposes the classifier without touching the store or the session.
func (uc *implUseCase) Classify(ctx context.Context, text string) router.ClassifiedIntent {
	return uc.router.Classify(ctx, text)
}
