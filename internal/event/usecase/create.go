package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-calendar/internal/event"
	repo "task-calendar/internal/event/repository"
	"task-calendar/internal/model"
)

// Create persists a new event in a single insert. The creator is recorded
// when the caller is authenticated.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := uc.checkStruct(input); err != nil {
		return event.CreateOutput{}, err
	}
	if input.Start.IsZero() {
		return event.CreateOutput{}, fmt.Errorf("%w: start is required", event.ErrInvalidPayload)
	}

	e, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		ID:          uc.newID(),
		Title:       input.Title,
		Start:       input.Start,
		End:         input.End,
		Description: input.Description,
		CreatedBy:   sc.UserID,
		CreatedAt:   uc.now(),
	})
	uc.record("create", err)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Create CreateEvent: %v", err)
		return event.CreateOutput{}, err
	}

	uc.mirrorUpsert(ctx, e)
	return event.CreateOutput{Event: e}, nil
}
