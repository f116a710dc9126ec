package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-calendar/internal/event"
	repo "task-calendar/internal/event/repository"
	"task-calendar/internal/model"
)

// Detail retrieves a single visible event. Hidden events read as not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	e, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Detail GetOneEvent: %v", err)
		return event.DetailOutput{}, err
	}
	if e.ID == "" || !event.PolicyFor(sc).CanView(e) {
		return event.DetailOutput{}, event.ErrEventNotFound
	}
	return event.DetailOutput{Event: e}, nil
}

// Update changes only the provided fields of an event.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	existing, err := uc.loadModifiable(ctx, sc, input.ID)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	opt := repo.UpdateEventOptions{
		ID:          existing.ID,
		Title:       existing.Title,
		Start:       existing.Start,
		End:         existing.End,
		Description: existing.Description,
		UpdatedAt:   uc.now(),
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return event.UpdateOutput{}, fmt.Errorf("%w: title must not be empty", event.ErrInvalidPayload)
		}
		opt.Title = title
	}
	if input.Start != nil {
		opt.Start = *input.Start
	}
	if input.ClearEnd {
		opt.End = nil
	} else if input.End != nil {
		opt.End = input.End
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}

	updated, err := uc.repo.UpdateEvent(ctx, opt)
	uc.record("update", err)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Update UpdateEvent: %v", err)
		return event.UpdateOutput{}, err
	}
	if updated.ID == "" {
		// Deleted between the read and the write.
		return event.UpdateOutput{}, event.ErrEventNotFound
	}

	uc.mirrorUpsert(ctx, updated)
	return event.UpdateOutput{Event: updated}, nil
}

// Delete removes an event the caller may modify.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.loadModifiable(ctx, sc, id)
	if err != nil {
		return err
	}

	err = uc.repo.DeleteEvent(ctx, existing.ID)
	uc.record("delete", err)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Delete DeleteEvent: %v", err)
		return err
	}

	uc.mirrorDelete(ctx, existing.ID)
	return nil
}
