package usecase

import (
	"context"
	"strings"

	"task-calendar/internal/event"
	repo "task-calendar/internal/event/repository"
	"task-calendar/internal/model"
)

// List returns a page of visible events, oldest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	events, total, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		CreatedBy: event.PolicyFor(sc).OwnerFilter(),
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	uc.record("list", err)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List ListEvents: %v", err)
		return event.ListOutput{}, err
	}

	return event.ListOutput{
		Events: events,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Search ranks visible events by title substring match.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input event.SearchInput) (event.SearchOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return event.SearchOutput{Events: []model.Event{}}, nil
	}

	limit := input.Limit
	if limit <= 0 || limit > event.SearchLimit {
		limit = event.SearchLimit
	}

	events, err := uc.repo.SearchEvents(ctx, repo.SearchEventsOptions{
		Text:      text,
		CreatedBy: event.PolicyFor(sc).OwnerFilter(),
		Limit:     limit,
	})
	uc.record("search", err)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Search SearchEvents: %v", err)
		return event.SearchOutput{}, err
	}
	return event.SearchOutput{Events: events}, nil
}
