package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"task-calendar/internal/event"
	repo "task-calendar/internal/event/repository"
	"task-calendar/internal/model"
)

func newEventID() string {
	return uuid.NewString()
}

func (uc *implUseCase) record(op string, err error) {
	if uc.recorder != nil {
		uc.recorder.IncEventOp(op, err)
	}
}

// checkStruct runs struct validation and wraps failures as ErrInvalidPayload.
func (uc *implUseCase) checkStruct(v any) error {
	if err := uc.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on %s", event.ErrInvalidPayload, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", event.ErrInvalidPayload, err)
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// loadModifiable fetches an event and enforces the access policy for writes.
func (uc *implUseCase) loadModifiable(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	if strings.TrimSpace(id) == "" {
		return model.Event{}, event.ErrEventNotFound
	}

	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		return model.Event{}, err
	}
	if existing.ID == "" {
		return model.Event{}, event.ErrEventNotFound
	}
	if !event.PolicyFor(sc).CanModify(existing) {
		return model.Event{}, event.ErrForbidden
	}
	return existing, nil
}

// listVisible returns every event the caller may see, in creation order.
func (uc *implUseCase) listVisible(ctx context.Context, sc model.Scope) ([]model.Event, error) {
	events, _, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		CreatedBy: event.PolicyFor(sc).OwnerFilter(),
	})
	return events, err
}

func (uc *implUseCase) mirrorUpsert(ctx context.Context, e model.Event) {
	if uc.mirror == nil {
		return
	}
	if err := uc.mirror.Upsert(ctx, e); err != nil {
		uc.l.Warnf(ctx, "event.usecase.mirrorUpsert %s: %v", e.ID, err)
	}
}

func (uc *implUseCase) mirrorDelete(ctx context.Context, id string) {
	if uc.mirror == nil {
		return
	}
	if err := uc.mirror.Delete(ctx, id); err != nil {
		uc.l.Warnf(ctx, "event.usecase.mirrorDelete %s: %v", id, err)
	}
}
