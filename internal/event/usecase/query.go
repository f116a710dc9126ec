package usecase

import (
	"context"
	"strings"

	"task-calendar/internal/event"
	"task-calendar/internal/model"
	"task-calendar/pkg/datemath"
)

// Query lists visible events and narrows them by date range and text.
func (uc *implUseCase) Query(ctx context.Context, sc model.Scope, input event.QueryInput) (event.QueryOutput, error) {
	events, err := uc.listVisible(ctx, sc)
	uc.record("query", err)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Query listVisible: %v", err)
		return event.QueryOutput{}, err
	}

	rng := uc.resolveRange(input.DateRange)
	opt := filterOptions{Range: rng, Query: input.Query, Location: uc.parser.Location()}
	if part, ok := datemath.NormalizeDayPart(input.TimeOfDay); ok {
		opt.DayPart = part
	}
	out := event.QueryOutput{
		Events: filterEvents(events, opt),
	}
	if rng != nil {
		start, end := rng.Start, rng.End
		out.RangeStart, out.RangeEnd = &start, &end
	}
	return out, nil
}

// resolveRange returns nil when no range was requested.
func (uc *implUseCase) resolveRange(value string) *datemath.Range {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	rng := uc.parser.ResolveDateRange(value, uc.now())
	return &rng
}
