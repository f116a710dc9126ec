package usecase

import (
	"context"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"task-calendar/internal/event"
	"task-calendar/internal/model"
)

const (
	icsProductID       = "-//task-calendar//events//EN"
	icsDefaultDuration = time.Hour
)

// Export renders the visible events, optionally narrowed to a date range, as iCalendar.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input event.ExportInput) (event.ExportOutput, error) {
	events, err := uc.listVisible(ctx, sc)
	uc.record("export", err)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Export listVisible: %v", err)
		return event.ExportOutput{}, err
	}

	events = filterEvents(events, filterOptions{Range: uc.resolveRange(input.DateRange)})

	return event.ExportOutput{
		Filename: exportFilename(input.DateRange),
		Content:  []byte(buildCalendar(events, uc.now()).Serialize()),
	}, nil
}

func buildCalendar(events []model.Event, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId(icsProductID)
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		ve.SetStartAt(e.Start)
		if e.End != nil {
			ve.SetEndAt(*e.End)
		} else {
			ve.SetEndAt(e.Start.Add(icsDefaultDuration))
		}
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetDtStampTime(stamp)
		if !e.UpdatedAt.IsZero() {
			ve.SetModifiedAt(e.UpdatedAt)
		}
	}
	return cal
}

func exportFilename(dateRange string) string {
	name := strings.ToLower(strings.TrimSpace(dateRange))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r == ' ' || r == '_':
			return '-'
		}
		return -1
	}, name)
	if name == "" {
		name = "all"
	}
	return "events-" + name + ".ics"
}
