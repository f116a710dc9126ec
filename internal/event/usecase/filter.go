package usecase

import (
	"strings"
	"time"

	"task-calendar/internal/model"
	"task-calendar/pkg/datemath"
)

type filterOptions struct {
	Range *datemath.Range // nil means no date restriction
	Query string          // empty means no text restriction
	// DayPart keeps events starting in that part of their day, read in Location.
	DayPart  datemath.DayPart
	Location *time.Location
}

// filterEvents keeps events overlapping the range whose title or description
// contains the query, case-insensitively. Input order is preserved.
func filterEvents(events []model.Event, opt filterOptions) []model.Event {
	query := strings.ToLower(strings.TrimSpace(opt.Query))

	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if opt.Range != nil && !opt.Range.Overlaps(e.Start, e.End) {
			continue
		}
		if opt.DayPart != "" && !opt.DayPart.StartsIn(inLocation(e.Start, opt.Location)) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Title), query) &&
			!strings.Contains(strings.ToLower(e.Description), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
