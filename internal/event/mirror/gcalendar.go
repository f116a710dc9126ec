package mirror

import (
	"context"
	"strings"
	"time"

	"task-calendar/internal/event"
	"task-calendar/internal/model"
	"task-calendar/pkg/gcalendar"
	"task-calendar/pkg/log"
)

const defaultDuration = time.Hour

// Calendar is the subset of the Google Calendar client the mirror needs.
type Calendar interface {
	UpsertEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calID, eventID string) error
}

type googleMirror struct {
	l          log.Logger
	cal        Calendar
	calendarID string
	timezone   string
}

var _ event.Mirror = (*googleMirror)(nil)

// NewGoogle copies event writes to a Google Calendar.
func NewGoogle(l log.Logger, cal Calendar, calendarID, timezone string) event.Mirror {
	return &googleMirror{
		l:          l,
		cal:        cal,
		calendarID: calendarID,
		timezone:   timezone,
	}
}

func (m *googleMirror) Upsert(ctx context.Context, e model.Event) error {
	end := e.Start.Add(defaultDuration)
	if e.End != nil {
		end = *e.End
	}

	_, err := m.cal.UpsertEvent(ctx, gcalendar.EventRequest{
		CalendarID:  m.calendarID,
		ID:          googleEventID(e.ID),
		Summary:     e.Title,
		Description: e.Description,
		StartTime:   e.Start,
		EndTime:     end,
		Timezone:    m.timezone,
	})
	if err != nil {
		return err
	}

	m.l.Debugf(ctx, "event.mirror.Upsert: %s", e.ID)
	return nil
}

func (m *googleMirror) Delete(ctx context.Context, id string) error {
	return m.cal.DeleteEvent(ctx, m.calendarID, googleEventID(id))
}

// googleEventID turns a UUID into a Google event ID. Lowercase hex is valid base32hex.
func googleEventID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}
