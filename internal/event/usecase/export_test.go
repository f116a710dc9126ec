package usecase

import (
	"context"
	"strings"
	"testing"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-calendar/internal/event"
	"task-calendar/internal/model"
)

func TestExport(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	sc := model.Scope{}

	_, err := uc.Create(ctx, sc, event.CreateInput{Title: "Standup", Start: at(15, 9, 0), Description: "daily sync"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, sc, event.CreateInput{Title: "Retro", Start: at(22, 16, 0)})
	require.NoError(t, err)

	out, err := uc.Export(ctx, sc, event.ExportInput{DateRange: "today"})
	require.NoError(t, err)
	assert.Equal(t, "events-today.ics", out.Filename)

	cal, err := ical.ParseCalendar(strings.NewReader(string(out.Content)))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "daily sync", events[0].GetProperty(ical.ComponentPropertyDescription).Value)
	assert.NotNil(t, events[0].GetProperty(ical.ComponentPropertyDtEnd), "missing end defaults to one hour")

	all, err := uc.Export(ctx, sc, event.ExportInput{})
	require.NoError(t, err)
	assert.Equal(t, "events-all.ics", all.Filename)
	assert.Equal(t, 2, strings.Count(string(all.Content), "BEGIN:VEVENT"))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "events-this-week.ics", exportFilename("This Week"))
	assert.Equal(t, "events-next-week.ics", exportFilename("next_week"))
	assert.Equal(t, "events-2024-03-20.ics", exportFilename("2024-03-20"))
	assert.Equal(t, "events-all.ics", exportFilename("../"))
}
