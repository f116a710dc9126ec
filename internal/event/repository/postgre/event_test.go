package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "task-calendar/internal/event/repository"
	"task-calendar/pkg/log"
)

var columns = []string{"id", "title", "start_at", "end_at", "description", "created_by", "created_at", "updated_at"}

func newEventRepoMock(t *testing.T) (*implRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	r := &implRepository{db: sqlx.NewDb(db, "sqlmock"), l: log.NewNop()}
	return r, mock, func() { db.Close() }
}

func TestCreateEvent(t *testing.T) {
	r, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	start := time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO events").
		WithArgs("e-1", "Meeting", start, sqlmock.AnyArg(), "desc", "alice", now).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("e-1", "Meeting", start, end, "desc", "alice", now, now))

	e, err := r.CreateEvent(context.Background(), repo.CreateEventOptions{
		ID: "e-1", Title: "Meeting", Start: start, End: &end, Description: "desc", CreatedBy: "alice", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, "Meeting", e.Title)
	require.NotNil(t, e.End)
	assert.True(t, e.End.Equal(end))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvent_Failure(t *testing.T) {
	r, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO events").WillReturnError(errors.New("connection reset"))

	_, err := r.CreateEvent(context.Background(), repo.CreateEventOptions{ID: "e-1", Title: "x"})
	assert.ErrorIs(t, err, repo.ErrFailedToInsert)
}

func TestGetOneEvent(t *testing.T) {
	r, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + eventColumns + " FROM events WHERE id = $1 LIMIT 1")).
		WithArgs("e-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("e-1", "Standup", now, nil, "", "", now, now))

	e, err := r.GetOneEvent(context.Background(), repo.GetOneEventOptions{ID: "e-1"})
	require.NoError(t, err)
	assert.Equal(t, "Standup", e.Title)
	assert.Nil(t, e.End)

	mock.ExpectQuery("FROM events WHERE id = \\$1 LIMIT 1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	e, err = r.GetOneEvent(context.Background(), repo.GetOneEventOptions{ID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents(t *testing.T) {
	r, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM events WHERE created_by = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE created_by = $1 ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3")).
		WithArgs("alice", 2, 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("e-2", "B", now, nil, "", "alice", now, now).
			AddRow("e-3", "C", now, nil, "", "alice", now, now))

	events, total, err := r.ListEvents(context.Background(), repo.ListEventsOptions{CreatedBy: "alice", Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, events, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEvents(t *testing.T) {
	r, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`title ILIKE $1 ESCAPE '\' AND created_by = $3 ORDER BY (lower(title) = lower($2)) DESC`)).
		WithArgs(`%50\%%`, "50%", "alice", 20).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("e-1", "50% review", now, nil, "", "alice", now, now))

	events, err := r.SearchEvents(context.Background(), repo.SearchEventsOptions{Text: "50%", CreatedBy: "alice", Limit: 20})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "50% review", events[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEvent(t *testing.T) {
	r, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("UPDATE events").
		WithArgs("Renamed", now, sqlmock.AnyArg(), "", now, "e-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("e-1", "Renamed", now, nil, "", "", now, now))

	e, err := r.UpdateEvent(context.Background(), repo.UpdateEventOptions{ID: "e-1", Title: "Renamed", Start: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", e.Title)

	mock.ExpectQuery("UPDATE events").WillReturnError(sql.ErrNoRows)
	e, err = r.UpdateEvent(context.Background(), repo.UpdateEventOptions{ID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent(t *testing.T) {
	r, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs("e-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, r.DeleteEvent(context.Background(), "e-1"))

	mock.ExpectExec("DELETE FROM events").WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, r.DeleteEvent(context.Background(), "e-2"), repo.ErrFailedToDelete)
	assert.NoError(t, mock.ExpectationsWereMet())
}
