package postgre

import (
	"database/sql"
	"time"

	"task-calendar/internal/model"
)

const eventColumns = `id, title, start_at, end_at, description, created_by, created_at, updated_at`

type eventRow struct {
	ID          string       `db:"id"`
	Title       string       `db:"title"`
	StartAt     time.Time    `db:"start_at"`
	EndAt       sql.NullTime `db:"end_at"`
	Description string       `db:"description"`
	CreatedBy   string       `db:"created_by"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func (row eventRow) toModel() model.Event {
	e := model.Event{
		ID:          row.ID,
		Title:       row.Title,
		Start:       row.StartAt,
		Description: row.Description,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.EndAt.Valid {
		end := row.EndAt.Time
		e.End = &end
	}
	return e
}

func toModels(rows []eventRow) []model.Event {
	events := make([]model.Event, len(rows))
	for i, row := range rows {
		events[i] = row.toModel()
	}
	return events
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
