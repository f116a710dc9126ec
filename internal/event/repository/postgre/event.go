package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	repo "task-calendar/internal/event/repository"
	"task-calendar/internal/model"
)

// CreateEvent inserts a new event row and returns the stored entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	query := `
		INSERT INTO events (id, title, start_at, end_at, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + eventColumns

	var row eventRow
	err := r.db.GetContext(ctx, &row, query,
		opt.ID, opt.Title, opt.Start, nullTime(opt.End), opt.Description, opt.CreatedBy, opt.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return row.toModel(), nil
}

// GetOneEvent retrieves a single event by the provided filters (AND condition).
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM events WHERE %s LIMIT 1", eventColumns, where)

	var row eventRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return row.toModel(), nil
}

// ListEvents returns a page of events in creation order and the total count.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, int, error) {
	where, args := r.buildOwnerFilter(opt.CreatedBy)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s", where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEvents"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	page, pageArgs := r.buildPagination(opt.Limit, opt.Offset, len(args)+1)
	query := fmt.Sprintf("SELECT %s FROM events WHERE %s ORDER BY created_at ASC, id ASC%s", eventColumns, where, page)

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, append(args, pageArgs...)...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return toModels(rows), total, nil
}

// SearchEvents finds events whose title contains opt.Text.
func (r *implRepository) SearchEvents(ctx context.Context, opt repo.SearchEventsOptions) ([]model.Event, error) {
	query, args := r.buildSearchQuery(opt)

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchEvents"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToSearch, err)
	}
	return toModels(rows), nil
}

// UpdateEvent replaces the mutable columns of an event.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (model.Event, error) {
	query := `
		UPDATE events
		SET title = $1, start_at = $2, end_at = $3, description = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + eventColumns

	var row eventRow
	err := r.db.GetContext(ctx, &row, query,
		opt.Title, opt.Start, nullTime(opt.End), opt.Description, opt.UpdatedAt, opt.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return row.toModel(), nil
}

// DeleteEvent removes an event by ID.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}
