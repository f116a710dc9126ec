package repository

import (
	"context"

	"task-calendar/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for events.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	// GetOneEvent returns a zero-value Event (ID == "") when nothing matches.
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, int, error)
	SearchEvents(ctx context.Context, opt SearchEventsOptions) ([]model.Event, error)
	// UpdateEvent returns a zero-value Event when the ID is unknown.
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
