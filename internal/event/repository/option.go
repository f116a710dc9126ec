package repository

import "time"

// CreateEventOptions holds the full row for a new event.
type CreateEventOptions struct {
	ID          string
	Title       string
	Start       time.Time
	End         *time.Time
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

// GetOneEventOptions holds filter parameters for fetching a single event.
// All non-empty fields are applied as AND conditions.
type GetOneEventOptions struct {
	ID        string
	CreatedBy string
}

// ListEventsOptions lists events in creation order. Limit 0 means no limit.
type ListEventsOptions struct {
	CreatedBy string
	Limit     int
	Offset    int
}

// SearchEventsOptions matches Text as a case-insensitive title substring.
// Results are ordered exact match first, then by match position, then by creation.
type SearchEventsOptions struct {
	Text      string
	CreatedBy string
	Limit     int
}

// UpdateEventOptions replaces the mutable columns of an event.
type UpdateEventOptions struct {
	ID          string
	Title       string
	Start       time.Time
	End         *time.Time
	Description string
	UpdatedAt   time.Time
}
