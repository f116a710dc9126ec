package model

import "time"

// Event is a calendar entry.
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         *time.Time // nil when the event has no explicit end
	Description string
	CreatedBy   string // empty for events created without an authenticated caller
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EndOrStart returns End when set, otherwise Start.
func (e Event) EndOrStart() time.Time {
	if e.End != nil {
		return *e.End
	}
	return e.Start
}

// OwnedBy reports whether userID created the event.
func (e Event) OwnedBy(userID string) bool {
	return userID != "" && e.CreatedBy == userID
}
