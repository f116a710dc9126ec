package event

import (
	"time"

	"task-calendar/internal/model"
)

// SearchLimit caps title search results.
const SearchLimit = 20

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string `validate:"required,max=255"`
	Start       time.Time
	End         *time.Time
	Description string `validate:"max=5000"`
}

type ListInput struct {
	Limit  int
	Offset int
}

// UpdateInput changes only the non-nil fields. ClearEnd removes the end time.
type UpdateInput struct {
	ID          string `validate:"required"`
	Title       *string
	Start       *time.Time
	End         *time.Time
	ClearEnd    bool
	Description *string
}

type SearchInput struct {
	Text  string
	Limit int
}

// QueryInput filters visible events. DateRange is a range keyword
// ("today", "this week", ...) or a specific date; empty means no range.
// TimeOfDay is morning, afternoon or evening; other values are ignored.
type QueryInput struct {
	DateRange string
	Query     string
	TimeOfDay string
}

type ExportInput struct {
	DateRange string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Event model.Event
}

type ListOutput struct {
	Events []model.Event
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Event model.Event
}

type UpdateOutput struct {
	Event model.Event
}

type SearchOutput struct {
	Events []model.Event
}

type QueryOutput struct {
	Events     []model.Event
	RangeStart *time.Time
	RangeEnd   *time.Time
}

type ExportOutput struct {
	Filename string
	Content  []byte
}
