package http

import (
	"time"

	"task-calendar/internal/event"
	"task-calendar/internal/model"
)

// Accepted layouts for timestamps without a zone, read in the configured timezone.
var localLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	var lastErr error
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseOptionalTimestamp(value *string, loc *time.Location) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseTimestamp(*value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"       binding:"required,max=255"`
	Start       string  `json:"start"       binding:"required"`
	End         *string `json:"end"`
	Description string  `json:"description" binding:"max=5000"`
}

func (r createReq) toInput(loc *time.Location) (event.CreateInput, error) {
	start, err := parseTimestamp(r.Start, loc)
	if err != nil {
		return event.CreateInput{}, errInvalidTime
	}
	end, err := parseOptionalTimestamp(r.End, loc)
	if err != nil {
		return event.CreateInput{}, errInvalidTime
	}
	return event.CreateInput{
		Title:       r.Title,
		Start:       start,
		End:         end,
		Description: r.Description,
	}, nil
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() event.ListInput {
	if r.Limit < 0 {
		r.Limit = 0
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return event.ListInput{Limit: r.Limit, Offset: r.Offset}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	ClearEnd    bool    `json:"clear_end"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

func (r updateReq) toInput(loc *time.Location) (event.UpdateInput, error) {
	start, err := parseOptionalTimestamp(r.Start, loc)
	if err != nil {
		return event.UpdateInput{}, errInvalidTime
	}
	end, err := parseOptionalTimestamp(r.End, loc)
	if err != nil {
		return event.UpdateInput{}, errInvalidTime
	}
	return event.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Start:       start,
		End:         end,
		ClearEnd:    r.ClearEnd,
		Description: r.Description,
	}, nil
}

// ---

type searchReq struct {
	Q     string `form:"q"`
	Limit int    `form:"limit"`
}

func (r searchReq) toInput() event.SearchInput {
	return event.SearchInput{Text: r.Q, Limit: r.Limit}
}

type queryReq struct {
	DateRange string `form:"date_range"`
	Q         string `form:"q"`
	TimeOfDay string `form:"time_of_day"`
}

func (r queryReq) toInput() event.QueryInput {
	return event.QueryInput{DateRange: r.DateRange, Query: r.Q, TimeOfDay: r.TimeOfDay}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func newEventResps(events []model.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

type eventItemResp struct {
	Event eventResp `json:"event"`
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	return listResp{
		Events: newEventResps(out.Events),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type searchResp struct {
	Events []eventResp `json:"events"`
}

type queryResp struct {
	Events     []eventResp `json:"events"`
	RangeStart *time.Time  `json:"range_start,omitempty"`
	RangeEnd   *time.Time  `json:"range_end,omitempty"`
}

func (h *handler) newQueryResp(out event.QueryOutput) queryResp {
	return queryResp{
		Events:     newEventResps(out.Events),
		RangeStart: out.RangeStart,
		RangeEnd:   out.RangeEnd,
	}
}

func (r queryReq) toExportInput() event.ExportInput {
	return event.ExportInput{DateRange: r.DateRange}
}
