package gcalendar

import "time"

// EventRequest is the input for writing a Google Calendar event.
type EventRequest struct {
	CalendarID  string
	ID          string // optional on create, required on upsert; lowercase base32hex
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
