package assistant

import (
	"time"

	"task-calendar/internal/model"
	"task-calendar/internal/router"
	"task-calendar/pkg/ringbuffer"
)

// HistorySize is the number of turns a session keeps.
const HistorySize = 5

// Turn is one user command and the assistant's reply.
type Turn struct {
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-conversation context.
type Session struct {
	ID           string                 `json:"id"`
	History      *ringbuffer.Ring[Turn] `json:"history"`
	LastResponse string                 `json:"last_response"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// NewSession returns an empty session.
func NewSession(id string) Session {
	return Session{ID: id, History: ringbuffer.New[Turn](HistorySize)}
}

// Turns returns the history oldest first.
func (s Session) Turns() []Turn {
	if s.History == nil {
		return []Turn{}
	}
	return s.History.Items()
}

// ProcessInput is one natural-language command.
type ProcessInput struct {
	SessionID string
	Text      string
}

// ProcessOutput is the outcome of a command.
type ProcessOutput struct {
	SessionID string
	Intent    router.ClassifiedIntent
	Response  string
	Event     *model.Event  // created or updated event
	Results   []model.Event // query results
}

// HistoryOutput is a session's turns plus the last response.
type HistoryOutput struct {
	SessionID    string
	Turns        []Turn
	LastResponse string
}

// Clone returns a copy that shares no history storage with s.
func (s Session) Clone() Session {
	out := s
	capacity := HistorySize
	if s.History != nil {
		capacity = s.History.Cap()
	}
	out.History = ringbuffer.New[Turn](capacity)
	for _, t := range s.Turns() {
		out.History.Push(t)
	}
	return out
}
