package http

import (
	"time"

	"task-calendar/internal/assistant"
	"task-calendar/internal/model"
	"task-calendar/internal/router"
)

const sessionHeader = "X-Session-ID"

// --- Request DTOs ---

type commandReq struct {
	Text      string `json:"text"       binding:"required,max=2000"`
	SessionID string `json:"session_id" binding:"max=128"`
}

func (r commandReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{SessionID: r.SessionID, Text: r.Text}
}

type classifyReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// --- Response DTOs ---

type intentResp struct {
	Intent     router.Intent `json:"intent"`
	Confidence float64       `json:"confidence"`
	Params     router.Params `json:"params"`
	Response   string        `json:"response,omitempty"`
	Source     router.Source `json:"source"`
}

func newIntentResp(ci router.ClassifiedIntent) intentResp {
	params := ci.Params
	if params == nil {
		params = router.NoParams{}
	}
	return intentResp{
		Intent:     ci.Intent,
		Confidence: ci.Confidence,
		Params:     params,
		Response:   ci.Response,
		Source:     ci.Source,
	}
}

type eventResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"created_by,omitempty"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
	}
}

type commandResp struct {
	SessionID string      `json:"session_id"`
	Response  string      `json:"response"`
	Intent    intentResp  `json:"intent"`
	Event     *eventResp  `json:"event,omitempty"`
	Results   []eventResp `json:"results,omitempty"`
}

func (h *handler) newCommandResp(out assistant.ProcessOutput) commandResp {
	resp := commandResp{
		SessionID: out.SessionID,
		Response:  out.Response,
		Intent:    newIntentResp(out.Intent),
	}
	if out.Event != nil {
		e := newEventResp(*out.Event)
		resp.Event = &e
	}
	if out.Results != nil {
		resp.Results = make([]eventResp, len(out.Results))
		for i, e := range out.Results {
			resp.Results[i] = newEventResp(e)
		}
	}
	return resp
}

type turnResp struct {
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResp struct {
	SessionID    string     `json:"session_id"`
	Turns        []turnResp `json:"turns"`
	LastResponse string     `json:"last_response"`
}

func (h *handler) newHistoryResp(out assistant.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{User: t.User, Assistant: t.Assistant, Timestamp: t.Timestamp}
	}
	return historyResp{
		SessionID:    out.SessionID,
		Turns:        turns,
		LastResponse: out.LastResponse,
	}
}
