package router

// Intent is the classified user intention.
type Intent string

const (
	IntentCreateTask Intent = "CREATE_TASK"
	IntentQueryTasks Intent = "QUERY_TASKS"
	IntentUpdateTask Intent = "UPDATE_TASK"
	IntentDeleteTask Intent = "DELETE_TASK"
	IntentUnknown    Intent = "UNKNOWN"
)

// Valid reports whether i is one of the five intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentCreateTask, IntentQueryTasks, IntentUpdateTask, IntentDeleteTask, IntentUnknown:
		return true
	}
	return false
}

// Source tells which path produced a classification.
type Source string

const (
	SourceLLM             Source = "llm"
	SourceKeywordFallback Source = "keyword_fallback"
	SourceParseFailure    Source = "parse_failure"
	SourceEmptyInput      Source = "empty_input"
)

// Params is the intent-specific parameter set. The concrete type always matches the intent.
type Params interface {
	Intent() Intent
}

// CreateParams describes a new event.
type CreateParams struct {
	Title       string `json:"title,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Duration    *int   `json:"duration,omitempty"` // minutes
	Description string `json:"description,omitempty"`
}

func (CreateParams) Intent() Intent { return IntentCreateTask }

// QueryParams narrows a search.
type QueryParams struct {
	Query     string `json:"query,omitempty"`
	DateRange string `json:"dateRange,omitempty"`
	TimeRange string `json:"timeRange,omitempty"`
}

func (QueryParams) Intent() Intent { return IntentQueryTasks }

// UpdateParams names a target event and the fields to change.
type UpdateParams struct {
	Target      string `json:"target,omitempty"`
	Title       string `json:"title,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Duration    *int   `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

func (UpdateParams) Intent() Intent { return IntentUpdateTask }

// DeleteParams names the event to remove.
type DeleteParams struct {
	Target string `json:"target,omitempty"`
	Date   string `json:"date,omitempty"`
}

func (DeleteParams) Intent() Intent { return IntentDeleteTask }

// NoParams accompanies UNKNOWN.
type NoParams struct{}

func (NoParams) Intent() Intent { return IntentUnknown }

// ClassifiedIntent is the result of classifying one input.
type ClassifiedIntent struct {
	Intent     Intent
	Confidence float64 // 0..1
	Params     Params
	Response   string
	Source     Source
}
