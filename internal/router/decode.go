package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// wireResult is the JSON object the model is asked to return.
type wireResult struct {
	Intent     Intent          `json:"intent"`
	Confidence *float64        `json:"confidence"`
	Parameters json.RawMessage `json:"parameters"`
	Response   string          `json:"response"`
}

// minutes accepts 30 or "30".
type minutes int

func (m *minutes) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		v, err := strconv.Atoi(n.String())
		if err != nil {
			return fmt.Errorf("duration %s is not an integer", n)
		}
		*m = minutes(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a number or numeric string")
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("duration %q is not an integer", s)
	}
	*m = minutes(v)
	return nil
}

func (m *minutes) intPtr() *int {
	if m == nil {
		return nil
	}
	v := int(*m)
	return &v
}

type wireCreate struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Duration    *minutes `json:"duration"`
	Description string   `json:"description"`
}

type wireQuery struct {
	Query     string `json:"query"`
	DateRange string `json:"dateRange"`
	TimeRange string `json:"timeRange"`
}

type wireUpdate struct {
	Target      string   `json:"target"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Duration    *minutes `json:"duration"`
	Description string   `json:"description"`
}

type wireDelete struct {
	Target string `json:"target"`
	Date   string `json:"date"`
}

// stripCodeFence removes an optional ```json ... ``` wrapper.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```JSON")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// decodeResult parses a completion into a ClassifiedIntent. Unknown fields are ignored;
// anything else that does not fit the intent's parameter shape is an error.
func decodeResult(text string) (ClassifiedIntent, error) {
	var w wireResult
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &w); err != nil {
		return ClassifiedIntent{}, fmt.Errorf("decode result: %w", err)
	}
	if !w.Intent.Valid() {
		return ClassifiedIntent{}, fmt.Errorf("unknown intent %q", w.Intent)
	}

	params, err := decodeParams(w.Intent, w.Parameters)
	if err != nil {
		return ClassifiedIntent{}, err
	}

	confidence := 0.0
	if w.Confidence != nil {
		confidence = clamp(*w.Confidence)
	}

	return ClassifiedIntent{
		Intent:     w.Intent,
		Confidence: confidence,
		Params:     params,
		Response:   w.Response,
		Source:     SourceLLM,
	}, nil
}

func decodeParams(intent Intent, raw json.RawMessage) (Params, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		raw = json.RawMessage("{}")
	}

	unmarshal := func(v any) error {
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decode %s parameters: %w", intent, err)
		}
		return nil
	}

	switch intent {
	case IntentCreateTask:
		var p wireCreate
		if err := unmarshal(&p); err != nil {
			return nil, err
		}
		return CreateParams{Title: p.Title, Date: p.Date, Time: p.Time, Duration: p.Duration.intPtr(), Description: p.Description}, nil
	case IntentQueryTasks:
		var p wireQuery
		if err := unmarshal(&p); err != nil {
			return nil, err
		}
		return QueryParams(p), nil
	case IntentUpdateTask:
		var p wireUpdate
		if err := unmarshal(&p); err != nil {
			return nil, err
		}
		return UpdateParams{Target: p.Target, Title: p.Title, Date: p.Date, Time: p.Time, Duration: p.Duration.intPtr(), Description: p.Description}, nil
	case IntentDeleteTask:
		var p wireDelete
		if err := unmarshal(&p); err != nil {
			return nil, err
		}
		return DeleteParams(p), nil
	default:
		var p map[string]any
		if err := unmarshal(&p); err != nil {
			return nil, err
		}
		return NoParams{}, nil
	}
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
