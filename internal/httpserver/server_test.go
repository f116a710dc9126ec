package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-calendar/internal/middleware"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/llmprovider"
	"task-calendar/pkg/log"
	"task-calendar/pkg/metrics"
	"task-calendar/pkg/response"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		Session:     SessionConfig{Size: 10, TTL: time.Hour},
		Parser:      datemath.NewParserInLocation(time.UTC),
		// No providers: every classification takes the keyword path.
		LLM:       llmprovider.NewManager(nil, nil, l),
		Metrics:   metrics.New(),
		RateLimit: middleware.Config{RateLimitPerMin: 600},
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers(context.Background()))
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.Error(t, err, "parser and llm are required")

	_, err = New(nil, Config{})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := serve(srv, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestAssistantEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, http.MethodPost, "/api/v1/assistant/commands", `{"session_id":"s-1","text":"add dentist visit"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.True(t, strings.HasPrefix(data["response"].(string), `Successfully created "add dentist visit"`), data["response"])
	assert.Equal(t, "keyword_fallback", data["intent"].(map[string]any)["source"])

	w = serve(srv, http.MethodGet, "/api/v1/events", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "add dentist visit")

	w = serve(srv, http.MethodGet, "/api/v1/assistant/sessions/s-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"add dentist visit"`)

	w = serve(srv, http.MethodPost, "/webhook/telegram", `{"update_id":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code, "webhook is only mounted with a bot")
}
