package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-calendar/internal/event"
	"task-calendar/internal/middleware"
	"task-calendar/internal/model"
	"task-calendar/pkg/log"
	"task-calendar/pkg/response"
)

type mockUseCase struct {
	lastScope  model.Scope
	lastCreate event.CreateInput
	lastUpdate event.UpdateInput
	lastQuery  event.QueryInput
	err        error
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	m.lastScope, m.lastCreate = sc, input
	if m.err != nil {
		return event.CreateOutput{}, m.err
	}
	return event.CreateOutput{Event: model.Event{ID: "e-1", Title: input.Title, Start: input.Start, End: input.End}}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	m.lastScope = sc
	return event.ListOutput{Events: []model.Event{{ID: "e-1", Title: "Standup"}}, Total: 1, Limit: input.Limit}, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	return event.DetailOutput{Event: model.Event{ID: id}}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	m.lastUpdate = input
	return event.UpdateOutput{Event: model.Event{ID: input.ID}}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

func (m *mockUseCase) Search(ctx context.Context, sc model.Scope, input event.SearchInput) (event.SearchOutput, error) {
	return event.SearchOutput{}, m.err
}

func (m *mockUseCase) Query(ctx context.Context, sc model.Scope, input event.QueryInput) (event.QueryOutput, error) {
	m.lastQuery = input
	return event.QueryOutput{Events: []model.Event{}}, m.err
}

func (m *mockUseCase) Export(ctx context.Context, sc model.Scope, input event.ExportInput) (event.ExportOutput, error) {
	return event.ExportOutput{Filename: "events-today.ics", Content: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")}, m.err
}

type staticVerifier struct{}

func (staticVerifier) Verify(token string) (model.Scope, error) {
	return model.Scope{UserID: token}, nil
}

func setup(t *testing.T, uc event.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), staticVerifier{}, nil, middleware.Config{})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, time.UTC), mw)
	return r
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "RFC3339", body: `{"title":"Review","start":"2024-03-20T14:30:00Z","end":"2024-03-20T15:30:00Z"}`, wantStatus: http.StatusOK},
		{name: "Local layout", body: `{"title":"Review","start":"2024-03-20T14:30"}`, wantStatus: http.StatusOK},
		{name: "Missing title", body: `{"start":"2024-03-20T14:30"}`, wantStatus: http.StatusBadRequest},
		{name: "Bad start", body: `{"title":"x","start":"tomorrow"}`, wantStatus: http.StatusBadRequest},
		{name: "Invalid payload from use case", body: `{"title":"x","start":"2024-03-20T14:30"}`, ucErr: event.ErrInvalidPayload, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.ucErr}
			w := do(setup(t, uc), http.MethodPost, "/api/v1/events", tt.body, "alice")
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", uc.lastScope.UserID)
				assert.Equal(t, 14, uc.lastCreate.Start.Hour())
			}
		})
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "Not found", err: event.ErrEventNotFound, wantStatus: http.StatusNotFound},
		{name: "Forbidden", err: event.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "Unknown", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup(t, &mockUseCase{err: tt.err})
			w := do(r, http.MethodDelete, "/api/v1/events/e-1", "", "")
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestUpdateHandler_ClearEnd(t *testing.T) {
	uc := &mockUseCase{}
	w := do(setup(t, uc), http.MethodPut, "/api/v1/events/e-9", `{"title":"Renamed","clear_end":true}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "e-9", uc.lastUpdate.ID)
	require.NotNil(t, uc.lastUpdate.Title)
	assert.Equal(t, "Renamed", *uc.lastUpdate.Title)
	assert.True(t, uc.lastUpdate.ClearEnd)
	assert.Nil(t, uc.lastUpdate.Start)
}

func TestQueryAndExportHandlers(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(t, uc)

	w := do(r, http.MethodGet, "/api/v1/events/query?date_range=this+week&q=sync&time_of_day=evening", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "this week", uc.lastQuery.DateRange)
	assert.Equal(t, "sync", uc.lastQuery.Query)
	assert.Equal(t, "evening", uc.lastQuery.TimeOfDay)

	w = do(r, http.MethodGet, "/api/v1/events/export?date_range=today", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "events-today.ics")
	assert.True(t, strings.HasPrefix(w.Body.String(), "BEGIN:VCALENDAR"))
}

func TestListHandler_Anonymous(t *testing.T) {
	uc := &mockUseCase{}
	w := do(setup(t, uc), http.MethodGet, "/api/v1/events?limit=5", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, uc.lastScope.Authenticated())
}
