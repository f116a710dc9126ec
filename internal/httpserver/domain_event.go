package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/event"
	eventHTTP "task-calendar/internal/event/delivery/http"
	"task-calendar/internal/event/mirror"
	"task-calendar/internal/event/repository"
	eventMemory "task-calendar/internal/event/repository/memory"
	eventPostgre "task-calendar/internal/event/repository/postgre"
	eventUC "task-calendar/internal/event/usecase"
	"task-calendar/internal/middleware"
)

// setupEventDomain builds the event store and registers /api/v1/events.
func (srv *HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (event.UseCase, error) {
	// 1. Repository
	var repo repository.Repository
	if srv.postgresDB != nil {
		repo = eventPostgre.New(srv.postgresDB, srv.l)
		srv.l.Infof(ctx, "Event store: postgres")
	} else {
		repo = eventMemory.New()
		srv.l.Warnf(ctx, "Event store: memory, events are lost on restart")
	}

	// 2. UseCase
	opts := []eventUC.Option{}
	if srv.metrics != nil {
		opts = append(opts, eventUC.WithRecorder(srv.metrics))
	}
	if srv.calendar != nil {
		opts = append(opts, eventUC.WithMirror(
			mirror.NewGoogle(srv.l, srv.calendar, srv.calendarID, srv.parser.Location().String()),
		))
		srv.l.Infof(ctx, "Google Calendar mirror enabled for calendar %s", srv.calendarID)
	}
	uc := eventUC.New(srv.l, repo, srv.parser, opts...)

	// 3. HTTP Handler
	h := eventHTTP.New(srv.l, uc, srv.parser.Location())

	// 4. Routes: /api/v1/events
	eventHTTP.RegisterRoutes(api, h, mw)

	return uc, nil
}
