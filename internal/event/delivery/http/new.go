package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/event"
	"task-calendar/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
	Query(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  event.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for events. Zone-less timestamps are read in loc.
func New(l log.Logger, uc event.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
