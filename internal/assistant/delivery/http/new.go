package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/assistant"
	"task-calendar/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Command(c *gin.Context)
	Classify(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
