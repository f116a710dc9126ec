package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Commands are rate limited per caller since each one may cost an LLM call.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	a := rg.Group("/assistant")
	{
		a.POST("/commands", mw.OptionalAuth(), mw.RateLimit(), h.Command)
		a.POST("/classify", mw.OptionalAuth(), mw.RateLimit(), h.Classify)
		a.GET("/sessions/:id", h.History)
		a.DELETE("/sessions/:id", h.ClearHistory)
	}
}
