package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route accepts anonymous callers; a bearer token narrows visibility to the caller's events.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.OptionalAuth(), h.List)
		events.POST("", mw.OptionalAuth(), h.Create)
		events.GET("/search", mw.OptionalAuth(), h.Search)
		events.GET("/query", mw.OptionalAuth(), h.Query)
		events.GET("/export", mw.OptionalAuth(), h.Export)
		events.GET("/:id", mw.OptionalAuth(), h.Detail)
		events.PUT("/:id", mw.OptionalAuth(), h.Update)
		events.DELETE("/:id", mw.OptionalAuth(), h.Delete)
	}
}
