package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-calendar/internal/middleware"
	"task-calendar/internal/model"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := srv.newMiddleware()
	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(ctx, mw)
}

func (srv *HTTPServer) newMiddleware() middleware.Middleware {
	// Typed nil pointers must not reach the interfaces.
	var verifier middleware.TokenVerifier
	if srv.scope != nil {
		verifier = srv.scope
	}
	var observer middleware.HTTPObserver
	if srv.metrics != nil {
		observer = srv.metrics
	}
	return middleware.New(srv.l, verifier, observer, srv.rateLimit)
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.Logger(), mw.Metrics())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the event and assistant domains under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware) error {
	api := srv.gin.Group("/api/v1")

	events, err := srv.setupEventDomain(ctx, api, mw)
	if err != nil {
		return err
	}

	return srv.setupAssistantDomain(ctx, api, mw, events)
}
