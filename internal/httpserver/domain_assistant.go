package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "task-calendar/internal/assistant/delivery/http"
	assistantTelegram "task-calendar/internal/assistant/delivery/telegram"
	"task-calendar/internal/assistant/repository"
	sessionMemory "task-calendar/internal/assistant/repository/memory"
	sessionRedis "task-calendar/internal/assistant/repository/redis"
	assistantUC "task-calendar/internal/assistant/usecase"
	"task-calendar/internal/event"
	"task-calendar/internal/middleware"
	"task-calendar/internal/router"
)

// setupAssistantDomain builds the classifier and session store, then registers
// /api/v1/assistant and, when a bot is configured, /webhook/telegram.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, events event.UseCase) error {
	// 1. Repository
	var sessions repository.SessionRepository
	if srv.redis != nil {
		sessions = sessionRedis.New(srv.redis, srv.session.TTL, srv.l)
		srv.l.Infof(ctx, "Session store: redis")
	} else {
		sessions = sessionMemory.New(srv.session.Size, srv.session.TTL)
		srv.l.Infof(ctx, "Session store: memory")
	}

	// 2. Classifier + UseCase
	routerOpts := []router.Option{}
	if srv.metrics != nil {
		routerOpts = append(routerOpts, router.WithCounter(srv.metrics))
	}
	classifier := router.New(srv.llm, srv.l, srv.parser.Location(), routerOpts...)
	uc := assistantUC.New(srv.l, classifier, events, sessions, srv.parser)

	// 3. HTTP Handler + Routes: /api/v1/assistant
	assistantHTTP.RegisterRoutes(api, assistantHTTP.New(srv.l, uc), mw)

	// 4. Telegram webhook
	if srv.telegramBot != nil {
		h := assistantTelegram.New(srv.l, uc, srv.telegramBot, srv.telegramSecret, srv.parser.Location())
		assistantTelegram.RegisterRoutes(srv.gin, h)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
	}

	return nil
}
