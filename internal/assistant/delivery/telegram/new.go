package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/assistant"
	"task-calendar/pkg/log"
)

// Bot is the part of the Telegram client the webhook needs.
type Bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler receives Telegram webhook updates.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     assistant.UseCase
	bot    Bot
	secret string
	loc    *time.Location
}

// New creates the Telegram webhook handler. When secret is set, updates must carry it in
// the X-Telegram-Bot-Api-Secret-Token header. Event times in replies are shown in loc.
func New(l log.Logger, uc assistant.UseCase, bot Bot, secret string, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
		loc:    loc,
	}
}

// RegisterRoutes mounts the webhook endpoint.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
