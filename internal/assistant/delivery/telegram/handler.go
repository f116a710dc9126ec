package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/assistant"
	"task-calendar/internal/model"
	pkgErrors "task-calendar/pkg/errors"
	"task-calendar/pkg/response"
	pkgTelegram "task-calendar/pkg/telegram"
)

// HandleWebhook acknowledges the update at once and handles the message in the background.
// Replies are sent through the bot, never in the webhook response.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram.HandleWebhook: bad secret token")
			response.Error(c, pkgErrors.ErrUnauthorized)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		response.Error(c, err)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram.processMessage chat %d: %v", msg.Chat.ID, err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailed)
		}
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("telegram:%d", chatID)
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram:%d", msg.From.ID),
		Username: msg.From.Username,
	}
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID

	switch command(text) {
	case cmdStart:
		return h.bot.SendMessage(ctx, chatID, msgWelcome)
	case cmdHelp:
		return h.bot.SendMessage(ctx, chatID, msgHelp)
	case cmdClear:
		if err := h.uc.ClearHistory(ctx, sessionID(chatID)); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, msgCleared)
	}

	out, err := h.uc.Process(ctx, scopeOf(msg), assistant.ProcessInput{
		SessionID: sessionID(chatID),
		Text:      text,
	})
	switch {
	case errors.Is(err, assistant.ErrSessionBusy):
		return h.bot.SendMessage(ctx, chatID, msgBusy)
	case errors.Is(err, assistant.ErrEmptyInput):
		return nil
	case err != nil:
		return err
	}

	return h.bot.SendMessage(ctx, chatID, h.formatReply(out))
}

// command returns the bot command in text, dropping any @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}

func (h *handler) formatReply(out assistant.ProcessOutput) string {
	if out.Results == nil {
		return out.Response
	}
	if len(out.Results) == 0 {
		return out.Response + "\n\nNo matching events."
	}

	var b strings.Builder
	b.WriteString(out.Response)
	b.WriteString("\n")
	for i, e := range out.Results {
		if i == maxListedResults {
			fmt.Fprintf(&b, "\n…and %d more", len(out.Results)-maxListedResults)
			break
		}
		fmt.Fprintf(&b, "\n%d. %s (%s)", i+1, e.Title, e.Start.In(h.loc).Format(resultTimeLayout))
	}
	return b.String()
}
