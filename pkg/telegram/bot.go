package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	defaultTimeout = 10 * time.Second

	// SecretTokenHeader carries the secret registered with SetWebhook on every update.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// Option customizes a Bot.
type Option func(*Bot)

// WithAPIURL points the client at another endpoint, e.g. a test server.
func WithAPIURL(url string) Option {
	return func(b *Bot) { b.apiURL = url }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Bot) { b.httpClient = c }
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string, opts ...Option) *Bot {
	b := &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is echoed back
// in SecretTokenHeader on every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", SetWebhookRequest{URL: webhookURL, SecretToken: secret}, &apiResp); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}
	if err := b.call(ctx, "sendMessage", payload, nil); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// call POSTs payload to method. out is decoded whenever the body is JSON, even on error statuses.
func (b *Bot) call(ctx context.Context, method string, payload any, out *APIResponse) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if out != nil {
		if err := json.Unmarshal(raw, out); err == nil {
			return nil
		}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if out != nil {
		return fmt.Errorf("decode %s response: %s", method, string(raw))
	}
	return nil
}
