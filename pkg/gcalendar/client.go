package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		// Service Account path
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event. Google assigns the ID
// unless req.ID is set.
func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	event := toCalendarEvent(req)
	event.Id = req.ID

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return fromCalendarEvent(created, req), nil
}

// UpsertEvent replaces the event with req.ID, creating it when Google does not know it yet.
func (c *Client) UpsertEvent(ctx context.Context, req EventRequest) (*Event, error) {
	if req.ID == "" {
		return nil, errors.New("gcalendar: event id is required for upsert")
	}

	updated, err := c.service.Events.Update(calendarID(req.CalendarID), req.ID, toCalendarEvent(req)).Context(ctx).Do()
	if err == nil {
		return fromCalendarEvent(updated, req), nil
	}
	if !isStatus(err, http.StatusNotFound) {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	return c.CreateEvent(ctx, req)
}

// DeleteEvent removes an event. Events already gone are not an error.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil && !isStatus(err, http.StatusNotFound) && !isStatus(err, http.StatusGone) {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func toCalendarEvent(req EventRequest) *calendar.Event {
	return &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
}

func fromCalendarEvent(ev *calendar.Event, req EventRequest) *Event {
	return &Event{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
		HtmlLink:    ev.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func isStatus(err error, code int) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == code
}
