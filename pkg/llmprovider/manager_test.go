package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func userRequest(text string) *Request {
	return &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: "classify"}}},
		Messages:          []Message{TextMessage("user", text)},
		Temperature:       0.1,
	}
}

func okResponse(provider string) *Response {
	return &Response{
		Content:      TextMessage("assistant", `{"intent":"UNKNOWN"}`),
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func TestManager_GenerateContent(t *testing.T) {
	tests := []struct {
		name          string
		primaryFails  bool
		secondaryFail bool
		config        Config
		wantProvider  string
		wantErr       error
		wantPrimary   int
		wantSecondary int
		wantWarns     int
	}{
		{
			name:         "Primary succeeds",
			config:       Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond},
			wantProvider: "primary",
			wantPrimary:  1,
		},
		{
			name:          "Fallback to secondary",
			primaryFails:  true,
			config:        Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantProvider:  "secondary",
			wantPrimary:   2,
			wantSecondary: 1,
			wantWarns:     1,
		},
		{
			name:          "All providers fail",
			primaryFails:  true,
			secondaryFail: true,
			config:        Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantErr:       ErrAllProvidersFailed,
			wantPrimary:   2,
			wantSecondary: 2,
			wantWarns:     2,
		},
		{
			name:         "No fallback when disabled",
			primaryFails: true,
			config:       Config{RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantErr:      ErrAllProvidersFailed,
			wantPrimary:  2,
			wantWarns:    1,
		},
		{
			name:         "Zero attempts means a single call",
			primaryFails: true,
			config:       Config{},
			wantErr:      ErrAllProvidersFailed,
			wantPrimary:  1,
			wantWarns:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: tt.primaryFails, response: okResponse("primary")}
			secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: tt.secondaryFail, response: okResponse("secondary")}
			logger := &mockLogger{}
			cfg := tt.config

			manager := NewManager([]Provider{primary, secondary}, &cfg, logger)
			resp, err := manager.GenerateContent(context.Background(), userRequest("hello"))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("ProviderName = %q, want %q", resp.ProviderName, tt.wantProvider)
				}
				if len(logger.infoMessages) != 1 {
					t.Errorf("expected 1 info message, got %d", len(logger.infoMessages))
				}
			}

			if primary.callCount != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", primary.callCount, tt.wantPrimary)
			}
			if secondary.callCount != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", secondary.callCount, tt.wantSecondary)
			}
			if len(logger.warnMessages) != tt.wantWarns {
				t.Errorf("warn messages = %d, want %d", len(logger.warnMessages), tt.wantWarns)
			}
		})
	}
}

func TestManager_GenerateContent_InvalidInput(t *testing.T) {
	t.Run("No providers configured", func(t *testing.T) {
		manager := NewManager(nil, &Config{}, &mockLogger{})
		if _, err := manager.GenerateContent(context.Background(), userRequest("hi")); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Empty request", func(t *testing.T) {
		p := &mockProvider{name: "p", response: okResponse("p")}
		manager := NewManager([]Provider{p}, &Config{}, &mockLogger{})
		if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
		if p.callCount != 0 {
			t.Errorf("provider should not be called, got %d calls", p.callCount)
		}
	})
}

func TestManager_Observer(t *testing.T) {
	var observed []string
	var failures int

	cfg := &Config{
		FallbackEnabled: true,
		Observer: func(provider, model string, elapsed time.Duration, err error) {
			observed = append(observed, provider)
			if err != nil {
				failures++
			}
		},
	}
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}

	manager := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), userRequest("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(observed) != 2 || observed[0] != "primary" || observed[1] != "secondary" {
		t.Errorf("observed = %v, want [primary secondary]", observed)
	}
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}
}

func TestResponse_Text(t *testing.T) {
	resp := &Response{Content: Message{Parts: []Part{{Text: "{\"a\":"}, {Text: "1}"}}}}
	if got := resp.Text(); got != `{"a":1}` {
		t.Errorf("Text() = %q", got)
	}

	var nilResp *Response
	if got := nilResp.Text(); got != "" {
		t.Errorf("nil Text() = %q, want empty", got)
	}
}
