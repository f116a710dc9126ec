package llmprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"task-calendar/config"
	"task-calendar/pkg/llmprovider"
	"task-calendar/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantNames []string
		wantErr   bool
	}{
		{
			name: "Sorted by priority",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 10, APIKey: "g", Model: "gemini-2.5-flash"},
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-4o-mini"},
					{Name: "deepseek", Enabled: true, Priority: 5, APIKey: "d", Model: "deepseek-chat"},
				},
			},
			wantNames: []string{"openai", "deepseek", "gemini"},
		},
		{
			name: "Disabled providers skipped",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "openai", Enabled: false, Priority: 1, APIKey: "o", Model: "gpt-4o-mini"},
					{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
				},
			},
			wantNames: []string{"gemini"},
		},
		{
			name: "Broken provider skipped",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "", Model: "gpt-4o-mini"},
					{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "d", Model: "deepseek-chat"},
				},
			},
			wantNames: []string{"deepseek"},
		},
		{
			name:    "No providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "Unknown provider only",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(tt.cfg, log.NewNop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("got %d providers, want %d", len(providers), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if providers[i].Name() != name {
					t.Errorf("providers[%d] = %s, want %s", i, providers[i].Name(), name)
				}
			}
		})
	}
}

// TestOpenAIProvider_EndToEnd drives the config -> factory -> manager flow
// against a fake OpenAI-compatible endpoint.
func TestOpenAIProvider_EndToEnd(t *testing.T) {
	var gotTemperature float64
	var gotRoles []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body struct {
			Temperature float64 `json:"temperature"`
			Messages    []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotTemperature = body.Temperature
		for _, m := range body.Messages {
			gotRoles = append(gotRoles, m.Role)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1710000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"intent\":\"QUERY_TASKS\"}"}}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 6, "total_tokens": 26}
		}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: ts.URL, Timeout: "5s"},
		},
		RetryAttempts: 1,
	}

	manager, err := llmprovider.NewManagerFromConfig(cfg, log.NewNop(), nil)
	if err != nil {
		t.Fatalf("NewManagerFromConfig: %v", err)
	}

	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: "classify"}}},
		Messages:          []llmprovider.Message{llmprovider.TextMessage("user", "show me my tasks")},
		Temperature:       0.1,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Text() != `{"intent":"QUERY_TASKS"}` {
		t.Errorf("Text() = %q", resp.Text())
	}
	if resp.ProviderName != "openai" || resp.Usage.TotalTokens != 26 {
		t.Errorf("unexpected response metadata: %+v", resp)
	}
	if gotTemperature != 0.1 {
		t.Errorf("temperature = %v, want 0.1", gotTemperature)
	}
	if len(gotRoles) != 2 || gotRoles[0] != "system" || gotRoles[1] != "user" {
		t.Errorf("roles = %v, want [system user]", gotRoles)
	}
}
