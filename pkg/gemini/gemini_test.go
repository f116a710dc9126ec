package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-calendar/pkg/gemini"
)

func TestNew(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want default %q", client.Model(), gemini.DefaultModel)
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if _, ok := body["system_instruction"]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := body["contents"].([]any)
		text := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"intent\":\"UNKNOWN\"}"}]}}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 4, "totalTokenCount": 16}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := func(text string) *gemini.Request {
		return &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "system"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: text}}}},
			Temperature:       0.1,
		}
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), req("hello"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != `{"intent":"UNKNOWN"}` {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.Usage.TotalTokens != 16 {
			t.Errorf("TotalTokens = %d, want 16", resp.Usage.TotalTokens)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), req("cause_500")); err == nil {
			t.Error("expected error on 500")
		}
	})
}
