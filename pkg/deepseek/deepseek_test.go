package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-calendar/pkg/deepseek"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
			return
		}
		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Model != deepseek.DefaultModel {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"id":"1","model":"deepseek-chat","choices":[{"index":0,"message":{"role":"assistant","content":"ok"}}],"usage":{"prompt_tokens":3,"completion_tokens":1,"total_tokens":4}}`))
	}))
	defer ts.Close()

	t.Run("Success Path", func(t *testing.T) {
		client, err := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Choices[0].Message.Content != "ok" || resp.Usage.TotalTokens != 4 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		if _, err := client.GenerateContent(context.Background(), &deepseek.Request{}); err == nil {
			t.Error("expected error for bad key")
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := deepseek.New(deepseek.Config{}); err == nil {
			t.Error("expected error for missing key")
		}
	})
}
