package log

import (
	"context"
	"testing"
)

func TestKeyValues(t *testing.T) {
	tests := []struct {
		name   string
		arg    []any
		wantOK bool
	}{
		{name: "Message only", arg: []any{"hello"}, wantOK: false},
		{name: "Message with pairs", arg: []any{"hello", "k", 1, "k2", "v"}, wantOK: true},
		{name: "Odd pairs", arg: []any{"hello", "k", 1, "k2"}, wantOK: false},
		{name: "Non-string key", arg: []any{"hello", 1, 2}, wantOK: false},
		{name: "Non-string message", arg: []any{42, "k", 1}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := keyValues(tt.arg)
			if ok != tt.wantOK {
				t.Errorf("keyValues(%v) ok = %v, want %v", tt.arg, ok, tt.wantOK)
			}
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "req-1")
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Mode: "production", Encoding: "json"})
	if l == nil {
		t.Fatal("Init returned nil logger")
	}
	// Must not panic on either call style.
	l.Info(context.Background(), "event created", "id", "e-1")
	l.Infof(context.Background(), "event %s created", "e-1")
}
