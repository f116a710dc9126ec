package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", ErrNotFound)
		httpErr, ok := AsHTTPError(err)
		if !ok {
			t.Fatal("expected HTTPError in chain")
		}
		if httpErr.StatusCode != http.StatusNotFound {
			t.Errorf("StatusCode = %d, want %d", httpErr.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("Plain error", func(t *testing.T) {
		if _, ok := AsHTTPError(fmt.Errorf("boom")); ok {
			t.Error("expected no HTTPError")
		}
	})

	t.Run("Distinct status", func(t *testing.T) {
		err := NewHTTPErrorWithStatus(40901, "session busy", http.StatusConflict)
		if err.StatusCode != http.StatusConflict || err.Code != 40901 {
			t.Errorf("unexpected error: %+v", err)
		}
	})
}
