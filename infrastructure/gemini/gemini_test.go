package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/dashboard/infrastructure/gemini"
)

func newClient(t *testing.T, h http.HandlerFunc) *gemini.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := gemini.NewClient(context.Background(),
		gemini.Options{APIKey: "test-key", Model: "gemini-2.5-flash"},
		gemini.WithEndpoint(srv.URL+"/"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestComplete(t *testing.T) {
	var gotPath, gotKey, gotBody string

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if gotKey == "" {
			gotKey = r.URL.Query().Get("key")
		}
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": "{\"summary\":"}, map[string]any{"text": "\"ok\"}"}},
					},
				},
			},
		})
	})

	got, err := c.Complete(context.Background(), "hello model")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != `{"summary":"ok"}` {
		t.Errorf("got %q", got)
	}
	if !strings.HasSuffix(gotPath, "models/gemini-2.5-flash:generateContent") {
		t.Errorf("path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("key %q", gotKey)
	}
	if !strings.Contains(gotBody, "hello model") {
		t.Errorf("body %q", gotBody)
	}
}

func TestCompleteErrors(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":400,"message":"boom"}}`, http.StatusBadRequest)
	})
	if _, err := c.Complete(context.Background(), "x"); err == nil {
		t.Error("expected an error for a 400 response")
	}

	c = newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})
	if _, err := c.Complete(context.Background(), "x"); !errors.Is(err, gemini.ErrEmptyResponse) {
		t.Errorf("got %v, want ErrEmptyResponse", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := gemini.NewClient(context.Background(), gemini.Options{}); !errors.Is(err, gemini.ErrNoAPIKey) {
		t.Errorf("got %v", err)
	}
}
