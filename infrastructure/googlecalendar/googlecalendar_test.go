package googlecalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/dashboard/core/calendarsync"
	"github.com/jrazmi/dashboard/infrastructure/googlecalendar"
	"github.com/jrazmi/dashboard/sdk/logger"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func newWriter(t *testing.T, h http.HandlerFunc) *googlecalendar.Writer {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	svc, err := calendar.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("calendar service: %v", err)
	}
	return googlecalendar.NewWriter(svc, "primary")
}

var event = calendarsync.Event{
	Summary:     "Pay rent",
	Description: "No description",
	StartDate:   "2025-01-01",
	EndDate:     "2025-01-02",
}

func TestInsert(t *testing.T) {
	var got calendar.Event
	w := newWriter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/calendars/primary/events") {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"evt-1"}`))
	})

	id, err := w.Insert(context.Background(), event)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id != "evt-1" {
		t.Errorf("id %q", id)
	}
	if got.Summary != "Pay rent" || got.Start == nil || got.Start.Date != "2025-01-01" || got.End.Date != "2025-01-02" {
		t.Errorf("sent %+v", got)
	}
}

func TestPatchGone(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusGone} {
		w := newWriter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(code)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Not Found"}}`))
		})

		_, err := w.Patch(context.Background(), "evt-1", event)
		if !errors.Is(err, calendarsync.ErrEventGone) {
			t.Errorf("status %d: got %v, want ErrEventGone", code, err)
		}
	}
}

func TestPatchOtherErrors(t *testing.T) {
	w := newWriter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"Forbidden"}}`))
	})

	_, err := w.Patch(context.Background(), "evt-1", event)
	if err == nil || errors.Is(err, calendarsync.ErrEventGone) {
		t.Errorf("got %v", err)
	}
}

func TestConnectWithoutToken(t *testing.T) {
	dir := t.TempDir()
	c := googlecalendar.NewConnector(logger.NewDiscard(), googlecalendar.Options{
		CredentialsFile: filepath.Join(dir, "credentials.json"),
		TokenFile:       filepath.Join(dir, "token.json"),
		CalendarID:      "primary",
	})

	if _, err := c.Connect(context.Background()); !errors.Is(err, calendarsync.ErrMissingCredential) {
		t.Errorf("got %v, want ErrMissingCredential", err)
	}
}

func TestConnectWithUnreadableToken(t *testing.T) {
	tests := map[string]string{
		"corrupt": "not json",
		"empty":   "",
		"blank":   "{}",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			tokenFile := filepath.Join(dir, "token.json")
			if err := os.WriteFile(tokenFile, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}

			c := googlecalendar.NewConnector(logger.NewDiscard(), googlecalendar.Options{
				CredentialsFile: filepath.Join(dir, "credentials.json"),
				TokenFile:       tokenFile,
				CalendarID:      "primary",
			})

			_, err := c.Connect(context.Background())
			if !errors.Is(err, calendarsync.ErrMissingCredential) {
				t.Errorf("got %v, want ErrMissingCredential", err)
			}
			if !errors.Is(err, googlecalendar.ErrInvalidToken) {
				t.Errorf("got %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth", "token.json")
	in := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour).UTC().Truncate(time.Second)}

	if err := googlecalendar.SaveToken(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := googlecalendar.LoadToken(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.AccessToken != in.AccessToken || out.RefreshToken != in.RefreshToken || !out.Expiry.Equal(in.Expiry) {
		t.Errorf("got %+v", out)
	}
}
