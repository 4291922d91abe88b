package settingsbridge_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrazmi/dashboard/bridge/scaffolding/mid"
	"github.com/jrazmi/dashboard/bridge/settingsbridge"
	"github.com/jrazmi/dashboard/core/settings"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	log := logger.NewDiscard()
	store := settings.NewStore(log, filepath.Join(t.TempDir(), "settings.json"))

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mid.Errors(log, false)))
	settingsbridge.AddHttpRoutes(wh.Group("/api"), settingsbridge.Config{Log: log, Store: store})
	return wh
}

func do(t *testing.T, h http.Handler, method, body string) (int, settingsbridge.Response) {
	t.Helper()

	req := httptest.NewRequest(method, "/api/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp settingsbridge.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, resp
}

func TestGetDefaults(t *testing.T) {
	h := newHandler(t)

	code, resp := do(t, h, http.MethodGet, "")
	if code != http.StatusOK || !resp.Success {
		t.Fatalf("status %d, %+v", code, resp)
	}
	if resp.Data != settings.Default() {
		t.Errorf("data = %+v, want defaults", resp.Data)
	}
	if resp.Presentation.Theme != settings.ThemeLight || resp.Presentation.Lang != settings.LangEnglish {
		t.Errorf("presentation = %+v", resp.Presentation)
	}
}

func TestPutPersists(t *testing.T) {
	h := newHandler(t)

	code, resp := do(t, h, http.MethodPut, `{"darkMode":true,"language":"el"}`)
	if code != http.StatusOK {
		t.Fatalf("put status %d", code)
	}
	if resp.Data.FontSize != settings.FontMedium {
		t.Errorf("fontSize = %q, want untouched default", resp.Data.FontSize)
	}
	if resp.Presentation.Theme != settings.ThemeDark || resp.Presentation.Labels["title"] != "Ρυθμίσεις" {
		t.Errorf("presentation = %+v", resp.Presentation)
	}

	_, resp = do(t, h, http.MethodGet, "")
	if !resp.Data.DarkMode || resp.Data.Language != settings.LangGreek {
		t.Errorf("reloaded = %+v", resp.Data)
	}
}

func TestPutRejectsInvalid(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"fontSize":"huge"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"field":"fontSize"`) {
		t.Errorf("body missing field detail: %s", rec.Body.String())
	}
}
