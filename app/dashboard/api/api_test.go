package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrazmi/dashboard/app/dashboard/api"
	"github.com/jrazmi/dashboard/app/dashboard/config"
	"github.com/jrazmi/dashboard/bridge/scaffolding/mid"
	"github.com/jrazmi/dashboard/core/calendarsync"
	"github.com/jrazmi/dashboard/core/insights"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo/stores/expensessqlitestore"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo/stores/incomessqlitestore"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/dashboard/core/settings"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/jrazmi/dashboard/sdk/telemetry"
	"github.com/shopspring/decimal"
)

type noCredentials struct{}

func (noCredentials) Connect(ctx context.Context) (calendarsync.EventWriter, error) {
	return nil, calendarsync.ErrMissingCredential
}

func newHandler(t *testing.T, statusCheck func(context.Context) error) http.Handler {
	t.Helper()

	log := logger.NewDiscard()
	db, err := sqlitedb.NewTestDB(sqlitedb.WithLogger(log.Logger))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repos := config.Repositories{
		Tasks:    tasksrepo.NewRepository(log, taskssqlitestore.NewStore(log, db)),
		Expenses: expensesrepo.NewRepository(log, expensessqlitestore.NewStore(log, db)),
		Incomes:  incomesrepo.NewRepository(log, incomessqlitestore.NewStore(log, db)),
	}

	cfg := config.Dashboard{
		Build:        "test",
		Logger:       log,
		Telemetry:    telemetry.NewTelemetry(),
		Repositories: repos,
		StatusCheck:  statusCheck,
		Budget:       decimal.NewFromInt(5000),
		Insights:     insights.NewService(log, nil),
		CalendarSync: calendarsync.NewService(log, noCredentials{}, repos.Tasks, 0),
		Settings:     settings.NewStore(log, filepath.Join(t.TempDir(), "settings.json")),
	}

	wh := web.NewWebHandler(web.HandlerOptions{},
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(mid.Errors(log, false), mid.Panics()),
	)
	api.AddHandlers(wh, cfg)
	return wh
}

func get(t *testing.T, h http.Handler, method, target string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, target, rec.Body.String(), err)
	}
	return rec.Code, body
}

func TestHealth(t *testing.T) {
	h := newHandler(t, func(context.Context) error { return nil })

	code, body := get(t, h, http.MethodGet, "/api/health")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["success"] != true || body["message"] != "Server is running" {
		t.Errorf("body = %v", body)
	}
	if ts, _ := body["timestamp"].(string); ts == "" {
		t.Error("missing timestamp")
	}
}

func TestHealthStoreDown(t *testing.T) {
	h := newHandler(t, func(context.Context) error { return errors.New("connection refused") })

	code, body := get(t, h, http.MethodGet, "/api/health")
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
	if msg, _ := body["message"].(string); strings.Contains(msg, "refused") {
		t.Errorf("internal detail leaked: %v", body)
	}
}

func TestInfo(t *testing.T) {
	h := newHandler(t, nil)

	code, body := get(t, h, http.MethodGet, "/")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["message"] != config.ApiName || body["version"] != config.ApiVersion {
		t.Errorf("body = %v", body)
	}
	endpoints, _ := body["endpoints"].(map[string]any)
	if endpoints["tasks"] != "/api/tasks" {
		t.Errorf("endpoints = %v", endpoints)
	}
}

func TestRouteNotFound(t *testing.T) {
	h := newHandler(t, nil)

	code, body := get(t, h, http.MethodGet, "/api/nope")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d", code)
	}
	if body["success"] != false || body["error"] != "Route not found" {
		t.Errorf("body = %v", body)
	}
}

func TestDeleteMissingExpense(t *testing.T) {
	h := newHandler(t, nil)

	code, body := get(t, h, http.MethodDelete, "/api/expenses/does-not-exist")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, body %v", code, body)
	}
}

func TestIntegrationsUnconfigured(t *testing.T) {
	h := newHandler(t, nil)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/ai/analyze"},
		{http.MethodPost, "/api/calendar/sync-tasks"},
	}
	for _, tt := range tests {
		code, body := get(t, h, tt.method, tt.target)
		if code != http.StatusInternalServerError {
			t.Errorf("%s %s: status = %d", tt.method, tt.target, code)
		}
		if body["success"] != false {
			t.Errorf("%s %s: body = %v", tt.method, tt.target, body)
		}
	}
}
