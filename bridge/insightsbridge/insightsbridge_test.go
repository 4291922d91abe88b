package insightsbridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/dashboard/bridge/insightsbridge"
	"github.com/jrazmi/dashboard/bridge/scaffolding/mid"
	"github.com/jrazmi/dashboard/core/insights"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo/stores/expensessqlitestore"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(context.Context, string) (string, error) {
	return s.reply, s.err
}

func serve(t *testing.T, c insights.Completer, devMode bool) *httptest.ResponseRecorder {
	t.Helper()

	log := logger.NewDiscard()
	db, err := sqlitedb.NewTestDB(sqlitedb.WithLogger(log.Logger))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mid.Errors(log, devMode)))
	insightsbridge.AddHttpRoutes(wh.Group("/api"), insightsbridge.Config{
		Log:      log,
		Service:  insights.NewService(log, c),
		Tasks:    tasksrepo.NewRepository(log, taskssqlitestore.NewStore(log, db)),
		Expenses: expensesrepo.NewRepository(log, expensessqlitestore.NewStore(log, db)),
	})

	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ai/analyze", nil))
	return rec
}

func TestAnalyze(t *testing.T) {
	rec := serve(t, stubCompleter{reply: "```json\n{\"summary\":\"s\",\"recommendations\":[\"a\"],\"spendingInsight\":\"i\"}\n```"}, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var resp insightsbridge.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.AIInsights.Summary != "s" || resp.AIInsights.SpendingInsight != "i" {
		t.Errorf("got %+v", resp)
	}
}

func TestAnalyzeFailures(t *testing.T) {
	tests := []struct {
		name      string
		completer insights.Completer
		message   string
	}{
		{"bad format", stubCompleter{reply: "I think you are doing great!"}, "Failed to parse AI response as JSON."},
		{"transport", stubCompleter{err: errors.New("connection refused")}, ""},
		{"no completer", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.completer, false)
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status %d", rec.Code)
			}

			var body struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Success || body.Error != "AI analysis failed." || body.Message != tt.message {
				t.Errorf("got %+v", body)
			}
			if strings.Contains(rec.Body.String(), "doing great") {
				t.Error("raw model reply leaked to the client")
			}
		})
	}
}
