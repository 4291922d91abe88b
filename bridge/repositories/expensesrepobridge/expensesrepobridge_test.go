package expensesrepobridge_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrazmi/dashboard/bridge/repositories/expensesrepobridge"
	"github.com/jrazmi/dashboard/bridge/scaffolding/mid"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo/stores/expensessqlitestore"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	log := logger.NewDiscard()
	db, err := sqlitedb.NewTestDB(sqlitedb.WithLogger(log.Logger))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mid.Errors(log, false)))
	expensesrepobridge.AddHttpRoutes(wh.Group("/api"), expensesrepobridge.Config{
		Log:        log,
		Repository: expensesrepo.NewRepository(log, expensessqlitestore.NewStore(log, db)),
	})
	return wh
}

type envelope struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Total   float64           `json:"total"`
	Error   string            `json:"error"`
	Details []json.RawMessage `json:"details"`
	Data    json.RawMessage   `json:"data"`
}

func do(t *testing.T, h http.Handler, method, target string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, &buf))

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, target, rec.Body.String(), err)
	}
	return rec.Code, env
}

func create(t *testing.T, h http.Handler, body map[string]any) expensesrepobridge.Expense {
	t.Helper()

	code, env := do(t, h, http.MethodPost, "/api/expenses", body)
	if code != http.StatusCreated {
		t.Fatalf("create %v: %d %+v", body, code, env)
	}
	var e expensesrepobridge.Expense
	if err := json.Unmarshal(env.Data, &e); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCreateDefaults(t *testing.T) {
	h := newHandler(t)

	e := create(t, h, map[string]any{"description": "Lunch", "amount": 12.5})
	if e.ID == "" || e.Amount != 12.5 || e.Category != "Other" || e.PaymentMethod != "Cash" || e.Status != "Paid" || e.Date == "" {
		t.Errorf("got %+v", e)
	}
}

func TestCreateValidation(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing amount", map[string]any{"description": "x"}},
		{"negative amount", map[string]any{"description": "x", "amount": -1}},
		{"bad category", map[string]any{"description": "x", "amount": 1, "category": "Rockets"}},
		{"bad date", map[string]any{"description": "x", "amount": 1, "date": "someday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, h, http.MethodPost, "/api/expenses", tt.body)
			if code != http.StatusBadRequest || len(env.Details) == 0 {
				t.Errorf("got %d %+v", code, env)
			}
		})
	}
}

func TestListFilterAndTotal(t *testing.T) {
	h := newHandler(t)
	create(t, h, map[string]any{"description": "Lunch", "amount": 10, "category": "Food", "date": "2025-01-02"})
	create(t, h, map[string]any{"description": "Dinner out", "amount": 30, "category": "Food", "date": "2025-01-03"})
	create(t, h, map[string]any{"description": "Bus pass", "amount": 45.5, "category": "Transport", "date": "2025-01-01"})

	tests := []struct {
		target string
		count  int
		total  float64
	}{
		{"/api/expenses", 3, 85.5},
		{"/api/expenses?category=all", 3, 85.5},
		{"/api/expenses?category=Food", 2, 40},
		{"/api/expenses?search=PASS", 1, 45.5},
		{"/api/expenses?category=Food&search=dinner", 1, 30},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			code, env := do(t, h, http.MethodGet, tt.target, nil)
			if code != http.StatusOK || env.Count != tt.count || env.Total != tt.total {
				t.Errorf("got %d count %d total %v", code, env.Count, env.Total)
			}
		})
	}

	_, env := do(t, h, http.MethodGet, "/api/expenses", nil)
	var list []expensesrepobridge.Expense
	_ = json.Unmarshal(env.Data, &list)
	if len(list) != 3 || list[0].Description != "Dinner out" || list[2].Description != "Bus pass" {
		t.Errorf("order: %+v", list)
	}
}

func TestStats(t *testing.T) {
	h := newHandler(t)
	create(t, h, map[string]any{"description": "Lunch", "amount": 10, "category": "Food"})
	create(t, h, map[string]any{"description": "Dinner", "amount": 30, "category": "Food"})
	create(t, h, map[string]any{"description": "Bus", "amount": 5, "category": "Transport"})

	code, env := do(t, h, http.MethodGet, "/api/expenses/stats", nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("got %d %+v", code, env)
	}

	var stats []expensesrepobridge.CategoryStat
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 || stats[0].Category != "Food" || stats[0].Total != 40 || stats[0].Count != 2 {
		t.Errorf("got %+v", stats)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	h := newHandler(t)
	e := create(t, h, map[string]any{"description": "Lunch", "amount": 10})

	code, env := do(t, h, http.MethodPut, "/api/expenses/"+e.ID, map[string]any{"amount": "11.25", "status": "Pending"})
	if code != http.StatusOK {
		t.Fatalf("update: %d %+v", code, env)
	}
	var updated expensesrepobridge.Expense
	_ = json.Unmarshal(env.Data, &updated)
	if updated.Amount != 11.25 || updated.Status != "Pending" || updated.Description != "Lunch" {
		t.Errorf("updated %+v", updated)
	}

	if code, _ := do(t, h, http.MethodDelete, "/api/expenses/"+e.ID, nil); code != http.StatusOK {
		t.Errorf("delete: %d", code)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	h := newHandler(t)

	code, env := do(t, h, http.MethodDelete, "/api/expenses/does-not-exist", nil)
	if code != http.StatusNotFound || env.Error != "Expense not found" {
		t.Errorf("got %d %+v", code, env)
	}
}
