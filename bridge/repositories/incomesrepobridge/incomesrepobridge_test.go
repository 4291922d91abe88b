package incomesrepobridge_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrazmi/dashboard/bridge/repositories/incomesrepobridge"
	"github.com/jrazmi/dashboard/bridge/scaffolding/mid"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo/stores/incomessqlitestore"
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
	incomesrepobridge.AddHttpRoutes(wh.Group("/api"), incomesrepobridge.Config{
		Log:        log,
		Repository: incomesrepo.NewRepository(log, incomessqlitestore.NewStore(log, db)),
	})
	return wh
}

type envelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
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

func TestIncomeCRUD(t *testing.T) {
	h := newHandler(t)

	code, env := do(t, h, http.MethodPost, "/api/income", map[string]any{"source": "Salary", "amount": 3000, "date": "2025-01-31"})
	if code != http.StatusCreated {
		t.Fatalf("create: %d %+v", code, env)
	}
	var created incomesrepobridge.Income
	_ = json.Unmarshal(env.Data, &created)
	if created.ID == "" || created.Amount != 3000 || created.Date != "2025-01-31T00:00:00Z" {
		t.Errorf("created %+v", created)
	}

	do(t, h, http.MethodPost, "/api/income", map[string]any{"source": "Gift", "amount": 50, "date": "2025-02-14"})

	code, env = do(t, h, http.MethodGet, "/api/income", nil)
	var list []incomesrepobridge.Income
	_ = json.Unmarshal(env.Data, &list)
	if code != http.StatusOK || env.Count != 2 || list[0].Source != "Gift" {
		t.Errorf("list: %d %+v", code, list)
	}

	code, env = do(t, h, http.MethodPut, "/api/income/"+created.ID, map[string]any{"amount": 3100.5})
	var updated incomesrepobridge.Income
	_ = json.Unmarshal(env.Data, &updated)
	if code != http.StatusOK || updated.Amount != 3100.5 || updated.Source != "Salary" {
		t.Errorf("update: %d %+v", code, updated)
	}

	if code, _ := do(t, h, http.MethodDelete, "/api/income/"+created.ID, nil); code != http.StatusOK {
		t.Errorf("delete: %d", code)
	}
	if code, env := do(t, h, http.MethodGet, "/api/income/"+created.ID, nil); code != http.StatusNotFound || env.Error != "Income not found" {
		t.Errorf("get deleted: %d %+v", code, env)
	}
}

func TestIncomeValidation(t *testing.T) {
	h := newHandler(t)

	for _, body := range []map[string]any{
		{"amount": 10},
		{"source": "x"},
		{"source": "x", "amount": -5},
	} {
		if code, _ := do(t, h, http.MethodPost, "/api/income", body); code != http.StatusBadRequest {
			t.Errorf("%v: got %d", body, code)
		}
	}
}
