package calendarbridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/dashboard/bridge/calendarbridge"
	"github.com/jrazmi/dashboard/bridge/scaffolding/mid"
	"github.com/jrazmi/dashboard/core/calendarsync"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo/stores/expensessqlitestore"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo/stores/incomessqlitestore"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/shopspring/decimal"
)

type connectorFunc func(ctx context.Context) (calendarsync.EventWriter, error)

func (f connectorFunc) Connect(ctx context.Context) (calendarsync.EventWriter, error) { return f(ctx) }

type countingWriter struct{ n int }

func (w *countingWriter) Insert(context.Context, calendarsync.Event) (string, error) {
	w.n++
	return "evt", nil
}

func (w *countingWriter) Patch(_ context.Context, id string, _ calendarsync.Event) (string, error) {
	return id, nil
}

type fixture struct {
	handler  http.Handler
	tasks    *tasksrepo.Repository
	expenses *expensesrepo.Repository
	incomes  *incomesrepo.Repository
}

func newFixture(t *testing.T, conn calendarsync.Connector) fixture {
	t.Helper()

	log := logger.NewDiscard()
	db, err := sqlitedb.NewTestDB(sqlitedb.WithLogger(log.Logger))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	f := fixture{
		tasks:    tasksrepo.NewRepository(log, taskssqlitestore.NewStore(log, db)),
		expenses: expensesrepo.NewRepository(log, expensessqlitestore.NewStore(log, db)),
		incomes:  incomesrepo.NewRepository(log, incomessqlitestore.NewStore(log, db)),
	}

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mid.Errors(log, false)))
	calendarbridge.AddHttpRoutes(wh.Group("/api"), calendarbridge.Config{
		Log:      log,
		Sync:     calendarsync.NewService(log, conn, f.tasks, time.Second),
		Tasks:    f.tasks,
		Expenses: f.expenses,
		Incomes:  f.incomes,
	})
	f.handler = wh
	return f
}

func send(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestSyncTasks(t *testing.T) {
	w := &countingWriter{}
	f := newFixture(t, connectorFunc(func(context.Context) (calendarsync.EventWriter, error) { return w, nil }))

	due := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, err := f.tasks.Create(context.Background(), tasksrepo.CreateTask{Title: "Pay rent", DueDate: &due}); err != nil {
		t.Fatal(err)
	}

	rec := send(f.handler, http.MethodPost, "/api/calendar/sync-tasks")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var resp calendarbridge.SyncResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != calendarbridge.SyncedMessage || resp.Result.Created != 1 || !resp.Result.Completed || w.n != 1 {
		t.Errorf("got %+v, inserts %d", resp, w.n)
	}
}

func TestSyncTasksErrors(t *testing.T) {
	f := newFixture(t, connectorFunc(func(context.Context) (calendarsync.EventWriter, error) {
		return nil, calendarsync.ErrMissingCredential
	}))
	rec := send(f.handler, http.MethodPost, "/api/calendar/sync-tasks")
	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "Calendar is not authorized") {
		t.Errorf("missing credential: %d %s", rec.Code, rec.Body)
	}

	f = newFixture(t, connectorFunc(func(context.Context) (calendarsync.EventWriter, error) {
		return nil, errors.New("tls handshake timeout")
	}))
	rec = send(f.handler, http.MethodPost, "/api/calendar/sync-tasks")
	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "Error syncing tasks") {
		t.Errorf("transport: %d %s", rec.Code, rec.Body)
	}
}

func TestEvents(t *testing.T) {
	f := newFixture(t, connectorFunc(func(context.Context) (calendarsync.EventWriter, error) { return nil, nil }))
	ctx := context.Background()

	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(20)
	if _, err := f.tasks.Create(ctx, tasksrepo.CreateTask{Title: "Pay rent", DueDate: &day}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.tasks.Create(ctx, tasksrepo.CreateTask{Title: "Someday"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.expenses.Create(ctx, expensesrepo.CreateExpense{Description: "Lunch", Amount: &amount, Category: "Food", Date: &day}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.incomes.Create(ctx, incomesrepo.CreateIncome{Source: "Salary", Amount: &amount, Date: &day}); err != nil {
		t.Fatal(err)
	}

	rec := send(f.handler, http.MethodGet, "/api/calendar/events")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var events []calendarbridge.FeedEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatal(err)
	}
	want := []calendarbridge.FeedEvent{
		{Title: "Task: Pay rent", Start: "2025-03-03T00:00:00Z", Color: calendarsync.ColorTask},
		{Title: "Task: Someday", Color: calendarsync.ColorTask},
		{Title: "Expense: Food - $20", Start: "2025-03-03T00:00:00Z", Color: calendarsync.ColorExpense},
		{Title: "Income: Salary +$20", Start: "2025-03-03T00:00:00Z", Color: calendarsync.ColorIncome},
	}
	if len(events) != len(want) {
		t.Fatalf("got %+v", events)
	}
	slices.SortStableFunc(events[:2], func(a, b calendarbridge.FeedEvent) int { return strings.Compare(a.Title, b.Title) })
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got %+v, want %+v", i, events[i], want[i])
		}
	}
}
