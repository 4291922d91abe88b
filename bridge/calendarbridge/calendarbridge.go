// Package calendarbridge serves calendar sync and the calendar feed.
package calendarbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/core/calendarsync"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// SyncedMessage is returned after a complete push.
const SyncedMessage = "All tasks synced to Google Calendar"

// Config holds configuration for the calendar bridge.
type Config struct {
	Log        *logger.Logger
	Sync       *calendarsync.Service
	Tasks      *tasksrepo.Repository
	Expenses   *expensesrepo.Repository
	Incomes    *incomesrepo.Repository
	Middleware []web.Middleware
}

type bridge struct {
	sync     *calendarsync.Service
	tasks    *tasksrepo.Repository
	expenses *expensesrepo.Repository
	incomes  *incomesrepo.Repository
}

// AddHttpRoutes registers the calendar routes.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		sync:     cfg.Sync,
		tasks:    cfg.Tasks,
		expenses: cfg.Expenses,
		incomes:  cfg.Incomes,
	}

	group.POST("/calendar/sync-tasks", b.httpSyncTasks, cfg.Middleware...)
	group.GET("/calendar/events", b.httpEvents, cfg.Middleware...)
}

// SyncResponse is the body of a successful push.
type SyncResponse struct {
	Message string              `json:"message"`
	Result  calendarsync.Result `json:"result"`
}

func (s SyncResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json; charset=utf-8", err
}

// FeedEvent is the wire form of a calendar feed entry.
type FeedEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	Color string `json:"color"`
}

func (b *bridge) httpSyncTasks(ctx context.Context, r *http.Request) web.Encoder {
	res, err := b.sync.Push(ctx)
	if err != nil {
		if errors.Is(err, calendarsync.ErrMissingCredential) {
			return errs.Wrap(errs.FailedPrecondition, err, "Calendar is not authorized")
		}
		return errs.Wrap(errs.IntegrationFailure, err, "Error syncing tasks").
			WithDetail(fmt.Sprintf("stopped at task %s after %d created, %d updated, %d skipped",
				res.FailedTaskID, res.Created, res.Updated, res.Skipped))
	}
	return SyncResponse{Message: SyncedMessage, Result: res}
}

func (b *bridge) httpEvents(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.tasks.List(ctx, tasksrepo.DefaultOrderBy)
	if err != nil {
		return errs.Wrap(errs.Internal, err, "Failed to load calendar data")
	}
	expenses, err := b.expenses.List(ctx, expensesrepo.QueryFilter{}, expensesrepo.DefaultOrderBy)
	if err != nil {
		return errs.Wrap(errs.Internal, err, "Failed to load calendar data")
	}
	incomes, err := b.incomes.List(ctx, incomesrepo.DefaultOrderBy)
	if err != nil {
		return errs.Wrap(errs.Internal, err, "Failed to load calendar data")
	}

	events := calendarsync.Events(tasks, expenses, incomes)
	out := make([]FeedEvent, len(events))
	for i, ev := range events {
		out[i] = FeedEvent{Title: ev.Title, Color: ev.Color}
		if !ev.Start.IsZero() {
			out[i].Start = ev.Start.UTC().Format(time.RFC3339)
		}
	}
	return web.NewJSONResponse(out)
}
