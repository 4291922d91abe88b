// Package viewsbridge serves the derived views that combine several record
// kinds: the transaction ledger and the dashboard overview.
package viewsbridge

import (
	"context"
	"time"

	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for the views bridge.
type Config struct {
	Log        *logger.Logger
	Tasks      *tasksrepo.Repository
	Expenses   *expensesrepo.Repository
	Incomes    *incomesrepo.Repository
	Budget     decimal.Decimal
	Now        func() time.Time
	Middleware []web.Middleware
}

type bridge struct {
	log      *logger.Logger
	tasks    *tasksrepo.Repository
	expenses *expensesrepo.Repository
	incomes  *incomesrepo.Repository
	budget   decimal.Decimal
	now      func() time.Time
}

// AddHttpRoutes registers the view routes.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		log:      cfg.Log,
		tasks:    cfg.Tasks,
		expenses: cfg.Expenses,
		incomes:  cfg.Incomes,
		budget:   cfg.Budget,
		now:      cfg.Now,
	}
	if b.now == nil {
		b.now = time.Now
	}

	group.GET("/transactions", b.httpTransactions, cfg.Middleware...)
	group.GET("/dashboard", b.httpDashboard, cfg.Middleware...)
}

// records is one consistent read of every record kind.
type records struct {
	tasks    []tasksrepo.Task
	expenses []expensesrepo.Expense
	incomes  []incomesrepo.Income
}

// loadRecords fetches tasks, expenses and incomes concurrently. Any failure
// cancels the other reads.
func (b *bridge) loadRecords(ctx context.Context, withTasks bool) (records, error) {
	var rec records

	g, ctx := errgroup.WithContext(ctx)
	if withTasks {
		g.Go(func() error {
			var err error
			rec.tasks, err = b.tasks.List(ctx, tasksrepo.DefaultOrderBy)
			return err
		})
	}
	g.Go(func() error {
		var err error
		rec.expenses, err = b.expenses.List(ctx, expensesrepo.QueryFilter{}, expensesrepo.DefaultOrderBy)
		return err
	})
	g.Go(func() error {
		var err error
		rec.incomes, err = b.incomes.List(ctx, incomesrepo.DefaultOrderBy)
		return err
	})

	if err := g.Wait(); err != nil {
		return records{}, err
	}
	return rec, nil
}
