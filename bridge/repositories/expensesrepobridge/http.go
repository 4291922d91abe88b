package expensesrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/views"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Config holds configuration for the Expense bridge
type Config struct {
	Log        *logger.Logger
	Repository *expensesrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Expense
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/expenses", b.httpList, cfg.Middleware...)
	group.GET("/expenses/stats", b.httpStats, cfg.Middleware...)
	group.GET("/expenses/{expense_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/expenses", b.httpCreate, cfg.Middleware...)
	group.PUT("/expenses/{expense_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/expenses/{expense_id}", b.httpDelete, cfg.Middleware...)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	expenses, err := b.expensesRepository.List(ctx, ParseFilter(r), expensesrepo.DefaultOrderBy)
	if err != nil {
		return repoError(err, "Failed to load expenses")
	}

	total := views.TotalExpenses(expenses)
	return fopbridge.NewTotalListResponse(ToExpenses(expenses), total.InexactFloat64())
}

func (b *bridge) httpStats(ctx context.Context, r *http.Request) web.Encoder {
	expenses, err := b.expensesRepository.List(ctx, expensesrepo.QueryFilter{}, expensesrepo.DefaultOrderBy)
	if err != nil {
		return repoError(err, "Failed to load expense stats")
	}
	return fopbridge.NewRecordResponse(toStats(views.CategoryTotals(expenses)))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	expense, err := b.expensesRepository.Get(ctx, web.Param(r, "expense_id"))
	if err != nil {
		return repoError(err, "Failed to load expense")
	}
	return fopbridge.NewRecordResponse(ToExpense(expense))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateExpenseInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Wrap(errs.InvalidArgument, err, "Invalid expense")
	}

	expense, err := b.expensesRepository.Create(ctx, input.toRepository())
	if err != nil {
		return repoError(err, "Failed to create expense")
	}
	return fopbridge.NewCreatedResponse(ToExpense(expense))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	var input UpdateExpenseInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Wrap(errs.InvalidArgument, err, "Invalid expense")
	}

	expense, err := b.expensesRepository.Update(ctx, web.Param(r, "expense_id"), input.toRepository())
	if err != nil {
		return repoError(err, "Failed to update expense")
	}
	return fopbridge.NewRecordResponse(ToExpense(expense))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	if err := b.expensesRepository.Delete(ctx, web.Param(r, "expense_id")); err != nil {
		return repoError(err, "Failed to delete expense")
	}
	return fopbridge.NewDeletedResponse()
}
