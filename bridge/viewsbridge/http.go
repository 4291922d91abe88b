package viewsbridge

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jrazmi/dashboard/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/core/views"
	"github.com/jrazmi/dashboard/infrastructure/web"
)

// RecentTransactions is how many ledger rows the dashboard shows.
const RecentTransactions = 5

func (r TransactionsResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json; charset=utf-8", err
}

func (b *bridge) httpTransactions(ctx context.Context, r *http.Request) web.Encoder {
	rec, err := b.loadRecords(ctx, false)
	if err != nil {
		return errs.Wrap(errs.Internal, err, "Failed to load transactions")
	}

	q := r.URL.Query()
	merged := views.MergeTransactions(rec.expenses, rec.incomes)
	filtered := views.FilterTransactions(merged, strings.TrimSpace(q.Get("category")), q.Get("search"))
	summary := views.MonthlySummary(rec.expenses, rec.incomes, b.now(), b.budget)

	data := toTransactions(filtered)
	return TransactionsResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
		Summary: toSummary(summary),
	}
}

func (b *bridge) httpDashboard(ctx context.Context, r *http.Request) web.Encoder {
	q := r.URL.Query()

	order, err := fop.ParseOrder(q.Get("sortBy"), q.Get("order"), views.SortKeys, fop.NewOrder(views.SortByCreatedAt, fop.DESC))
	if err != nil {
		return errs.Wrap(errs.InvalidArgument, err, err.Error())
	}
	page, err := fop.ParsePageNumber(q.Get("page"), q.Get("pageSize"))
	if err != nil {
		return errs.Wrap(errs.InvalidArgument, err, err.Error())
	}

	rec, err := b.loadRecords(ctx, true)
	if err != nil {
		return errs.Wrap(errs.Internal, err, "Failed to load dashboard")
	}

	state := views.NewTaskListState().WithSort(order.Field, order.Direction).WithPage(page.Page)
	state.PageSize = page.PageSize
	tasks := state.Apply(rec.tasks)

	merged := views.MergeTransactions(rec.expenses, rec.incomes)
	recent, _ := views.Paginate(merged, fop.PageNumber{Page: 1, PageSize: RecentTransactions})

	return fopbridge.NewRecordResponse(Dashboard{
		Completion: toCompletion(views.CompletionStats(rec.tasks)),
		Summary:    toSummary(views.MonthlySummary(rec.expenses, rec.incomes, b.now(), b.budget)),
		Tasks:      tasksrepobridge.ToTasks(tasks.Tasks),
		Page:       tasks.Info,
		Recent:     toTransactions(recent),
	})
}
