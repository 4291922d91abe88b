package tasksrepobridge

import (
	"net/http"

	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/core/views"
)

// QueryParams are the list query string values.
type QueryParams struct {
	Status   string
	Search   string
	SortBy   string
	Order    string
	Page     string
	PageSize string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Status:   q.Get("status"),
		Search:   q.Get("search"),
		SortBy:   q.Get("sortBy"),
		Order:    q.Get("order"),
		Page:     q.Get("page"),
		PageSize: q.Get("pageSize"),
	}
}

// Paged reports whether the caller asked for a page.
func (qp QueryParams) Paged() bool {
	return qp.Page != "" || qp.PageSize != ""
}

var defaultSort = fop.NewOrder(views.SortByCreatedAt, fop.DESC)

// ListState turns the query into a task list state. An unknown sort key or
// direction, or a malformed page, is an error.
func (qp QueryParams) ListState() (views.TaskListState, error) {
	order, err := fop.ParseOrder(qp.SortBy, qp.Order, views.SortKeys, defaultSort)
	if err != nil {
		return views.TaskListState{}, err
	}

	page, err := fop.ParsePageNumber(qp.Page, qp.PageSize)
	if err != nil {
		return views.TaskListState{}, err
	}

	state := views.NewTaskListState().
		WithStatus(qp.Status).
		WithSearch(qp.Search).
		WithSort(order.Field, order.Direction).
		WithPage(page.Page)
	state.PageSize = page.PageSize
	return state, nil
}
