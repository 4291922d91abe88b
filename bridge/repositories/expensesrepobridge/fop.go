package expensesrepobridge

import (
	"net/http"
	"strings"

	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/views"
)

// ParseFilter reads category and search from the query string. "all" and
// empty values do not filter.
func ParseFilter(r *http.Request) expensesrepo.QueryFilter {
	q := r.URL.Query()

	var filter expensesrepo.QueryFilter
	if c := strings.TrimSpace(q.Get("category")); c != "" && c != views.FilterAll {
		filter.Category = &c
	}
	if s := strings.TrimSpace(q.Get("search")); s != "" {
		filter.SearchTerm = &s
	}
	return filter
}
