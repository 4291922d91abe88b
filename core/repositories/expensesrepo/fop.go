package expensesrepo

import "github.com/jrazmi/dashboard/core/scaffolding/fop"

// QueryFilter holds the available fields a query can be filtered on.
// Search is a case-insensitive substring of the description.
type QueryFilter struct {
	Category   *string
	SearchTerm *string
}

// Columns a store can order by.
const (
	OrderByPK        = "expense_id"
	OrderByDate      = "date"
	OrderByCreatedAt = "created_at"
)

// DefaultOrderBy lists the latest expenses first.
var DefaultOrderBy = fop.NewOrder(OrderByDate, fop.DESC)
