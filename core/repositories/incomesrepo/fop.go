package incomesrepo

import "github.com/jrazmi/dashboard/core/scaffolding/fop"

// Columns a store can order by.
const (
	OrderByPK        = "income_id"
	OrderByDate      = "date"
	OrderByCreatedAt = "created_at"
)

// DefaultOrderBy lists the latest incomes first.
var DefaultOrderBy = fop.NewOrder(OrderByDate, fop.DESC)
