package tasksrepo

import "github.com/jrazmi/dashboard/core/scaffolding/fop"

// Columns a store can order by.
const (
	OrderByPK        = "task_id"
	OrderByCreatedAt = "created_at"
	OrderByUpdatedAt = "updated_at"
	OrderByDueDate   = "due_date"
)

// DefaultOrderBy lists the newest tasks first.
var DefaultOrderBy = fop.NewOrder(OrderByCreatedAt, fop.DESC)
