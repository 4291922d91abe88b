package calendarsync

import (
	"time"

	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
)

// Feed colors.
const (
	ColorTask    = "#2196f3"
	ColorExpense = "#e53935"
	ColorIncome  = "#43a047"
)

// FeedEvent is one entry of the read-only calendar feed. Start is zero for
// tasks without a due date.
type FeedEvent struct {
	Title string
	Start time.Time
	Color string
}

// Events lists tasks, then expenses, then incomes as colored feed entries.
func Events(tasks []tasksrepo.Task, expenses []expensesrepo.Expense, incomes []incomesrepo.Income) []FeedEvent {
	out := make([]FeedEvent, 0, len(tasks)+len(expenses)+len(incomes))

	for _, t := range tasks {
		ev := FeedEvent{
			Title: "Task: " + t.Title,
			Color: ColorTask,
		}
		if t.DueDate != nil {
			ev.Start = *t.DueDate
		}
		out = append(out, ev)
	}
	for _, e := range expenses {
		out = append(out, FeedEvent{
			Title: "Expense: " + e.Category + " - $" + e.Amount.String(),
			Start: e.Date,
			Color: ColorExpense,
		})
	}
	for _, i := range incomes {
		out = append(out, FeedEvent{
			Title: "Income: " + i.Source + " +$" + i.Amount.String(),
			Start: i.Date,
			Color: ColorIncome,
		})
	}

	return out
}
