// Package views computes the read-only projections the dashboard renders:
// sorted and paged task lists, the merged transaction list and the monthly
// figures. Every function is pure and returns new slices.
package views

import (
	"slices"
	"strings"

	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
)

// Task sort keys.
const (
	SortByCreatedAt = "createdAt"
	SortByDueDate   = "dueDate"
	SortByPriority  = "priority"
)

// SortKeys lists the accepted task sort keys.
var SortKeys = []string{SortByCreatedAt, SortByDueDate, SortByPriority}

// FilterAll disables a status or category filter.
const FilterAll = "all"

var priorityRank = map[string]int{
	tasksrepo.PriorityHigh:   3,
	tasksrepo.PriorityMedium: 2,
	tasksrepo.PriorityLow:    1,
}

// SortTasks returns tasks ordered by key in direction (asc or desc). The
// sort is stable. Tasks without a due date always come after dated tasks
// when sorting by dueDate, in either direction. An unknown key keeps the
// input order.
func SortTasks(tasks []tasksrepo.Task, key string, direction string) []tasksrepo.Task {
	out := slices.Clone(tasks)

	sign := 1
	if strings.EqualFold(direction, fop.DESC) {
		sign = -1
	}

	var cmp func(a, b tasksrepo.Task) int
	switch key {
	case SortByCreatedAt:
		cmp = func(a, b tasksrepo.Task) int {
			return sign * a.CreatedAt.Compare(b.CreatedAt)
		}

	case SortByPriority:
		cmp = func(a, b tasksrepo.Task) int {
			return sign * (priorityRank[a.Priority] - priorityRank[b.Priority])
		}

	case SortByDueDate:
		cmp = func(a, b tasksrepo.Task) int {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return 0
			case a.DueDate == nil:
				return 1
			case b.DueDate == nil:
				return -1
			}
			return sign * a.DueDate.Compare(*b.DueDate)
		}

	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}

// FilterTasks keeps tasks whose status matches (an empty or "all" status
// matches everything) and whose title or description contains query,
// ignoring case.
func FilterTasks(tasks []tasksrepo.Task, status string, query string) []tasksrepo.Task {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]tasksrepo.Task, 0, len(tasks))
	for _, t := range tasks {
		if status != "" && status != FilterAll && t.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Completion summarises task completion.
type Completion struct {
	Total          int
	Completed      int
	Active         int
	CompletionRate float64
}

// CompletionStats counts completed and active tasks. The rate is a fraction
// in [0, 1] and zero when there are no tasks.
func CompletionStats(tasks []tasksrepo.Task) Completion {
	var s Completion
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed() {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total)
	}
	return s
}
