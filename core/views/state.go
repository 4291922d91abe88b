package views

import (
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
)

// TaskListState is the selection behind a task list: filter, search, sort
// and page. Changing anything but the page sends the list back to page 1.
type TaskListState struct {
	Status    string
	Search    string
	SortBy    string
	Direction string
	Page      int
	PageSize  int
}

// NewTaskListState returns the state of a freshly opened list: all
// statuses, newest first, page 1.
func NewTaskListState() TaskListState {
	return TaskListState{
		Status:    FilterAll,
		SortBy:    SortByCreatedAt,
		Direction: fop.DESC,
		Page:      1,
		PageSize:  fop.DefaultPageSize,
	}
}

func (s TaskListState) WithStatus(status string) TaskListState {
	s.Status = status
	s.Page = 1
	return s
}

func (s TaskListState) WithSearch(search string) TaskListState {
	s.Search = search
	s.Page = 1
	return s
}

func (s TaskListState) WithSort(sortBy, direction string) TaskListState {
	s.SortBy = sortBy
	s.Direction = direction
	s.Page = 1
	return s
}

func (s TaskListState) WithPage(page int) TaskListState {
	s.Page = page
	return s
}

// TaskPage is one page of a filtered and sorted task list.
type TaskPage struct {
	Tasks []tasksrepo.Task
	Info  fop.PageInfo
}

// Apply runs filter, then sort, then paginate.
func (s TaskListState) Apply(tasks []tasksrepo.Task) TaskPage {
	filtered := FilterTasks(tasks, s.Status, s.Search)
	sorted := SortTasks(filtered, s.SortBy, s.Direction)
	page, info := Paginate(sorted, fop.PageNumber{Page: s.Page, PageSize: s.PageSize})
	return TaskPage{Tasks: page, Info: info}
}
