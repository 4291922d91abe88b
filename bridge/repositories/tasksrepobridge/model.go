package tasksrepobridge

import (
	"bytes"
	"encoding/json"

	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/sdk/validation"
)

// Task is the wire form of a task.
type Task struct {
	ID              string   `json:"_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	Priority        string   `json:"priority"`
	Completed       bool     `json:"completed"`
	DueDate         *string  `json:"dueDate"`
	Tags            []string `json:"tags"`
	CalendarEventID *string  `json:"calendarEventId,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// CreateTaskInput is the body of POST /tasks.
type CreateTaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	DueDate     *string  `json:"dueDate"`
	Tags        []string `json:"tags"`
}

// Validate checks that dueDate parses. Field rules live in the repository.
func (in CreateTaskInput) Validate() error {
	var errs validation.Errors
	errs.Date("dueDate", in.DueDate)
	return errs.Err()
}

// nullableString tells an absent field apart from an explicit null.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// UpdateTaskInput is the body of PUT /tasks/{task_id}. A dueDate of null or
// "" clears the due date. {"completed": bool} alone toggles the task.
type UpdateTaskInput struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	Priority    *string        `json:"priority"`
	DueDate     nullableString `json:"dueDate"`
	Tags        *[]string      `json:"tags"`
	Completed   *bool          `json:"completed"`
}

func (in UpdateTaskInput) Validate() error {
	var errs validation.Errors
	errs.Date("dueDate", in.DueDate.Value)
	return errs.Err()
}

// ToTask renders a stored task.
func ToTask(t tasksrepo.Task) Task {
	out := Task{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		Priority:        t.Priority,
		Completed:       t.Completed(),
		Tags:            t.Tags,
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       validation.FormatTimePtrToString(&t.CreatedAt),
		UpdatedAt:       validation.FormatTimePtrToString(&t.UpdatedAt),
	}
	if t.DueDate != nil {
		d := validation.DateOnly(*t.DueDate)
		out.DueDate = &d
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

// ToTasks renders a list of stored tasks.
func ToTasks(tasks []tasksrepo.Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = ToTask(t)
	}
	return out
}

func (in CreateTaskInput) toRepository() tasksrepo.CreateTask {
	var errs validation.Errors
	return tasksrepo.CreateTask{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     errs.Date("dueDate", in.DueDate),
		Tags:        in.Tags,
	}
}

func (in UpdateTaskInput) toRepository() tasksrepo.UpdateTask {
	var errs validation.Errors
	up := tasksrepo.UpdateTask{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		Tags:        in.Tags,
		Completed:   in.Completed,
	}
	if in.DueDate.Set {
		up.DueDate = errs.Date("dueDate", in.DueDate.Value)
		up.ClearDueDate = up.DueDate == nil
	}
	return up
}
