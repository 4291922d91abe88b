package tasksrepo

import (
	"strings"
	"time"

	"github.com/jrazmi/dashboard/sdk/validation"
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Field limits.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
)

var (
	Statuses   = []string{StatusPending, StatusInProgress, StatusCompleted}
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// Task is a single to-do item. Completion is derived from Status.
type Task struct {
	ID              string     `db:"task_id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Status          string     `db:"status"`
	Priority        string     `db:"priority"`
	DueDate         *time.Time `db:"due_date"`
	Tags            []string   `db:"tags"`
	CalendarEventID *string    `db:"calendar_event_id"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// Completed reports whether the task is done.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// CreateTask contains fields for creating a new task.
type CreateTask struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	Tags        []string
}

// normalize trims text fields and fills defaults. Due dates are kept in UTC,
// the zone their calendar day is read in.
func (c *CreateTask) normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	if c.Status == "" {
		c.Status = StatusPending
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	c.Tags = validation.UniqueTrimmed(c.Tags)
	if c.DueDate != nil {
		d := c.DueDate.UTC()
		c.DueDate = &d
	}
}

// Validate checks the field constraints.
func (c CreateTask) Validate() error {
	var errs validation.Errors
	errs.Required("title", c.Title, "Please add a task title")
	errs.MaxLen("title", c.Title, MaxTitleLen)
	errs.MaxLen("description", c.Description, MaxDescriptionLen)
	errs.OneOf("status", c.Status, Statuses)
	errs.OneOf("priority", c.Priority, Priorities)
	return errs.Err()
}

// UpdateTask contains fields for updating an existing task.
// All fields are optional (pointers) to support partial updates.
type UpdateTask struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	// ClearDueDate removes the due date; it wins over DueDate.
	ClearDueDate bool
	Tags         *[]string
	// Completed is the toggle shorthand: true sets the status to
	// completed, false to in-progress. An explicit Status wins.
	Completed *bool
}

// Apply merges the update onto t.
func (u UpdateTask) Apply(t Task) Task {
	if u.Title != nil {
		t.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		t.Description = strings.TrimSpace(*u.Description)
	}
	if u.Completed != nil {
		if *u.Completed {
			t.Status = StatusCompleted
		} else {
			t.Status = StatusInProgress
		}
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		d := u.DueDate.UTC()
		t.DueDate = &d
	}
	if u.ClearDueDate {
		t.DueDate = nil
	}
	if u.Tags != nil {
		t.Tags = validation.UniqueTrimmed(*u.Tags)
	}
	return t
}

// validateTask checks a merged task before it is written.
func validateTask(t Task) error {
	return CreateTask{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
	}.Validate()
}
