// Package tasksrepo provides access to task storage.
package tasksrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/dashboard/core/repositories"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Set of error values for CRUD operations on task resource
var (
	ErrNotFound = repositories.NotFound("task")
)

// Storer defines the data storage interface for Task. Create assigns the
// identifier and timestamps.
type Storer interface {
	Create(ctx context.Context, input CreateTask) (Task, error)
	Get(ctx context.Context, taskID string) (Task, error)
	List(ctx context.Context, orderBy fop.Order) ([]Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, taskID string) error
	SetCalendarEventID(ctx context.Context, taskID string, eventID string) error
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create validates input and stores a new task.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return Task{}, err
	}

	task, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", task.ID)
	return task, nil
}

func (r *Repository) Get(ctx context.Context, taskID string) (Task, error) {
	task, err := r.storer.Get(ctx, taskID)
	if err != nil {
		return Task{}, fmt.Errorf("task repository get: %w", err)
	}
	return task, nil
}

func (r *Repository) List(ctx context.Context, orderBy fop.Order) ([]Task, error) {
	tasks, err := r.storer.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("task repository list: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update. Validation runs on the merged record.
func (r *Repository) Update(ctx context.Context, taskID string, input UpdateTask) (Task, error) {
	current, err := r.storer.Get(ctx, taskID)
	if err != nil {
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}

	next := input.Apply(current)
	if err := validateTask(next); err != nil {
		return Task{}, err
	}

	task, err := r.storer.Update(ctx, next)
	if err != nil {
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}
	return task, nil
}

func (r *Repository) Delete(ctx context.Context, taskID string) error {
	if err := r.storer.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("task repository delete: %w", err)
	}
	r.log.InfoContext(ctx, "task deleted", "task_id", taskID)
	return nil
}

// SetCalendarEventID records the external calendar event for a task.
func (r *Repository) SetCalendarEventID(ctx context.Context, taskID string, eventID string) error {
	if err := r.storer.SetCalendarEventID(ctx, taskID, eventID); err != nil {
		return fmt.Errorf("task repository set calendar event: %w", err)
	}
	return nil
}
