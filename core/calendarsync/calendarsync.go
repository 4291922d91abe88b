// Package calendarsync pushes dated tasks to an external calendar as
// all-day events and records the resulting event ids on the tasks.
package calendarsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// DefaultPushTimeout bounds a whole Push when no timeout is configured.
const DefaultPushTimeout = 60 * time.Second

// NoDescription is used for tasks with an empty description.
const NoDescription = "No description"

const dateLayout = "2006-01-02"

var (
	// ErrMissingCredential is returned when no stored authorization exists.
	// The authorization flow is run from the tooling CLI, never from Push.
	ErrMissingCredential = errors.New("calendar not authorized: run the calendar-auth tool first")

	// ErrEventGone is returned by an EventWriter when the event to patch no
	// longer exists remotely.
	ErrEventGone = errors.New("calendar event no longer exists")
)

// Event is an all-day calendar event. End is exclusive.
type Event struct {
	Summary     string
	Description string
	StartDate   string
	EndDate     string
}

// EventWriter creates and updates events in one calendar.
type EventWriter interface {
	Insert(ctx context.Context, ev Event) (string, error)
	Patch(ctx context.Context, eventID string, ev Event) (string, error)
}

// Connector opens an authorized EventWriter from stored credentials. It
// returns ErrMissingCredential when none are stored.
type Connector interface {
	Connect(ctx context.Context) (EventWriter, error)
}

// TaskStore is the part of the task repository Push needs.
type TaskStore interface {
	List(ctx context.Context, orderBy fop.Order) ([]tasksrepo.Task, error)
	SetCalendarEventID(ctx context.Context, taskID string, eventID string) error
}

// Result reports what a Push did. Completed is false when the push stopped
// early; FailedTaskID then names the task that failed, if any.
type Result struct {
	Created      int    `json:"created"`
	Updated      int    `json:"updated"`
	Skipped      int    `json:"skipped"`
	Total        int    `json:"total"`
	Completed    bool   `json:"completed"`
	FailedTaskID string `json:"failedTaskId,omitempty"`
}

// Service pushes tasks to a calendar.
type Service struct {
	log       *logger.Logger
	connector Connector
	tasks     TaskStore
	timeout   time.Duration
}

// NewService returns a Service. A non-positive timeout uses
// DefaultPushTimeout.
func NewService(log *logger.Logger, connector Connector, tasks TaskStore, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultPushTimeout
	}
	return &Service{
		log:       log,
		connector: connector,
		tasks:     tasks,
		timeout:   timeout,
	}
}

// EventFor maps a dated task to its all-day event. ok is false for tasks
// without a due date.
func EventFor(task tasksrepo.Task) (Event, bool) {
	if task.DueDate == nil {
		return Event{}, false
	}

	desc := task.Description
	if desc == "" {
		desc = NoDescription
	}

	due := *task.DueDate
	return Event{
		Summary:     task.Title,
		Description: desc,
		StartDate:   due.Format(dateLayout),
		EndDate:     due.AddDate(0, 0, 1).Format(dateLayout),
	}, true
}

// Push walks every task in creation order, one at a time. Tasks with a
// stored event id are patched, and recreated if the remote event is gone.
// Others are inserted. The new event id is written back to the task. The
// first failure stops the walk and is returned with the partial Result.
func (s *Service) Push(ctx context.Context) (Result, error) {
	var res Result

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	writer, err := s.connector.Connect(ctx)
	if err != nil {
		return res, fmt.Errorf("calendar connect: %w", err)
	}

	tasks, err := s.tasks.List(ctx, fop.NewOrder(tasksrepo.OrderByCreatedAt, fop.ASC))
	if err != nil {
		return res, fmt.Errorf("calendar list tasks: %w", err)
	}
	res.Total = len(tasks)

	for _, task := range tasks {
		ev, ok := EventFor(task)
		if !ok {
			res.Skipped++
			continue
		}

		eventID, created, err := s.pushOne(ctx, writer, task, ev)
		if err != nil {
			res.FailedTaskID = task.ID
			s.log.ErrorContext(ctx, "calendar push stopped", "task_id", task.ID, "error", err)
			return res, fmt.Errorf("calendar push task %s: %w", task.ID, err)
		}

		if err := s.tasks.SetCalendarEventID(ctx, task.ID, eventID); err != nil {
			res.FailedTaskID = task.ID
			return res, fmt.Errorf("calendar record event id for task %s: %w", task.ID, err)
		}

		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	res.Completed = true
	s.log.InfoContext(ctx, "calendar push complete",
		"created", res.Created, "updated", res.Updated, "skipped", res.Skipped)
	return res, nil
}

func (s *Service) pushOne(ctx context.Context, w EventWriter, task tasksrepo.Task, ev Event) (string, bool, error) {
	if task.CalendarEventID != nil && *task.CalendarEventID != "" {
		id, err := w.Patch(ctx, *task.CalendarEventID, ev)
		if err == nil {
			return id, false, nil
		}
		if !errors.Is(err, ErrEventGone) {
			return "", false, err
		}
		s.log.InfoContext(ctx, "calendar event gone, recreating", "task_id", task.ID, "event_id", *task.CalendarEventID)
	}

	id, err := w.Insert(ctx, ev)
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}
