// Package taskssqlitestore implements tasksrepo.Storer over SQLite.
package taskssqlitestore

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/jrazmi/dashboard/sdk/validation"
)

const columns = `task_id, title, description, status, priority, due_date, tags,
	calendar_event_id, created_at, updated_at`

// Store provides database access for Task.
type Store struct {
	log *logger.Logger
	db  *sqlitedb.DB
}

// NewStore creates a new Task store
func NewStore(log *logger.Logger, db *sqlitedb.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// Create inserts a task. Timestamps are taken from the clock here so both
// drivers share the same RFC 3339 representation.
func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	now := time.Now()
	id := uuid.NewString()

	query := `INSERT INTO tasks (task_id, title, description, status, priority, due_date, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		id, input.Title, input.Description, input.Status, input.Priority,
		dueDateValue(input.DueDate), validation.NewJSONField(tagsOrEmpty(input.Tags)),
		sqlitedb.FormatTime(now), sqlitedb.FormatTime(now))
	if err != nil {
		return tasksrepo.Task{}, sqlitedb.HandleError(err)
	}

	return s.Get(ctx, id)
}

func (s *Store) Get(ctx context.Context, taskID string) (tasksrepo.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM tasks WHERE task_id = ?`, taskID)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tasksrepo.Task{}, fmt.Errorf("task %s: %w", taskID, tasksrepo.ErrNotFound)
		}
		return tasksrepo.Task{}, sqlitedb.HandleError(err)
	}
	return task, nil
}

func (s *Store) List(ctx context.Context, orderBy fop.Order) ([]tasksrepo.Task, error) {
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM tasks`)

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, tasksrepo.OrderByPK, orderBy.Direction); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, buf.String())
	if err != nil {
		return nil, sqlitedb.HandleError(err)
	}
	defer rows.Close()

	var tasks []tasksrepo.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) Update(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	query := `UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?,
			due_date = ?, tags = ?, updated_at = ?
		WHERE task_id = ?`

	result, err := s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Status, task.Priority,
		dueDateValue(task.DueDate), validation.NewJSONField(tagsOrEmpty(task.Tags)),
		sqlitedb.FormatTime(time.Now()), task.ID)
	if err != nil {
		return tasksrepo.Task{}, sqlitedb.HandleError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return tasksrepo.Task{}, fmt.Errorf("task %s: %w", task.ID, tasksrepo.ErrNotFound)
	}

	return s.Get(ctx, task.ID)
}

func (s *Store) Delete(ctx context.Context, taskID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = ?`, taskID)
	if err != nil {
		return sqlitedb.HandleError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s: %w", taskID, tasksrepo.ErrNotFound)
	}
	return nil
}

func (s *Store) SetCalendarEventID(ctx context.Context, taskID string, eventID string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET calendar_event_id = ?, updated_at = ? WHERE task_id = ?`,
		eventID, sqlitedb.FormatTime(time.Now()), taskID)
	if err != nil {
		return sqlitedb.HandleError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s: %w", taskID, tasksrepo.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (tasksrepo.Task, error) {
	var (
		task      tasksrepo.Task
		dueDate   sql.NullString
		tags      validation.JSONField[[]string]
		eventID   sql.NullString
		createdAt string
		updatedAt string
	)

	if err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&dueDate, &tags, &eventID, &createdAt, &updatedAt); err != nil {
		return tasksrepo.Task{}, err
	}

	if dueDate.Valid && dueDate.String != "" {
		d, err := time.Parse(time.DateOnly, dueDate.String)
		if err != nil {
			return tasksrepo.Task{}, fmt.Errorf("parse due date %q: %w", dueDate.String, err)
		}
		task.DueDate = &d
	}
	task.Tags = tags.Data
	if eventID.Valid {
		task.CalendarEventID = &eventID.String
	}

	var err error
	if task.CreatedAt, err = sqlitedb.ParseTime(createdAt); err != nil {
		return tasksrepo.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	if task.UpdatedAt, err = sqlitedb.ParseTime(updatedAt); err != nil {
		return tasksrepo.Task{}, fmt.Errorf("parse updated_at: %w", err)
	}

	return task, nil
}

func dueDateValue(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.UTC().Format(time.DateOnly)
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

