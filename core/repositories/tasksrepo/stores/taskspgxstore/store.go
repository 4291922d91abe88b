// Package taskspgxstore implements tasksrepo.Storer over PostgreSQL.
package taskspgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/scaffolding/fop"
	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/sdk/logger"
)

const columns = `task_id, title, description, status, priority, due_date, tags,
	calendar_event_id, created_at, updated_at`

// Store provides database access for Task.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Task store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	query := `INSERT INTO tasks (task_id, title, description, status, priority, due_date, tags)
		VALUES (@task_id, @title, @description, @status, @priority, @due_date, @tags)
		RETURNING ` + columns

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	args := pgx.NamedArgs{
		"task_id":     uuid.NewString(),
		"title":       input.Title,
		"description": input.Description,
		"status":      input.Status,
		"priority":    input.Priority,
		"due_date":    input.DueDate,
		"tags":        tags,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return task, nil
}

func (s *Store) Get(ctx context.Context, taskID string) (tasksrepo.Task, error) {
	query := `SELECT ` + columns + ` FROM tasks WHERE task_id = @task_id`

	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{"task_id": taskID})
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, fmt.Errorf("task %s: %w", taskID, tasksrepo.ErrNotFound)
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return task, nil
}

func (s *Store) List(ctx context.Context, orderBy fop.Order) ([]tasksrepo.Task, error) {
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM tasks`)

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, tasksrepo.OrderByPK, orderBy.Direction); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, buf.String())
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return tasks, nil
}

func (s *Store) Update(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	query := `UPDATE tasks SET
			title = @title,
			description = @description,
			status = @status,
			priority = @priority,
			due_date = @due_date,
			tags = @tags,
			updated_at = NOW()
		WHERE task_id = @task_id
		RETURNING ` + columns

	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}

	args := pgx.NamedArgs{
		"task_id":     task.ID,
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status,
		"priority":    task.Priority,
		"due_date":    task.DueDate,
		"tags":        tags,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, fmt.Errorf("task %s: %w", task.ID, tasksrepo.ErrNotFound)
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, taskID string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = @task_id`, pgx.NamedArgs{"task_id": taskID})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, tasksrepo.ErrNotFound)
	}
	return nil
}

func (s *Store) SetCalendarEventID(ctx context.Context, taskID string, eventID string) error {
	query := `UPDATE tasks SET calendar_event_id = @event_id, updated_at = NOW() WHERE task_id = @task_id`

	result, err := s.pool.Exec(ctx, query, pgx.NamedArgs{"task_id": taskID, "event_id": eventID})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, tasksrepo.ErrNotFound)
	}
	return nil
}
