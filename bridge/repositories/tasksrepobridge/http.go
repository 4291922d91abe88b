package tasksrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/views"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.GET("/tasks/{task_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.PUT("/tasks/{task_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	state, err := qp.ListState()
	if err != nil {
		return errs.Wrap(errs.InvalidArgument, err, err.Error())
	}

	tasks, err := b.tasksRepository.List(ctx, tasksrepo.DefaultOrderBy)
	if err != nil {
		return repoError(err, "Failed to load tasks")
	}

	if !qp.Paged() {
		filtered := views.FilterTasks(tasks, state.Status, state.Search)
		sorted := views.SortTasks(filtered, state.SortBy, state.Direction)
		return fopbridge.NewListResponse(ToTasks(sorted))
	}

	page := state.Apply(tasks)
	return fopbridge.NewPagedResponse(ToTasks(page.Tasks), page.Info)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	task, err := b.tasksRepository.Get(ctx, web.Param(r, "task_id"))
	if err != nil {
		return repoError(err, "Failed to load task")
	}
	return fopbridge.NewRecordResponse(ToTask(task))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Wrap(errs.InvalidArgument, err, "Invalid task")
	}

	task, err := b.tasksRepository.Create(ctx, input.toRepository())
	if err != nil {
		return repoError(err, "Failed to create task")
	}
	return fopbridge.NewCreatedResponse(ToTask(task))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Wrap(errs.InvalidArgument, err, "Invalid task")
	}

	task, err := b.tasksRepository.Update(ctx, web.Param(r, "task_id"), input.toRepository())
	if err != nil {
		return repoError(err, "Failed to update task")
	}
	return fopbridge.NewRecordResponse(ToTask(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	if err := b.tasksRepository.Delete(ctx, web.Param(r, "task_id")); err != nil {
		return repoError(err, "Failed to delete task")
	}
	return fopbridge.NewDeletedResponse()
}
