// Package tasksrepobridge exposes the task repository and the task list view
// over HTTP.
package tasksrepobridge

import (
	"errors"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/sdk/validation"
)

type bridge struct {
	tasksRepository *tasksrepo.Repository
}

func newBridge(tasksRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		tasksRepository: tasksRepository,
	}
}

// repoError maps a repository error onto the HTTP error taxonomy.
func repoError(err error, message string) *errs.Error {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		return errs.Wrap(errs.InvalidArgument, err, "Validation failed")
	case errors.Is(err, tasksrepo.ErrNotFound):
		return errs.Wrap(errs.NotFound, err, "Task not found")
	default:
		return errs.Wrap(errs.Internal, err, message)
	}
}
