// Package expensesrepobridge exposes the expense repository over HTTP.
package expensesrepobridge

import (
	"errors"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/sdk/validation"
)

type bridge struct {
	expensesRepository *expensesrepo.Repository
}

func newBridge(expensesRepository *expensesrepo.Repository) *bridge {
	return &bridge{
		expensesRepository: expensesRepository,
	}
}

func repoError(err error, message string) *errs.Error {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		return errs.Wrap(errs.InvalidArgument, err, "Validation failed")
	case errors.Is(err, expensesrepo.ErrNotFound):
		return errs.Wrap(errs.NotFound, err, "Expense not found")
	default:
		return errs.Wrap(errs.Internal, err, message)
	}
}
