// Package incomesrepobridge exposes the income repository over HTTP.
package incomesrepobridge

import (
	"errors"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/sdk/validation"
)

type bridge struct {
	incomesRepository *incomesrepo.Repository
}

func newBridge(incomesRepository *incomesrepo.Repository) *bridge {
	return &bridge{
		incomesRepository: incomesRepository,
	}
}

func repoError(err error, message string) *errs.Error {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		return errs.Wrap(errs.InvalidArgument, err, "Validation failed")
	case errors.Is(err, incomesrepo.ErrNotFound):
		return errs.Wrap(errs.NotFound, err, "Income not found")
	default:
		return errs.Wrap(errs.Internal, err, message)
	}
}
