package incomesrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Config holds configuration for the Income bridge
type Config struct {
	Log        *logger.Logger
	Repository *incomesrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Income
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/income", b.httpList, cfg.Middleware...)
	group.GET("/income/{income_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/income", b.httpCreate, cfg.Middleware...)
	group.PUT("/income/{income_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/income/{income_id}", b.httpDelete, cfg.Middleware...)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	incomes, err := b.incomesRepository.List(ctx, incomesrepo.DefaultOrderBy)
	if err != nil {
		return repoError(err, "Failed to load income")
	}
	return fopbridge.NewListResponse(toIncomes(incomes))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	income, err := b.incomesRepository.Get(ctx, web.Param(r, "income_id"))
	if err != nil {
		return repoError(err, "Failed to load income")
	}
	return fopbridge.NewRecordResponse(toIncome(income))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateIncomeInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Wrap(errs.InvalidArgument, err, "Invalid income")
	}

	income, err := b.incomesRepository.Create(ctx, input.toRepository())
	if err != nil {
		return repoError(err, "Failed to create income")
	}
	return fopbridge.NewCreatedResponse(toIncome(income))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	var input UpdateIncomeInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Wrap(errs.InvalidArgument, err, "Invalid income")
	}

	income, err := b.incomesRepository.Update(ctx, web.Param(r, "income_id"), input.toRepository())
	if err != nil {
		return repoError(err, "Failed to update income")
	}
	return fopbridge.NewRecordResponse(toIncome(income))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	if err := b.incomesRepository.Delete(ctx, web.Param(r, "income_id")); err != nil {
		return repoError(err, "Failed to delete income")
	}
	return fopbridge.NewDeletedResponse()
}
