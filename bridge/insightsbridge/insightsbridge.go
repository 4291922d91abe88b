// Package insightsbridge serves the AI insight summary.
package insightsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/core/insights"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Config holds configuration for the insights bridge.
type Config struct {
	Log        *logger.Logger
	Service    *insights.Service
	Tasks      *tasksrepo.Repository
	Expenses   *expensesrepo.Repository
	Middleware []web.Middleware
}

type bridge struct {
	service  *insights.Service
	tasks    *tasksrepo.Repository
	expenses *expensesrepo.Repository
}

// AddHttpRoutes registers the insight routes.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		service:  cfg.Service,
		tasks:    cfg.Tasks,
		expenses: cfg.Expenses,
	}

	group.GET("/ai/analyze", b.httpAnalyze, cfg.Middleware...)
}

// Response is the body of GET /ai/analyze.
type Response struct {
	Success    bool             `json:"success"`
	AIInsights insights.Insight `json:"aiInsights"`
}

func (r Response) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json; charset=utf-8", err
}

func (b *bridge) httpAnalyze(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.tasks.List(ctx, tasksrepo.DefaultOrderBy)
	if err != nil {
		return errs.Wrap(errs.Internal, err, "Failed to load tasks")
	}
	expenses, err := b.expenses.List(ctx, expensesrepo.QueryFilter{}, expensesrepo.DefaultOrderBy)
	if err != nil {
		return errs.Wrap(errs.Internal, err, "Failed to load expenses")
	}

	insight, err := b.service.Generate(ctx, tasks, expenses)
	switch {
	case err == nil:
		return Response{Success: true, AIInsights: insight}
	case errors.Is(err, insights.ErrInvalidResponseFormat):
		return errs.Wrap(errs.InvalidResponseFormat, err, "AI analysis failed.").
			WithDetail("Failed to parse AI response as JSON.")
	case errors.Is(err, insights.ErrIntegrationFailure):
		return errs.Wrap(errs.IntegrationFailure, err, "AI analysis failed.")
	default:
		return errs.Wrap(errs.Internal, err, "AI analysis failed.")
	}
}
