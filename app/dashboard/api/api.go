// Package api wires the dashboard routes onto the web handler.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/dashboard/app/dashboard/config"
	"github.com/jrazmi/dashboard/bridge/calendarbridge"
	"github.com/jrazmi/dashboard/bridge/insightsbridge"
	"github.com/jrazmi/dashboard/bridge/repositories/expensesrepobridge"
	"github.com/jrazmi/dashboard/bridge/repositories/incomesrepobridge"
	"github.com/jrazmi/dashboard/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/dashboard/bridge/settingsbridge"
	"github.com/jrazmi/dashboard/bridge/viewsbridge"
	"github.com/jrazmi/dashboard/infrastructure/web"
)

// AddHandlers registers every dashboard route.
func AddHandlers(wh *web.WebHandler, cfg config.Dashboard) {
	api := wh.Group(config.ApiRoute)
	repos := cfg.Repositories

	tasksrepobridge.AddHttpRoutes(api, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: repos.Tasks,
	})
	expensesrepobridge.AddHttpRoutes(api, expensesrepobridge.Config{
		Log:        cfg.Logger,
		Repository: repos.Expenses,
	})
	incomesrepobridge.AddHttpRoutes(api, incomesrepobridge.Config{
		Log:        cfg.Logger,
		Repository: repos.Incomes,
	})
	viewsbridge.AddHttpRoutes(api, viewsbridge.Config{
		Log:      cfg.Logger,
		Tasks:    repos.Tasks,
		Expenses: repos.Expenses,
		Incomes:  repos.Incomes,
		Budget:   cfg.Budget,
	})
	insightsbridge.AddHttpRoutes(api, insightsbridge.Config{
		Log:      cfg.Logger,
		Service:  cfg.Insights,
		Tasks:    repos.Tasks,
		Expenses: repos.Expenses,
	})
	calendarbridge.AddHttpRoutes(api, calendarbridge.Config{
		Log:      cfg.Logger,
		Sync:     cfg.CalendarSync,
		Tasks:    repos.Tasks,
		Expenses: repos.Expenses,
		Incomes:  repos.Incomes,
	})
	settingsbridge.AddHttpRoutes(api, settingsbridge.Config{
		Log:   cfg.Logger,
		Store: cfg.Settings,
	})

	h := handlers{statusCheck: cfg.StatusCheck}
	api.GET("/health", h.health)
	wh.GET("/{$}", h.info)
	wh.HandleNotFound(h.notFound)
}

type handlers struct {
	statusCheck func(ctx context.Context) error
}

func (h handlers) health(ctx context.Context, r *http.Request) web.Encoder {
	if h.statusCheck != nil {
		if err := h.statusCheck(ctx); err != nil {
			return errs.Wrap(errs.Internal, err, "Store unavailable")
		}
	}

	resp := fopbridge.NewMessageResponse("Server is running")
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	return resp
}

// Info describes the API at its root.
type Info struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (h handlers) info(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewJSONResponse(Info{
		Message: config.ApiName,
		Version: config.ApiVersion,
		Endpoints: map[string]string{
			"tasks":        config.ApiRoute + "/tasks",
			"expenses":     config.ApiRoute + "/expenses",
			"income":       config.ApiRoute + "/income",
			"transactions": config.ApiRoute + "/transactions",
			"dashboard":    config.ApiRoute + "/dashboard",
			"health":       config.ApiRoute + "/health",
			"ai":           config.ApiRoute + "/ai/analyze",
			"calendar":     config.ApiRoute + "/calendar/events",
			"settings":     config.ApiRoute + "/settings",
		},
	})
}

func (h handlers) notFound(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewErrorWithStatus("Route not found", http.StatusNotFound)
}
