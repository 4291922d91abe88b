package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/dashboard/core/calendarsync"
	"github.com/jrazmi/dashboard/core/insights"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/settings"
	"github.com/jrazmi/dashboard/sdk/environment"
	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/jrazmi/dashboard/sdk/telemetry"
	"github.com/shopspring/decimal"
)

// site wide globals.
const (
	ApiRoute   = "/api"
	ApiName    = "Smart Dashboard API"
	ApiVersion = "1.0.0"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options is the application level configuration read from the environment.
type Options struct {
	Environment         string          `env:"ENVIRONMENT" default:"production"`
	StoreDriver         string          `env:"STORE_DRIVER" default:"sqlite"`
	AutoMigrate         bool            `env:"AUTO_MIGRATE" default:"true"`
	MonthlyBudget       decimal.Decimal `env:"MONTHLY_BUDGET" default:"5000"`
	CalendarPushTimeout time.Duration   `env:"CALENDAR_PUSH_TIMEOUT" default:"60s"`
	SettingsPath        string          `env:"SETTINGS_PATH" default:"data/settings.json"`
}

// Load reads Options for the given prefix.
func Load(prefix string) (Options, error) {
	var opts Options
	if err := environment.ParseEnvTags(prefix, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing app config: %w", err)
	}
	switch opts.StoreDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return Options{}, fmt.Errorf("unknown store driver %q", opts.StoreDriver)
	}
	return opts, nil
}

// Development reports whether internal error detail may be exposed.
func (o Options) Development() bool {
	return o.Environment == "development"
}

// Repositories are the record stores this instance serves.
type Repositories struct {
	Tasks    *tasksrepo.Repository
	Expenses *expensesrepo.Repository
	Incomes  *incomesrepo.Repository
}

// Dashboard is the overall configuration handed to the HTTP layer.
type Dashboard struct {
	Build     string
	Logger    *logger.Logger
	Telemetry telemetry.Telemetry
	DevMode   bool

	Repositories Repositories
	StatusCheck  func(ctx context.Context) error

	Budget       decimal.Decimal
	Insights     *insights.Service
	CalendarSync *calendarsync.Service
	Settings     *settings.Store
}
