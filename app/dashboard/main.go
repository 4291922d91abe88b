package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/dashboard/app/dashboard/api"
	"github.com/jrazmi/dashboard/app/dashboard/config"
	"github.com/jrazmi/dashboard/bridge/scaffolding/mid"
	"github.com/jrazmi/dashboard/core/calendarsync"
	"github.com/jrazmi/dashboard/core/insights"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo/stores/expensespgxstore"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo/stores/expensessqlitestore"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo/stores/incomespgxstore"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo/stores/incomessqlitestore"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/dashboard/core/settings"
	"github.com/jrazmi/dashboard/infrastructure/gemini"
	"github.com/jrazmi/dashboard/infrastructure/googlecalendar"
	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/environment"
	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/jrazmi/dashboard/sdk/telemetry"
)

var build = "develop"
var appName = "DASHBOARD"

func main() {
	environment.LoadEnv()
	ctx := context.Background()

	tel := telemetry.NewTelemetry()
	log, err := logger.NewFromEnv(appName,
		logger.WithService(appName),
		logger.WithTraceIDFn(tel.GetTraceID),
	)
	if err != nil {
		fmt.Println("could not configure logging:", err)
		os.Exit(1)
	}

	if err := run(ctx, log, tel); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, tel telemetry.Telemetry) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	opts, err := config.Load(appName)
	if err != nil {
		return err
	}

	// :*: START DATABASES :*:
	repos, statusCheck, closeStore, err := openRepositories(ctx, log, opts)
	if err != nil {
		return err
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		closeStore()
	}()
	// END DATABASES //

	// INTEGRATIONS //
	var completer insights.Completer
	client, err := gemini.NewFromEnv(ctx, appName)
	switch {
	case errors.Is(err, gemini.ErrNoAPIKey):
		log.WarnContext(ctx, "startup", "status", "gemini api key not set, insights disabled")
	case err != nil:
		return fmt.Errorf("configuring gemini: %w", err)
	default:
		completer = client
		log.InfoContext(ctx, "init", "service", "gemini", "model", client.Model())
	}

	calCfg, err := googlecalendar.LoadOptions(appName)
	if err != nil {
		return err
	}
	// END INTEGRATIONS //

	siteCfg := config.Dashboard{
		Build:        build,
		Logger:       log,
		Telemetry:    tel,
		DevMode:      opts.Development(),
		Repositories: repos,
		StatusCheck:  statusCheck,
		Budget:       opts.MonthlyBudget,
		Insights:     insights.NewService(log, completer),
		CalendarSync: calendarsync.NewService(log, googlecalendar.NewConnector(log, calCfg), repos.Tasks, opts.CalendarPushTimeout),
		Settings:     settings.NewStore(log, opts.SettingsPath),
	}

	handler, err := webHandler(siteCfg)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Dashboard) (http.Handler, error) {
	wh, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger, cfg.DevMode),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	api.AddHandlers(wh, cfg)
	wh.HandleRaw("GET /debug/vars", expvar.Handler())

	return wh, nil
}

// openRepositories connects the configured store driver and builds the
// repositories on top of it.
func openRepositories(ctx context.Context, log *logger.Logger, opts config.Options) (config.Repositories, func(context.Context) error, func(), error) {
	switch opts.StoreDriver {
	case config.DriverPostgres:
		pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return config.Repositories{}, nil, nil, fmt.Errorf("configuring postgres support: %w", err)
		}
		log.InfoContext(ctx, "init", "service", "postgres")

		if opts.AutoMigrate {
			if err := postgresdb.Migrate(ctx, log.Logger, pg); err != nil {
				pg.Close()
				return config.Repositories{}, nil, nil, fmt.Errorf("migrating postgres: %w", err)
			}
		}

		repos := config.Repositories{
			Tasks:    tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pg)),
			Expenses: expensesrepo.NewRepository(log, expensespgxstore.NewStore(log, pg)),
			Incomes:  incomesrepo.NewRepository(log, incomespgxstore.NewStore(log, pg)),
		}
		check := func(ctx context.Context) error { return postgresdb.StatusCheck(ctx, pg) }
		return repos, check, pg.Close, nil

	default:
		db, err := sqlitedb.NewFromEnv(appName,
			sqlitedb.WithLogger(log.Logger),
			sqlitedb.WithMigrate(opts.AutoMigrate),
		)
		if err != nil {
			return config.Repositories{}, nil, nil, fmt.Errorf("configuring sqlite support: %w", err)
		}
		log.InfoContext(ctx, "init", "service", "sqlite")

		repos := config.Repositories{
			Tasks:    tasksrepo.NewRepository(log, taskssqlitestore.NewStore(log, db)),
			Expenses: expensesrepo.NewRepository(log, expensessqlitestore.NewStore(log, db)),
			Incomes:  incomesrepo.NewRepository(log, incomessqlitestore.NewStore(log, db)),
		}
		check := func(ctx context.Context) error { return sqlitedb.StatusCheck(ctx, db) }
		return repos, check, func() { _ = db.Close() }, nil
	}
}
