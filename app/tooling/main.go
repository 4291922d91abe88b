package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jrazmi/dashboard/app/tooling/commands"
	"github.com/jrazmi/dashboard/sdk/environment"
	"github.com/jrazmi/dashboard/sdk/logger"
)

var build = "develop"

// Tooling shares the server's environment so it migrates the same store
// and writes the token the server reads.
var appName = "DASHBOARD"

func processCommands(ctx context.Context, log *logger.Logger, command string, args []string) error {
	switch command {
	case "migrate":
		log.InfoContext(ctx, "running migration")
		driver := environment.GetPrefixEnvOrDefault(appName, "STORE_DRIVER", "sqlite")
		switch driver {
		case "postgres":
			return commands.MigratePostgres(ctx, log.Logger, appName)
		case "sqlite":
			return commands.MigrateSQLite(ctx, log.Logger, appName)
		default:
			return fmt.Errorf("unknown store driver %q", driver)
		}

	case "calendar-auth":
		err := commands.CalendarAuth(ctx, log.Logger, args, appName, os.Stdin, os.Stdout)
		if errors.Is(err, commands.ErrHelp) {
			return nil
		}
		return err

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate        - create the schema in the configured store")
	fmt.Println("  calendar-auth  - authorize calendar sync and store the OAuth token")
	fmt.Println()
	fmt.Println("Use 'go run app/tooling/main.go <command> --help' for command-specific help.")
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		args := []string{}
		if len(os.Args) > 2 {
			args = os.Args[2:]
		}
		done <- processCommands(ctx, log, command, args)
	}()

	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		select {
		case err := <-done:
			return err
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown timeout: %w", shutdownCtx.Err())
		}
	}
}

func main() {
	environment.LoadEnv()

	log, err := logger.NewFromEnv(appName, logger.WithService("TOOLING"))
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err = run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}
