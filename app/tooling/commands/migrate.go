// app/tooling/commands/migrate.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jrazmi/dashboard/infrastructure/postgresdb"
	"github.com/jrazmi/dashboard/infrastructure/sqlitedb"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

// MigratePostgres creates the schema in the postgres database.
func MigratePostgres(ctx context.Context, log *slog.Logger, prefix string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	pool, err := postgresdb.NewFromEnv(prefix,
		postgresdb.WithLogger(log),
		postgresdb.WithTracer(postgresdb.NewLoggingQueryTracer(log)),
	)
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer pool.Close()

	log.InfoContext(ctx, "migration started", "driver", "postgres")

	if err := postgresdb.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}

// MigrateSQLite creates the schema in the sqlite database file.
func MigrateSQLite(ctx context.Context, log *slog.Logger, prefix string) error {
	db, err := sqlitedb.NewFromEnv(prefix, sqlitedb.WithLogger(log))
	if err != nil {
		return fmt.Errorf("configuring sqlite support: %w", err)
	}
	defer db.Close()

	log.InfoContext(ctx, "migration started", "driver", "sqlite")

	if err := sqlitedb.Migrate(ctx, log, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}
