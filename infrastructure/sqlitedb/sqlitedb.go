// Package sqlitedb opens the embedded SQLite store used for single-user
// installs and tests.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jrazmi/dashboard/sdk/environment"

	_ "modernc.org/sqlite"
)

// Set of error variables for CRUD operations.
var (
	ErrDBNotFound = sql.ErrNoRows
)

// DB is the handle shared by the sqlite stores.
type DB = sql.DB

// TimeLayout is the text layout timestamps are stored with. It sorts
// lexically in time order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Options represents the exportable database configuration
type Options struct {
	Path string `env:"SQLITE_PATH" default:"dashboard.db"`
}

type options struct {
	path    string
	logger  *slog.Logger
	migrate bool
}

// Option is a function that configures the database options
type Option func(*options)

// WithLogger sets a custom logger for the database
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPath overrides the database file path.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithMigrate applies the embedded migrations right after opening.
func WithMigrate(enable bool) Option {
	return func(o *options) {
		o.migrate = enable
	}
}

// NewFromEnv opens the database using environment variables.
func NewFromEnv(prefix string, opts ...Option) (*sql.DB, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sqlite config: %w", err)
	}
	return newDatabase(cfg, opts...)
}

// NewTestDB opens a migrated in-memory database.
func NewTestDB(opts ...Option) (*sql.DB, error) {
	opts = append([]Option{WithMigrate(true)}, opts...)
	return newDatabase(Options{Path: ":memory:"}, opts...)
}

func newDatabase(cfg Options, opts ...Option) (*sql.DB, error) {
	internalOpts := &options{
		path: cfg.Path,
	}

	for _, opt := range opts {
		opt(internalOpts)
	}

	if internalOpts.logger == nil {
		internalOpts.logger = slog.Default()
	}

	db, err := Open(internalOpts.path)
	if err != nil {
		return nil, err
	}

	if internalOpts.migrate {
		if err := Migrate(context.Background(), internalOpts.logger, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Open opens the database file at path. A path of ":memory:" gives a
// private in-memory database.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("db path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: is its own database; one connection
	// keeps the stores on the same data. SQLite serialises writers anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return db, nil
}

// StatusCheck returns nil if it can successfully talk to the database
func StatusCheck(ctx context.Context, db *sql.DB) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}

	return db.PingContext(ctx)
}

// HandleError converts driver errors to application errors
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDBNotFound
	}
	return err
}

// FormatTime renders t in TimeLayout, in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a value written by FormatTime. Empty input yields the
// zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	return t, err
}
