package postgresdb

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// MultiQueryTracer fans every trace event out to several tracers.
type MultiQueryTracer struct {
	Tracers []pgx.QueryTracer
}

func NewMultiQueryTracer(tracers ...pgx.QueryTracer) *MultiQueryTracer {
	return &MultiQueryTracer{Tracers: tracers}
}

func (m *MultiQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, t := range m.Tracers {
		ctx = t.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (m *MultiQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, t := range m.Tracers {
		t.TraceQueryEnd(ctx, conn, data)
	}
}

type queryStartKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

// LoggingQueryTracer logs each statement with its duration. Statements
// slower than the threshold are logged at warn level even when debug
// logging is off. Log records carry the request context so the trace id
// of the HTTP request is attached.
type LoggingQueryTracer struct {
	logger *slog.Logger
	slow   time.Duration
}

func NewLoggingQueryTracer(logger *slog.Logger) *LoggingQueryTracer {
	return &LoggingQueryTracer{logger: logger, slow: DefaultSlowQuery}
}

// WithSlowThreshold returns a copy that warns at d. Zero disables warnings.
func (l *LoggingQueryTracer) WithSlowThreshold(d time.Duration) *LoggingQueryTracer {
	cp := *l
	cp.slow = d
	return &cp
}

var collapseSpace = regexp.MustCompile(`\s+`)

// compactSQL folds a multi-line statement onto one line.
func compactSQL(sql string) string {
	s := collapseSpace.ReplaceAllString(sql, " ")
	s = strings.ReplaceAll(s, "( ", "(")
	s = strings.ReplaceAll(s, " )", ")")
	return strings.TrimSpace(s)
}

func (l *LoggingQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	sql := compactSQL(data.SQL)
	l.logger.DebugContext(ctx, "query start", slog.String("sql", sql), slog.Int("args", len(data.Args)))
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: sql, at: time.Now()})
}

func (l *LoggingQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	start, _ := ctx.Value(queryStartKey{}).(queryStart)

	var took time.Duration
	if !start.at.IsZero() {
		took = time.Since(start.at)
	}

	attrs := []any{
		slog.String("command_tag", data.CommandTag.String()),
		slog.Duration("took", took),
	}

	switch {
	case data.Err != nil:
		l.logger.ErrorContext(ctx, "query failed", append(attrs, slog.String("sql", start.sql), slog.String("error", data.Err.Error()))...)
	case l.slow > 0 && took >= l.slow:
		l.logger.WarnContext(ctx, "slow query", append(attrs, slog.String("sql", start.sql))...)
	default:
		l.logger.DebugContext(ctx, "query end", attrs...)
	}
}
