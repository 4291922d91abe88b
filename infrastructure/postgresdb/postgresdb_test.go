package postgresdb

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "created_at", want: `"created_at"`},
		{in: "public.tasks", want: `"public"."tasks"`},
		{in: "a.b.c", wantErr: true},
		{in: "date; DROP TABLE tasks", wantErr: true},
		{in: "1abc", wantErr: true},
	}

	for _, tt := range tests {
		got, err := QuoteIdentifier(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestAddOrderByClause(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("SELECT * FROM expenses")

	if err := AddOrderByClause(&buf, "date", "expense_id", "desc"); err != nil {
		t.Fatal(err)
	}

	want := `SELECT * FROM expenses ORDER BY "date" DESC, "expense_id" DESC`
	if buf.String() != want {
		t.Errorf("got %s", buf.String())
	}

	if err := AddOrderByClause(&buf, "date", "expense_id", "sideways"); err == nil {
		t.Error("expected direction error")
	}
}

func TestAddWhere(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("SELECT * FROM expenses")
	AddWhere(&buf, "category = @category")
	AddWhere(&buf, "description ILIKE @search")

	want := "SELECT * FROM expenses WHERE category = @category AND description ILIKE @search"
	if buf.String() != want {
		t.Errorf("got %s", buf.String())
	}

	args := pgx.NamedArgs{}
	AddLimitClause(10, args, &buf)
	if args["limit"] != 10 {
		t.Errorf("limit arg = %v", args["limit"])
	}
}

func TestLikePattern(t *testing.T) {
	if got := LikePattern("50%_off"); got != `%50\%\_off%` {
		t.Errorf("got %s", got)
	}
}

func TestHandlePgError(t *testing.T) {
	if !errors.Is(HandlePgError(pgx.ErrNoRows), ErrDBNotFound) {
		t.Error("no rows should map to ErrDBNotFound")
	}
	if !errors.Is(HandlePgError(&pgconn.PgError{Code: "23505"}), ErrDBDuplicatedEntry) {
		t.Error("unique violation should map to ErrDBDuplicatedEntry")
	}
	if HandlePgError(nil) != nil {
		t.Error("nil should stay nil")
	}
}

func TestCompactSQL(t *testing.T) {
	in := "SELECT id,\n\t\ttitle\n\tFROM tasks\n\tWHERE id IN ( @a, @b )\n"
	want := "SELECT id, title FROM tasks WHERE id IN (@a, @b)"
	if got := compactSQL(in); got != want {
		t.Errorf("compactSQL = %q, want %q", got, want)
	}
}

func TestLoggingQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tracer := NewLoggingQueryTracer(log).WithSlowThreshold(time.Nanosecond)
	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	time.Sleep(time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})

	if !strings.Contains(buf.String(), "slow query") || !strings.Contains(buf.String(), "SELECT 1") {
		t.Errorf("want slow query warning, got %q", buf.String())
	}

	buf.Reset()
	tracer = tracer.WithSlowThreshold(0)
	ctx = tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 2"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("boom")})

	if !strings.Contains(buf.String(), "query failed") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("want failure logged, got %q", buf.String())
	}
}
