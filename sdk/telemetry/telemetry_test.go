package telemetry_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrazmi/dashboard/sdk/telemetry"
)

func TestSetTraceID(t *testing.T) {
	tel := telemetry.NewTelemetry()

	if got := tel.GetTraceID(context.Background()); got != telemetry.NoTrace {
		t.Fatalf("expected %q for empty context, got %q", telemetry.NoTrace, got)
	}

	ctx := tel.SetTraceID(context.Background())
	tid := tel.GetTraceID(ctx)
	if tid == "" || tid == telemetry.NoTrace {
		t.Fatalf("expected generated trace id, got %q", tid)
	}

	other := tel.GetTraceID(tel.SetTraceID(context.Background()))
	if other == tid {
		t.Fatalf("expected distinct trace ids, both were %q", tid)
	}
}

func TestSetStatusCode(t *testing.T) {
	ctx := telemetry.NewTelemetry().SetTraceID(context.Background())
	telemetry.SetStatusCode(ctx, http.StatusCreated)

	if got := telemetry.GetValues(ctx).StatusCode; got != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, got)
	}
}
