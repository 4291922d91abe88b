package metrics

import (
	"context"
	"testing"
)

func TestCountersRequireContext(t *testing.T) {
	if got := AddRequests(context.Background()); got != 0 {
		t.Errorf("AddRequests without Set = %d, want 0", got)
	}

	ctx := Set(context.Background())
	before := AddRequests(ctx)
	after := AddRequests(ctx)
	if after != before+1 {
		t.Errorf("requests went %d -> %d", before, after)
	}

	if AddGoroutines(ctx) < 1 {
		t.Error("goroutines should be at least 1")
	}
}
