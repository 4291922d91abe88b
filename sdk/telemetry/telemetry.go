// Package telemetry provides support for initializing the telemetry system.
package telemetry

import (
	"context"
	"time"

	"github.com/jrazmi/dashboard/sdk/cryptids"
)

type telKey int

const (
	traceValuesKey telKey = iota + 1
)

// NoTrace is reported when a context carries no trace values.
const NoTrace = "--------NOTRACE--------"

// TraceValues is the per-request state shared by the web layer and middleware.
type TraceValues struct {
	TraceID    string
	Now        time.Time
	StatusCode int
}

type Telemetry struct {
	now func() time.Time
}

// Creates a new telemetry instance
func NewTelemetry() Telemetry {
	return Telemetry{now: time.Now}
}

// SetTraceID stores a fresh set of trace values in the context.
func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	now := time.Now
	if t.now != nil {
		now = t.now
	}
	tid, err := cryptids.GenerateID()
	if err != nil {
		tid = NoTrace
	}
	return context.WithValue(ctx, traceValuesKey, &TraceValues{
		TraceID: tid,
		Now:     now().UTC(),
	})
}

func (t Telemetry) GetTraceID(ctx context.Context) string {
	return GetTraceID(ctx)
}

// GetTraceID returns the trace id stored in the context.
func GetTraceID(ctx context.Context) string {
	v, ok := ctx.Value(traceValuesKey).(*TraceValues)
	if !ok {
		return NoTrace
	}
	return v.TraceID
}

// GetValues returns the trace values stored in the context. A context with
// no values yields a zero TraceValues carrying NoTrace.
func GetValues(ctx context.Context) *TraceValues {
	v, ok := ctx.Value(traceValuesKey).(*TraceValues)
	if !ok {
		return &TraceValues{TraceID: NoTrace, Now: time.Now().UTC()}
	}
	return v
}

// SetStatusCode records the response status on the request's trace values.
func SetStatusCode(ctx context.Context, statusCode int) {
	if v, ok := ctx.Value(traceValuesKey).(*TraceValues); ok {
		v.StatusCode = statusCode
	}
}
