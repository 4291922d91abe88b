// Package settingsbridge serves the display settings and their applied
// presentation.
package settingsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/core/settings"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/jrazmi/dashboard/sdk/validation"
)

// Config holds configuration for the settings bridge.
type Config struct {
	Log        *logger.Logger
	Store      *settings.Store
	Middleware []web.Middleware
}

type bridge struct {
	store *settings.Store
}

// AddHttpRoutes registers the settings routes.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{store: cfg.Store}

	group.GET("/settings", b.httpGet, cfg.Middleware...)
	group.PUT("/settings", b.httpPut, cfg.Middleware...)
}

// Response carries the stored settings and what a renderer should apply.
type Response struct {
	Success      bool                  `json:"success"`
	Data         settings.Settings     `json:"data"`
	Presentation settings.Presentation `json:"presentation"`
}

func (r Response) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json; charset=utf-8", err
}

func newResponse(s settings.Settings) Response {
	return Response{Success: true, Data: s, Presentation: s.Apply()}
}

func (b *bridge) httpGet(ctx context.Context, r *http.Request) web.Encoder {
	return newResponse(b.store.Load(ctx))
}

func (b *bridge) httpPut(ctx context.Context, r *http.Request) web.Encoder {
	// Absent fields keep their stored values.
	input := b.store.Load(ctx)
	if err := web.Decode(r, &input); err != nil {
		return errs.Wrap(errs.InvalidArgument, err, "Invalid settings")
	}

	if err := b.store.Save(ctx, input); err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return errs.Wrap(errs.InvalidArgument, err, "Validation failed")
		}
		return errs.Wrap(errs.Internal, err, "Failed to save settings")
	}
	return newResponse(input)
}
