package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/dashboard/infrastructure/web"
)

func tag(name string, order *[]string) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			*order = append(*order, name)
			return next(ctx, r)
		}
	}
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(tag("global", &order)))

	api := wh.Group("/api", tag("group", &order))
	api.GET("/items/{id}", func(ctx context.Context, r *http.Request) web.Encoder {
		order = append(order, "handler:"+web.Param(r, "id"))
		return web.NewJSONResponse(map[string]string{"ok": "yes"})
	}, tag("route", &order))

	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := "global,group,route,handler:7"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}
}

func TestCORSPreflight(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{CORSOrigins: []string{"http://localhost:3000"}})
	wh.HandleNotFound(func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewErrorWithStatus("Route not found", http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	wh.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow origin %q", got)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Route not found"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDecodeValidation(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	var v map[string]any
	if err := web.Decode(req, &v); err != web.ErrEmptyBody {
		t.Errorf("empty body err = %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	if err := web.Decode(req, &v); err == nil {
		t.Error("want decode error")
	}
}
