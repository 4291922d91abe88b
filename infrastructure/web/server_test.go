package web

import (
	"net/http"
	"testing"
	"time"
)

func TestNewServerPort(t *testing.T) {
	tests := []struct {
		port string
		want string
	}{
		{port: "5000", want: ":5000"},
		{port: ":8080", want: ":8080"},
		{port: "127.0.0.1:9000", want: "127.0.0.1:9000"},
	}

	for _, tt := range tests {
		srv := NewServer(ServerConfig{Port: tt.port})
		if srv.Addr != tt.want {
			t.Errorf("port %q: Addr = %q, want %q", tt.port, srv.Addr, tt.want)
		}
	}
}

func TestNewServerOptions(t *testing.T) {
	h := http.NewServeMux()
	srv := NewServer(ServerConfig{Port: ":1", ReadTimeout: time.Second, ShutdownTimeout: 3 * time.Second},
		WithHandler(h),
		WithPort("2"),
	)

	if srv.Addr != ":2" {
		t.Errorf("Addr = %q", srv.Addr)
	}
	if srv.Handler != h {
		t.Error("handler not set")
	}
	if srv.ReadTimeout != time.Second || srv.Config.ShutdownTimeout != 3*time.Second {
		t.Errorf("timeouts = %v / %v", srv.ReadTimeout, srv.Config.ShutdownTimeout)
	}
}
