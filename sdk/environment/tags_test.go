package environment_test

import (
	"testing"
	"time"

	"github.com/jrazmi/dashboard/sdk/environment"
	"github.com/shopspring/decimal"
)

type testOptions struct {
	Port     string          `env:"PORT" default:":8080"`
	Timeout  time.Duration   `env:"TIMEOUT" default:"5s"`
	Budget   decimal.Decimal `env:"BUDGET" default:"5000"`
	Ratio    float64         `env:"RATIO" default:"0.5"`
	Debug    bool            `env:"DEBUG" default:"false"`
	Origins  []string        `env:"ORIGINS" separator:","`
	MaxConns int             `env:"MAX_CONNS" default:"25"`
	ignored  string
}

func TestParseEnvTagsDefaults(t *testing.T) {
	var opts testOptions
	if err := environment.ParseEnvTags("ENVTEST", &opts); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Port != ":8080" {
		t.Fatalf("expected default port, got %q", opts.Port)
	}
	if opts.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", opts.Timeout)
	}
	if !opts.Budget.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected budget 5000, got %s", opts.Budget)
	}
	if opts.Ratio != 0.5 {
		t.Fatalf("expected ratio 0.5, got %v", opts.Ratio)
	}
	if opts.Origins != nil {
		t.Fatalf("expected nil origins, got %v", opts.Origins)
	}
	if opts.MaxConns != 25 {
		t.Fatalf("expected 25 max conns, got %d", opts.MaxConns)
	}
}

func TestParseEnvTagsFromEnvironment(t *testing.T) {
	t.Setenv("ENVTEST_PORT", ":9090")
	t.Setenv("ENVTEST_BUDGET", "1234.50")
	t.Setenv("ENVTEST_DEBUG", "true")
	t.Setenv("ENVTEST_ORIGINS", "http://a.test, http://b.test,")

	var opts testOptions
	if err := environment.ParseEnvTags("ENVTEST", &opts); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Port != ":9090" {
		t.Fatalf("expected :9090, got %q", opts.Port)
	}
	if !opts.Budget.Equal(decimal.RequireFromString("1234.5")) {
		t.Fatalf("expected budget 1234.5, got %s", opts.Budget)
	}
	if !opts.Debug {
		t.Fatalf("expected debug true")
	}
	if len(opts.Origins) != 2 || opts.Origins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", opts.Origins)
	}
}

func TestParseEnvTagsRequired(t *testing.T) {
	var opts struct {
		Key string `env:"API_KEY" required:"true"`
	}
	if err := environment.ParseEnvTags("ENVTEST_MISSING", &opts); err == nil {
		t.Fatalf("expected error for missing required variable")
	}
}

func TestParseEnvTagsRejectsNonPointer(t *testing.T) {
	if err := environment.ParseEnvTags("", testOptions{}); err == nil {
		t.Fatalf("expected error for non-pointer config")
	}
}
