// Package gemini implements a text completer on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jrazmi/dashboard/sdk/environment"
	"google.golang.org/genai"
)

// ErrNoAPIKey is returned when no API key is configured.
var ErrNoAPIKey = errors.New("gemini api key not configured")

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("gemini returned no text")

// Options represents the exportable client configuration.
type Options struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" default:"60s"`
}

type options struct {
	apiKey   string
	model    string
	timeout  time.Duration
	endpoint string
}

// Option configures the client.
type Option func(*options)

// WithAPIKey overrides the API key.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithEndpoint points the client at a different base URL.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// Client calls GenerateContent on one model.
type Client struct {
	models  *genai.Models
	model   string
	timeout time.Duration
}

// NewFromEnv builds a client from environment variables.
func NewFromEnv(ctx context.Context, prefix string, opts ...Option) (*Client, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing gemini config: %w", err)
	}
	return NewClient(ctx, cfg, opts...)
}

// NewClient builds a client from cfg.
func NewClient(ctx context.Context, cfg Options, opts ...Option) (*Client, error) {
	o := &options{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if o.model == "" {
		o.model = "gemini-2.5-flash"
	}

	cc := &genai.ClientConfig{
		APIKey:  o.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if o.endpoint != "" {
		cc.HTTPOptions.BaseURL = o.endpoint
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Client{
		models:  client.Models,
		model:   o.model,
		timeout: o.timeout,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt as a single user turn and returns the text of the
// first candidate.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
