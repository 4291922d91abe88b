// Package insights asks a text-completion model for a productivity summary
// and parses its reply into a fixed structure.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// MaxRecommendations caps the recommendations list.
const MaxRecommendations = 3

var (
	// ErrIntegrationFailure is returned when the completion service cannot
	// be reached or returns an error.
	ErrIntegrationFailure = errors.New("insight service unavailable")

	// ErrInvalidResponseFormat is returned when the reply is not the
	// expected JSON object.
	ErrInvalidResponseFormat = errors.New("insight response is not in the expected format")
)

// Completer sends a prompt to a text-completion model and returns its text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Insight is the parsed model reply.
type Insight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	SpendingInsight string   `json:"spendingInsight"`
}

// Service generates insights from the current records.
type Service struct {
	log       *logger.Logger
	completer Completer
}

// NewService returns a Service. A nil completer makes every Generate call
// fail with ErrIntegrationFailure.
func NewService(log *logger.Logger, completer Completer) *Service {
	return &Service{
		log:       log,
		completer: completer,
	}
}

// Generate builds the prompt, calls the completer once and parses the reply.
// The raw reply is logged on a parse failure and never returned.
func (s *Service) Generate(ctx context.Context, tasks []tasksrepo.Task, expenses []expensesrepo.Expense) (Insight, error) {
	if s.completer == nil {
		return Insight{}, fmt.Errorf("%w: no completer configured", ErrIntegrationFailure)
	}

	prompt, err := BuildPrompt(tasks, expenses)
	if err != nil {
		return Insight{}, fmt.Errorf("build prompt: %w", err)
	}

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return Insight{}, fmt.Errorf("%w: %w", ErrIntegrationFailure, err)
	}

	insight, err := Parse(raw)
	if err != nil {
		s.log.ErrorContext(ctx, "insight response rejected", "error", err, "raw", raw)
		return Insight{}, err
	}

	return insight, nil
}

// StripFences removes a surrounding Markdown code fence, with or without a
// language tag, and returns the trimmed inner text. Text without a fence is
// returned trimmed.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	body := strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}

	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

// Parse strictly decodes a model reply. The reply must be exactly one JSON
// object with only the known fields, a non-empty summary and at most
// MaxRecommendations recommendations. Every failure wraps
// ErrInvalidResponseFormat.
func Parse(raw string) (Insight, error) {
	body := StripFences(raw)

	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.DisallowUnknownFields()

	var insight Insight
	if err := dec.Decode(&insight); err != nil {
		return Insight{}, fmt.Errorf("%w: %w", ErrInvalidResponseFormat, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Insight{}, fmt.Errorf("%w: trailing data after object", ErrInvalidResponseFormat)
	}

	if strings.TrimSpace(insight.Summary) == "" {
		return Insight{}, fmt.Errorf("%w: missing summary", ErrInvalidResponseFormat)
	}
	if len(insight.Recommendations) > MaxRecommendations {
		return Insight{}, fmt.Errorf("%w: %d recommendations", ErrInvalidResponseFormat, len(insight.Recommendations))
	}
	if insight.Recommendations == nil {
		insight.Recommendations = []string{}
	}

	return insight, nil
}
