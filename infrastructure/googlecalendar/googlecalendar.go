// Package googlecalendar connects calendar sync to Google Calendar using a
// stored OAuth token.
package googlecalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrazmi/dashboard/core/calendarsync"
	"github.com/jrazmi/dashboard/sdk/environment"
	"github.com/jrazmi/dashboard/sdk/logger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrInvalidToken is returned when the token file exists but cannot be used.
var ErrInvalidToken = errors.New("invalid stored token")

// Scopes requested during authorization.
var Scopes = []string{calendar.CalendarEventsScope}

// Options represents the exportable calendar configuration.
type Options struct {
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" default:"credentials.json"`
	TokenFile       string `env:"GOOGLE_TOKEN_FILE" default:"token.json"`
	CalendarID      string `env:"GOOGLE_CALENDAR_ID" default:"primary"`
}

// LoadOptions reads Options from the environment.
func LoadOptions(prefix string) (Options, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return Options{}, fmt.Errorf("parsing google calendar config: %w", err)
	}
	return cfg, nil
}

// OAuthConfig builds the OAuth client config from the downloaded
// credentials file.
func OAuthConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read client credentials %s: %w", credentialsFile, err)
	}
	cfg, err := google.ConfigFromJSON(b, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse client credentials: %w", err)
	}
	return cfg, nil
}

// LoadToken reads a token file. A missing file is os.ErrNotExist and an
// unreadable one is ErrInvalidToken.
func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidToken, path, err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: %s holds no token", ErrInvalidToken, path)
	}
	return tok, nil
}

// SaveToken writes tok to path, readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	return nil
}

// Connector opens calendar writers from the stored token. It never starts
// an authorization flow.
type Connector struct {
	log *logger.Logger
	cfg Options
}

// NewConnector returns a Connector for cfg.
func NewConnector(log *logger.Logger, cfg Options) *Connector {
	return &Connector{log: log, cfg: cfg}
}

// Connect implements calendarsync.Connector.
func (c *Connector) Connect(ctx context.Context) (calendarsync.EventWriter, error) {
	tok, err := LoadToken(c.cfg.TokenFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, calendarsync.ErrMissingCredential
		}
		if errors.Is(err, ErrInvalidToken) {
			return nil, fmt.Errorf("%w: %w", calendarsync.ErrMissingCredential, err)
		}
		return nil, err
	}

	oauthCfg, err := OAuthConfig(c.cfg.CredentialsFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", calendarsync.ErrMissingCredential, err)
		}
		return nil, err
	}

	ts := &savingTokenSource{
		log:  c.log,
		src:  oauthCfg.TokenSource(context.WithoutCancel(ctx), tok),
		path: c.cfg.TokenFile,
		last: tok.AccessToken,
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(tok, ts)))
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}

	return NewWriter(srv, c.cfg.CalendarID), nil
}

// savingTokenSource rewrites the token file after a refresh.
type savingTokenSource struct {
	log  *logger.Logger
	src  oauth2.TokenSource
	path string

	mu   sync.Mutex
	last string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if err := SaveToken(s.path, tok); err != nil {
			s.log.Error("save refreshed calendar token", "path", s.path, "error", err)
		}
	}
	return tok, nil
}
