// app/tooling/commands/calendarauth.go
package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jrazmi/dashboard/infrastructure/googlecalendar"
	"golang.org/x/oauth2"
)

// Exchanger trades an authorization code for a token.
type Exchanger interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

// CalendarAuth runs the one-time OAuth consent flow and stores the token
// the server's calendar sync reads. The user opens the printed URL and
// pastes the returned code into in.
func CalendarAuth(ctx context.Context, log *slog.Logger, args []string, prefix string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("calendar-auth", flag.ContinueOnError)
	fs.SetOutput(out)
	force := fs.Bool("force", false, "replace an existing token")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ErrHelp
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg, err := googlecalendar.LoadOptions(prefix)
	if err != nil {
		return err
	}

	if !*force {
		if _, err := googlecalendar.LoadToken(cfg.TokenFile); err == nil {
			log.InfoContext(ctx, "calendar-auth", "status", "token already stored", "path", cfg.TokenFile)
			return nil
		}
	}

	oauthCfg, err := googlecalendar.OAuthConfig(cfg.CredentialsFile)
	if err != nil {
		return err
	}

	tok, err := authorize(ctx, oauthCfg, in, out)
	if err != nil {
		return err
	}

	if err := googlecalendar.SaveToken(cfg.TokenFile, tok); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	log.InfoContext(ctx, "calendar-auth", "status", "token stored", "path", cfg.TokenFile)
	return nil
}

func authorize(ctx context.Context, ex Exchanger, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	authURL := ex.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Fprintf(out, "Authorize calendar access by visiting this URL:\n%s\n\nEnter the authorization code: ", authURL)

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("no authorization code entered")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tok, err := ex.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}
