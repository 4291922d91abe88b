// Package settings persists the dashboard display preferences and turns
// them into a presentation config for a rendering layer.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jrazmi/dashboard/sdk/logger"
	"github.com/jrazmi/dashboard/sdk/validation"
)

// Font sizes.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

// Languages.
const (
	LangEnglish = "en"
	LangGreek   = "el"
)

var (
	FontSizes = []string{FontSmall, FontMedium, FontLarge}
	Languages = []string{LangEnglish, LangGreek}
)

// Settings are the user's display preferences.
type Settings struct {
	DarkMode bool   `json:"darkMode"`
	FontSize string `json:"fontSize"`
	Language string `json:"language"`
}

// Default returns the settings used when nothing valid is stored.
func Default() Settings {
	return Settings{
		DarkMode: false,
		FontSize: FontMedium,
		Language: LangEnglish,
	}
}

// Validate checks the enumerated fields.
func (s Settings) Validate() error {
	var errs validation.Errors
	errs.OneOf("fontSize", s.FontSize, FontSizes)
	errs.OneOf("language", s.Language, Languages)
	return errs.Err()
}

// normalize replaces each invalid field with its default.
func (s Settings) normalize() Settings {
	def := Default()
	if !slices.Contains(FontSizes, s.FontSize) {
		s.FontSize = def.FontSize
	}
	if !slices.Contains(Languages, s.Language) {
		s.Language = def.Language
	}
	return s
}

// Store reads and writes settings as a JSON file.
type Store struct {
	log  *logger.Logger
	path string
}

// NewStore returns a Store for the file at path.
func NewStore(log *logger.Logger, path string) *Store {
	return &Store{
		log:  log,
		path: path,
	}
}

// Load returns the stored settings. A missing, unreadable or corrupt file
// is logged and yields Default. Invalid fields fall back one by one.
func (s *Store) Load(ctx context.Context) Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.WarnContext(ctx, "settings unreadable, using defaults", "path", s.path, "error", err)
		}
		return Default()
	}

	stored := Default()
	if err := json.Unmarshal(data, &stored); err != nil {
		s.log.WarnContext(ctx, "settings corrupt, using defaults", "path", s.path, "error", err)
		return Default()
	}

	return stored.normalize()
}

// Save validates and writes the settings, replacing the file atomically.
func (s *Store) Save(ctx context.Context, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings saved", "path", s.path)
	return nil
}
