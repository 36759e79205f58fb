package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/bookshelf-web/internal/domain/theme"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/ports"
)

// ThemeServiceOptions groups dependencies for ThemeService.
type ThemeServiceOptions struct {
	Preferences ports.PreferenceStore
	Logger      *slog.Logger
}

// ThemeService reads and writes the reader's color-scheme preference.
type ThemeService struct {
	prefs  ports.PreferenceStore
	logger *slog.Logger
}

// NewThemeService constructs a new ThemeService.
func NewThemeService(opts ThemeServiceOptions) *ThemeService {
	if opts.Preferences == nil {
		panic("PreferenceStore is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ThemeService{prefs: opts.Preferences, logger: logger}
}

// Get returns the stored theme for owner. Anything that prevents reading it
// yields System, so a page always renders.
func (s *ThemeService) Get(ctx context.Context, owner string) theme.Theme {
	if owner == "" {
		return theme.System
	}
	t, _, err := s.prefs.GetTheme(ctx, owner)
	if err != nil {
		s.logger.WarnContext(ctx, "read theme preference", "owner", owner, "error", err)
		return theme.System
	}
	return t
}

// Set stores raw as owner's theme. raw must name a known theme.
func (s *ThemeService) Set(ctx context.Context, owner, raw string) (theme.Theme, error) {
	if owner == "" {
		return "", apperrors.Validation("preference owner is required")
	}
	t := theme.Theme(raw)
	if !t.Valid() {
		return "", apperrors.ValidationField("theme", fmt.Sprintf("theme must be one of %s, %s, %s", theme.System, theme.Light, theme.Dark))
	}
	if err := s.prefs.SetTheme(ctx, owner, t); err != nil {
		return "", fmt.Errorf("save theme: %w", err)
	}
	return t, nil
}

// Watch streams theme changes for owner until ctx is done.
func (s *ThemeService) Watch(ctx context.Context, owner string) (<-chan theme.Theme, error) {
	if owner == "" {
		return nil, apperrors.Validation("preference owner is required")
	}
	ch, err := s.prefs.WatchTheme(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("watch theme: %w", err)
	}
	return ch, nil
}
