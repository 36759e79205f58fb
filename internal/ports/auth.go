package ports

// Package ports defines interfaces (hexagonal ports) for session and preference storage.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/target/bookshelf-web/internal/domain/auth"
	"github.com/target/bookshelf-web/internal/domain/theme"
)

// SessionStore persists and retrieves reader sessions.
// The presence of a live session is the session marker consulted by the route guard.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// PreferenceStore persists per-owner display preferences.
// Owner is a user id for signed-in readers or an anonymous device id.
type PreferenceStore interface {
	// GetTheme returns the stored theme and whether one was stored.
	GetTheme(ctx context.Context, owner string) (theme.Theme, bool, error)
	SetTheme(ctx context.Context, owner string, t theme.Theme) error
	// WatchTheme streams theme changes for owner until ctx is done.
	WatchTheme(ctx context.Context, owner string) (<-chan theme.Theme, error)
}
