package auth

// Package auth contains simple hand-written test doubles for session and preference ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/target/bookshelf-web/internal/domain/auth"
	"github.com/target/bookshelf-web/internal/domain/theme"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore    = (*MemorySessionStore)(nil)
	_ ports.PreferenceStore = (*MemoryPreferenceStore)(nil)
)

// ErrNotFound is returned by mocks when an entity is not present.
var ErrNotFound error = apperrors.NotFound("not found")

// MemorySessionStore is an in-memory session store for unit tests.
// Expiry is left to the caller, as with a store whose TTL has not fired yet.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	// GetErr, when set, is returned by every Get.
	GetErr error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if m.GetErr != nil {
		return domainauth.Session{}, m.GetErr
	}
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// MemoryPreferenceStore is an in-memory preference store that fans theme
// changes out to watchers.
type MemoryPreferenceStore struct {
	mu       sync.Mutex
	themes   map[string]theme.Theme
	watchers map[string][]chan theme.Theme

	// Err, when set, is returned by every call.
	Err error
}

// NewMemoryPreferenceStore creates a new in-memory preference store.
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{
		themes:   make(map[string]theme.Theme),
		watchers: make(map[string][]chan theme.Theme),
	}
}

func (m *MemoryPreferenceStore) GetTheme(_ context.Context, owner string) (theme.Theme, bool, error) {
	if m.Err != nil {
		return theme.System, false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.themes[owner]
	if !ok {
		return theme.System, false, nil
	}
	return t, true, nil
}

func (m *MemoryPreferenceStore) SetTheme(_ context.Context, owner string, t theme.Theme) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes[owner] = t
	for _, ch := range m.watchers[owner] {
		select {
		case ch <- t:
		default:
		}
	}
	return nil
}

func (m *MemoryPreferenceStore) WatchTheme(ctx context.Context, owner string) (<-chan theme.Theme, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ch := make(chan theme.Theme, 4)
	m.mu.Lock()
	m.watchers[owner] = append(m.watchers[owner], ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		list := m.watchers[owner]
		for i, c := range list {
			if c == ch {
				m.watchers[owner] = append(list[:i], list[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
