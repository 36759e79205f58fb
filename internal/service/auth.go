package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/target/bookshelf-web/internal/client"
	domainauth "github.com/target/bookshelf-web/internal/domain/auth"
	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/route"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/ports"
	"github.com/target/bookshelf-web/internal/validation"
)

// DefaultSessionTTL is used when AuthConfig.TTL is unset.
const DefaultSessionTTL = 24 * time.Hour

// AuthConfig tunes session lifetime.
type AuthConfig struct {
	TTL    time.Duration
	Now    func() time.Time
	Logger *slog.Logger
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Backend  ports.AuthBackend
	Sessions ports.SessionStore
	Config   AuthConfig
}

// AuthService signs readers in against the backend and keeps the resulting
// session, with its backend token, server-side.
type AuthService struct {
	backend  ports.AuthBackend
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

var errSessionExpired = apperrors.Unauthorized("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Backend == nil {
		panic("AuthBackend is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}

	s := &AuthService{
		backend:  opts.Backend,
		sessions: opts.Sessions,
		ttl:      opts.Config.TTL,
		now:      opts.Config.Now,
		logger:   opts.Config.Logger,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultSessionTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// LoginPassword signs in with email and password.
func (s *AuthService) LoginPassword(ctx context.Context, form model.LoginForm) (*domainauth.Session, error) {
	if err := validation.LoginForm(form).Err(); err != nil {
		return nil, err
	}
	tok, err := s.backend.LoginPassword(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("login: %w", rejectedAs(err, apperrors.ErrCodeUnauthorized))
	}
	return s.startSession(ctx, tok)
}

// LoginCode signs in with an emailed verification code.
func (s *AuthService) LoginCode(ctx context.Context, form model.CodeLoginForm) (*domainauth.Session, error) {
	if err := validation.CodeLoginForm(form).Err(); err != nil {
		return nil, err
	}
	tok, err := s.backend.LoginCode(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("code login: %w", rejectedAs(err, apperrors.ErrCodeUnauthorized))
	}
	return s.startSession(ctx, tok)
}

// SendCode asks the backend to email a verification code.
func (s *AuthService) SendCode(ctx context.Context, email string) error {
	if err := validation.Field("email", email, validation.Email).Err(); err != nil {
		return err
	}
	if err := s.backend.SendEmailCode(ctx, email); err != nil {
		return fmt.Errorf("send code: %w", rejectedAs(err, apperrors.ErrCodeValidation))
	}
	return nil
}

// Register creates an account and signs it in. confirm must repeat the password.
func (s *AuthService) Register(ctx context.Context, form model.RegisterForm, confirm string) (*domainauth.Session, error) {
	if err := validation.RegisterForm(form, confirm).Err(); err != nil {
		return nil, err
	}
	tok, err := s.backend.Register(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("register: %w", rejectedAs(err, apperrors.ErrCodeConflict))
	}
	return s.startSession(ctx, tok)
}

func (s *AuthService) startSession(ctx context.Context, tok model.LoginToken) (*domainauth.Session, error) {
	if tok.Token == "" {
		return nil, apperrors.Upstream("backend returned an empty token")
	}
	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    tok.ID,
		Username:  tok.Username,
		Email:     tok.Email,
		Avatar:    tok.Avatar,
		Token:     tok.Token,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.logger.InfoContext(ctx, "reader signed in", "user_id", session.UserID)
	return &session, nil
}

// GetSession retrieves a live session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.NewString()
}

// rejectedAs turns a backend business rejection into an AppError with code,
// keeping the backend's message. Other errors pass through.
func rejectedAs(err error, code apperrors.ErrorCode) error {
	apiErr, ok := client.AsAPIError(err)
	if !ok {
		return err
	}
	return apperrors.Wrap(err, code, apiErr.Message)
}

type sessionIDKey struct{}

// ContextWithSessionID returns a context carrying the browser's session id.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session id set by ContextWithSessionID.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// SessionAuthState answers the route guard from the session id in the context.
// A missing, unknown or expired session is unauthenticated; store failures are
// returned so the guard can fail closed and log them.
type SessionAuthState struct {
	Auth *AuthService
}

var _ route.AuthState = SessionAuthState{}

// IsAuthenticated implements route.AuthState.
func (a SessionAuthState) IsAuthenticated(ctx context.Context) (bool, error) {
	id := SessionIDFromContext(ctx)
	if id == "" {
		return false, nil
	}
	_, err := a.Auth.GetSession(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case apperrors.IsNotFound(err), apperrors.IsUnauthorized(err):
		return false, nil
	default:
		return false, err
	}
}

// WithSession returns a context whose backend calls carry the session's token.
func WithSession(ctx context.Context, sess *domainauth.Session) context.Context {
	if sess == nil {
		return ctx
	}
	return client.WithToken(ctx, sess.Token)
}
