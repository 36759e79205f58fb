package httpx

import (
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/target/bookshelf-web/internal/domain/auth"
	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/service"
	"github.com/target/bookshelf-web/internal/validation"
)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          *service.AuthService
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginResponse struct {
	User       domainauth.Public `json:"user"`
	ExpiresAt  time.Time         `json:"expires_at"`
	RedirectTo string            `json:"redirect_to"`
}

// Login signs in with email and password.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var form model.LoginForm
	if !DecodeJSON(w, r, &form) {
		return
	}
	if res := validation.LoginForm(form); !res.OK() {
		WriteValidation(w, res)
		return
	}
	session, err := h.Svc.LoginPassword(r.Context(), form)
	h.finishLogin(w, r, session, err)
}

// LoginCode signs in with an emailed verification code.
// POST /api/auth/login/code.
func (h *AuthHandlers) LoginCode(w http.ResponseWriter, r *http.Request) {
	var form model.CodeLoginForm
	if !DecodeJSON(w, r, &form) {
		return
	}
	if res := validation.CodeLoginForm(form); !res.OK() {
		WriteValidation(w, res)
		return
	}
	session, err := h.Svc.LoginCode(r.Context(), form)
	h.finishLogin(w, r, session, err)
}

type sendCodeRequest struct {
	Email string `json:"email"`
}

// SendCode emails a verification code.
// POST /api/auth/code.
func (h *AuthHandlers) SendCode(w http.ResponseWriter, r *http.Request) {
	var req sendCodeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := h.Svc.SendCode(r.Context(), req.Email); err != nil {
		WriteAppError(w, r, h.logger(), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type registerRequest struct {
	model.RegisterForm
	ConfirmPassword string `json:"confirm_password"`
}

// Register creates an account and signs it in.
// POST /api/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if res := validation.RegisterForm(req.RegisterForm, req.ConfirmPassword); !res.OK() {
		WriteValidation(w, res)
		return
	}
	session, err := h.Svc.Register(r.Context(), req.RegisterForm, req.ConfirmPassword)
	h.finishLogin(w, r, session, err)
}

func (h *AuthHandlers) finishLogin(w http.ResponseWriter, r *http.Request, session *domainauth.Session, err error) {
	if err != nil {
		WriteAppError(w, r, h.logger(), err)
		return
	}
	h.setSessionCookie(w, r, *session)
	WriteJSON(w, http.StatusOK, loginResponse{
		User:       session.Public(),
		ExpiresAt:  session.ExpiresAt,
		RedirectTo: safeRedirectPath(r.URL.Query().Get("redirect_uri")),
	})
}

// Logout handles the logout endpoint.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}
	clearCookie(w, r, h.CookieDomain, SessionCookieName)

	if IsHTMX(r) {
		SetHXRedirect(w, "/login")
	}
	w.WriteHeader(http.StatusNoContent)
}

// Status returns the current authentication status.
// GET /api/session.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          session.Public(),
		"expires_at":    session.ExpiresAt,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}
