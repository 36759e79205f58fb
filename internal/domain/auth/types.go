// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Session is the server-side record we persist for an authenticated reader.
// ID is an opaque session identifier carried by the browser cookie.
// Its presence in the store is the session marker the route guard consumes.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired returns true if the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

// Public is the session view safe to hand to the browser.
type Public struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

// Public strips the backend token.
func (s Session) Public() Public {
	return Public{UserID: s.UserID, Username: s.Username, Email: s.Email, Avatar: s.Avatar}
}
