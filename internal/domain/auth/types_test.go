package auth

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Fatalf("did not expect expired")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Fatalf("expected expired at expiry instant")
	}
}

func TestSession_PublicOmitsToken(t *testing.T) {
	s := Session{ID: "sid", UserID: 7, Username: "ada", Email: "ada@example.com", Token: "secret"}
	p := s.Public()
	if p.UserID != 7 || p.Username != "ada" || p.Email != "ada@example.com" {
		t.Fatalf("unexpected public view: %+v", p)
	}
}
