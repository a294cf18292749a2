package domain

import "time"

// Session is the server-side record behind a session cookie. The token is an
// opaque secret; UserID is a weak reference (lookup only). Username and Role
// are captured at login time and read on every request without re-resolving
// the user.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
