package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered editor account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// Principal returns the identity snapshot used for audit attribution.
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Username: u.Username, Email: u.Email}
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// Session is a server-side login session referenced by the session cookie.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	Email     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Principal returns the identity of the session owner.
func (s *Session) Principal() Principal {
	return Principal{UserID: s.UserID, Username: s.Username, Email: s.Email}
}
