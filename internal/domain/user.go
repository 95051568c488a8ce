package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is carried in access tokens and gates catalog administration
// and reservation removal.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

// IsValid reports whether r is a role this service issues.
func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// User is a library member or administrator. Username is the login name and
// is unique; Email receives due-date reminders.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is the stored form of a refresh token. Only the SHA-256 hash
// of the raw token is persisted. Revoked tokens are kept until cleanup so a
// replay can be recognized.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

func (t *RefreshToken) IsRevoked() bool { return t.RevokedAt != nil }

// IsExpired reports whether the token expired strictly before now.
func (t *RefreshToken) IsExpired(now time.Time) bool { return t.ExpiresAt.Before(now) }
