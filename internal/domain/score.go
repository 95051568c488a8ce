package domain

import (
	"time"

	"github.com/google/uuid"
)

// Score is a user's rating of a book. At most one exists per (user, book).
type Score struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BookID    uuid.UUID
	Value     int
	CreatedAt time.Time
}
