package domain

import (
	"time"

	"github.com/google/uuid"
)

// Borrowing is a ledger record. It is outstanding while ReturnedAt is nil and
// is mutated exactly once, on return.
type Borrowing struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	BorrowedAt time.Time
	DueDate    time.Time // civil date at 00:00 UTC
	ReturnedAt *time.Time
}

// IsOutstanding reports whether the book has not been returned yet.
func (b *Borrowing) IsOutstanding() bool {
	return b.ReturnedAt == nil
}

// IsOverdue is true only for an outstanding borrowing whose due date is
// strictly before now's civil date (UTC). A returned borrowing is never overdue.
func (b *Borrowing) IsOverdue(now time.Time) bool {
	if b.ReturnedAt != nil {
		return false
	}
	return CivilDate(now).After(CivilDate(b.DueDate))
}

// DueDateFor returns the due date for a borrowing started at borrowedAt.
func DueDateFor(borrowedAt time.Time, loanPeriod time.Duration) time.Time {
	return CivilDate(borrowedAt.Add(loanPeriod))
}

// CivilDate truncates t to midnight UTC of its UTC calendar day.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Reservation claims the single reservation slot of a book.
type Reservation struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	ReservedAt time.Time
}

// DueReminder is a borrowing due today, joined with what a reminder needs.
type DueReminder struct {
	BorrowingID uuid.UUID
	UserID      uuid.UUID
	Username    string
	Email       string
	BookTitle   string
	DueDate     time.Time
}

// Message is an outbound plain-text mail.
type Message struct {
	To      string
	Subject string
	Body    string
}
