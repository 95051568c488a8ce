package lending

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// borrowState is what a borrow decision is made from, read under the user
// and book row locks.
type borrowState struct {
	outstanding  int                 // books the requester currently holds
	bookBorrowed bool                // anyone holds the book, the requester included
	reservation  *domain.Reservation // nil when the book is not reserved
}

// decideBorrow applies the borrow rules in their fixed order and returns the
// first violated rule, or nil.
func decideBorrow(s borrowState, requester uuid.UUID, maxOutstanding int) error {
	if s.outstanding >= maxOutstanding {
		return domain.ErrBorrowLimitExceeded
	}
	if s.bookBorrowed {
		return domain.ErrBookAlreadyBorrowed
	}
	if s.reservation != nil && s.reservation.UserID != requester {
		return domain.ErrBookReservedByOther
	}
	return nil
}

// decideReserve rejects a reservation when the book's single slot is taken,
// whoever holds it. Borrow status is not considered.
func decideReserve(existing *domain.Reservation) error {
	if existing != nil {
		return domain.ErrBookAlreadyReserved
	}
	return nil
}
