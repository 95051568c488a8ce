package lending

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// Borrow lends a book to the authenticated user.
//
// Runs in one transaction holding the user row lock, then the book row lock;
// the lock order is fixed so concurrent borrows cannot deadlock. Every rule
// violation rolls the transaction back and leaves no trace.
func (s *Service) Borrow(ctx context.Context, bookID uuid.UUID) (*domain.Borrowing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ctx, span := tracer.Start(ctx, "lending.Borrow", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("book.id", bookID.String()),
	))
	defer span.End()

	var created *domain.Borrowing
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.LockByID(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if err := s.books.LockByID(txCtx, bookID); err != nil {
			return fmt.Errorf("lock book: %w", err)
		}

		state, err := s.loadBorrowState(txCtx, userID, bookID)
		if err != nil {
			return err
		}
		if err := decideBorrow(state, userID, s.cfg.MaxOutstanding); err != nil {
			return err
		}

		now := s.now()
		created, err = s.borrowings.Create(txCtx, &domain.Borrowing{
			UserID:     userID,
			BookID:     bookID,
			BorrowedAt: now,
			DueDate:    domain.DueDateFor(now, s.cfg.LoanPeriod),
		})
		if err != nil {
			return fmt.Errorf("create borrowing: %w", err)
		}
		return nil
	})

	s.record(ctx, "borrow", err,
		slog.String("user_id", userID.String()),
		slog.String("book_id", bookID.String()),
	)
	span.SetAttributes(attribute.String("lending.outcome", outcome(err)))
	if err != nil {
		if outcome(err) == "error" {
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, fmt.Errorf("lending.Borrow: %w", err)
	}

	s.log.InfoContext(ctx, "book borrowed",
		slog.String("borrowing_id", created.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("book_id", bookID.String()),
		slog.Time("due_date", created.DueDate),
	)
	return created, nil
}

func (s *Service) loadBorrowState(ctx context.Context, userID, bookID uuid.UUID) (borrowState, error) {
	var st borrowState
	var err error

	st.outstanding, err = s.borrowings.CountOutstandingByUser(ctx, userID)
	if err != nil {
		return st, fmt.Errorf("count outstanding: %w", err)
	}

	st.bookBorrowed, err = s.borrowings.HasOutstandingForBook(ctx, bookID)
	if err != nil {
		return st, fmt.Errorf("check book availability: %w", err)
	}

	st.reservation, err = s.reservationFor(ctx, bookID)
	if err != nil {
		return st, err
	}
	return st, nil
}

// reservationFor returns the book's reservation, or nil when it has none.
func (s *Service) reservationFor(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error) {
	r, err := s.reservations.GetByBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return r, nil
}

// Return closes a borrowing. Only the borrower or an admin may return it.
// The write is conditional, so a concurrent second return observes
// domain.ErrAlreadyReturned.
func (s *Service) Return(ctx context.Context, borrowingID uuid.UUID) (*domain.Borrowing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ctx, span := tracer.Start(ctx, "lending.Return", trace.WithAttributes(
		attribute.String("borrowing.id", borrowingID.String()),
	))
	defer span.End()

	returned, err := s.returnBorrowing(ctx, userID, borrowingID)

	s.record(ctx, "return", err,
		slog.String("user_id", userID.String()),
		slog.String("borrowing_id", borrowingID.String()),
	)
	span.SetAttributes(attribute.String("lending.outcome", outcome(err)))
	if err != nil {
		return nil, fmt.Errorf("lending.Return: %w", err)
	}

	s.log.InfoContext(ctx, "book returned",
		slog.String("borrowing_id", borrowingID.String()),
		slog.String("book_id", returned.BookID.String()),
	)
	return returned, nil
}

func (s *Service) returnBorrowing(ctx context.Context, userID, borrowingID uuid.UUID) (*domain.Borrowing, error) {
	b, err := s.borrowings.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if !b.IsOutstanding() {
		return nil, domain.ErrAlreadyReturned
	}
	return s.borrowings.MarkReturned(ctx, borrowingID, s.now())
}

// ListBorrowings returns the authenticated user's borrowings, newest first.
func (s *Service) ListBorrowings(ctx context.Context) ([]domain.Borrowing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.borrowings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lending.ListBorrowings: %w", err)
	}
	return list, nil
}

// Now returns the clock the service judges due dates by.
func (s *Service) Now() time.Time {
	return s.now()
}
