package lending

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// Reserve claims the single reservation slot of a book for the
// authenticated user. The book row lock serializes it with borrows of the
// same book.
func (s *Service) Reserve(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ctx, span := tracer.Start(ctx, "lending.Reserve", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("book.id", bookID.String()),
	))
	defer span.End()

	var created *domain.Reservation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.books.LockByID(txCtx, bookID); err != nil {
			return fmt.Errorf("lock book: %w", err)
		}

		existing, err := s.reservationFor(txCtx, bookID)
		if err != nil {
			return err
		}
		if err := decideReserve(existing); err != nil {
			return err
		}

		created, err = s.reservations.Create(txCtx, &domain.Reservation{
			UserID:     userID,
			BookID:     bookID,
			ReservedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		return nil
	})

	s.record(ctx, "reserve", err,
		slog.String("user_id", userID.String()),
		slog.String("book_id", bookID.String()),
	)
	span.SetAttributes(attribute.String("lending.outcome", outcome(err)))
	if err != nil {
		return nil, fmt.Errorf("lending.Reserve: %w", err)
	}

	s.log.InfoContext(ctx, "book reserved",
		slog.String("reservation_id", created.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("book_id", bookID.String()),
	)
	return created, nil
}

// ListReservations returns the authenticated user's reservations, newest first.
func (s *Service) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.reservations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lending.ListReservations: %w", err)
	}
	return list, nil
}

// DeleteReservation frees a reservation slot (admin only).
func (s *Service) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("lending.DeleteReservation: %w", err)
	}

	s.log.InfoContext(ctx, "reservation deleted", slog.String("reservation_id", id.String()))
	return nil
}
