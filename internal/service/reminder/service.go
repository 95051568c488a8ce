// Package reminder sends due-today reminders to borrowers. It only reads the
// borrowing ledger and never changes lending state.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

const subject = "Book Due Date Reminder"

type dueLister interface {
	ListDueOn(ctx context.Context, day time.Time) ([]domain.DueReminder, error)
}

type sender interface {
	Send(ctx context.Context, msg domain.Message) error
}

// deduper claims a (borrowing, day) pair. MarkReminded returns false when the
// pair was already claimed by an earlier sweep.
type deduper interface {
	MarkReminded(ctx context.Context, borrowingID uuid.UUID, day time.Time) (bool, error)
	ReleaseReminded(ctx context.Context, borrowingID uuid.UUID, day time.Time) error
}

// Report summarizes one sweep.
type Report struct {
	Due     int
	Sent    int
	Skipped int // already reminded by an earlier sweep
	Failed  int
}

// Service runs reminder sweeps.
type Service struct {
	due    dueLister
	sender sender
	dedup  deduper // nil disables deduplication
	log    *slog.Logger
}

// NewService creates a reminder service without deduplication.
func NewService(log *slog.Logger, due dueLister, sender sender) *Service {
	return &Service{
		due:    due,
		sender: sender,
		log:    log.With("service", "reminder"),
	}
}

// SetDedup injects the optional reminder deduplicator.
func (s *Service) SetDedup(d deduper) {
	s.dedup = d
}

// Sweep sends one reminder per outstanding borrowing due on day's UTC civil
// date. Delivery failures are logged and counted, never retried within the
// sweep; their dedup claim is released so the next sweep sends them. Only a
// failure to list the due borrowings aborts the sweep.
func (s *Service) Sweep(ctx context.Context, day time.Time) (Report, error) {
	day = domain.CivilDate(day)

	due, err := s.due.ListDueOn(ctx, day)
	if err != nil {
		return Report{}, fmt.Errorf("reminder.Sweep list due: %w", err)
	}

	report := Report{Due: len(due)}
	for _, d := range due {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		claimed := false
		if s.dedup != nil {
			fresh, err := s.dedup.MarkReminded(ctx, d.BorrowingID, day)
			switch {
			case err != nil:
				// Dedup is best effort; send anyway.
				s.log.WarnContext(ctx, "reminder dedup unavailable",
					slog.String("borrowing_id", d.BorrowingID.String()),
					slog.String("error", err.Error()),
				)
			case !fresh:
				report.Skipped++
				continue
			default:
				claimed = true
			}
		}

		if err := s.sender.Send(ctx, message(d)); err != nil {
			report.Failed++
			s.log.ErrorContext(ctx, "reminder delivery failed",
				slog.String("borrowing_id", d.BorrowingID.String()),
				slog.String("user_id", d.UserID.String()),
				slog.String("error", err.Error()),
			)
			if claimed {
				s.release(ctx, d.BorrowingID, day)
			}
			continue
		}
		report.Sent++
	}

	s.log.InfoContext(ctx, "reminder sweep finished",
		slog.String("day", day.Format(time.DateOnly)),
		slog.Int("due", report.Due),
		slog.Int("sent", report.Sent),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

func message(d domain.DueReminder) domain.Message {
	return domain.Message{
		To:      d.Email,
		Subject: subject,
		Body: fmt.Sprintf("Hi %s,\n\nThe book %q is due today. Please return it as soon as possible.",
			d.Username, d.BookTitle),
	}
}

// release frees the claim on an undelivered reminder so the next sweep for
// the same day sends it again.
func (s *Service) release(ctx context.Context, borrowingID uuid.UUID, day time.Time) {
	if err := s.dedup.ReleaseReminded(context.WithoutCancel(ctx), borrowingID, day); err != nil {
		s.log.WarnContext(ctx, "reminder claim not released",
			slog.String("borrowing_id", borrowingID.String()),
			slog.String("error", err.Error()),
		)
	}
}
