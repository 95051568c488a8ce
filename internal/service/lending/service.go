// Package lending enforces the borrow, return and reserve rules.
package lending

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
)

var tracer = otel.Tracer("github.com/heartmarshall/library-backend/internal/service/lending")

type userLocker interface {
	LockByID(ctx context.Context, id uuid.UUID) error
}

type bookLocker interface {
	LockByID(ctx context.Context, id uuid.UUID) error
}

type borrowingRepo interface {
	Create(ctx context.Context, b *domain.Borrowing) (*domain.Borrowing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Borrowing, error)
	CountOutstandingByUser(ctx context.Context, userID uuid.UUID) (int, error)
	HasOutstandingForBook(ctx context.Context, bookID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Borrowing, error)
	MarkReturned(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Borrowing, error)
}

type reservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	GetByBook(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// outcomeRecorder counts lending decisions by operation and outcome.
type outcomeRecorder interface {
	ObserveLending(op, outcome string)
}

// Service is the lending rule engine.
type Service struct {
	users        userLocker
	books        bookLocker
	borrowings   borrowingRepo
	reservations reservationRepo
	tx           txManager
	outcomes     outcomeRecorder
	cfg          config.LendingConfig
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new lending service.
func NewService(
	log *slog.Logger,
	users userLocker,
	books bookLocker,
	borrowings borrowingRepo,
	reservations reservationRepo,
	tx txManager,
	outcomes outcomeRecorder,
	cfg config.LendingConfig,
) *Service {
	return &Service{
		users:        users,
		books:        books,
		borrowings:   borrowings,
		reservations: reservations,
		tx:           tx,
		outcomes:     outcomes,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log.With("service", "lending"),
	}
}

// outcome classifies err for metrics and logs: "ok", a rule code, or "error".
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var re *domain.RuleError
	if errors.As(err, &re) {
		return re.Code
	}
	if errors.Is(err, domain.ErrNotFound) {
		return "not_found"
	}
	if errors.Is(err, domain.ErrForbidden) {
		return "forbidden"
	}
	return "error"
}

// record reports the outcome of op and logs rule rejections at info.
func (s *Service) record(ctx context.Context, op string, err error, attrs ...any) {
	o := outcome(err)
	s.outcomes.ObserveLending(op, o)

	var re *domain.RuleError
	if errors.As(err, &re) {
		s.log.InfoContext(ctx, op+" rejected", append(attrs, slog.String("code", re.Code))...)
	}
}
