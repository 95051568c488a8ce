// Package borrowing implements the Borrowing ledger using PostgreSQL.
package borrowing

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const (
	entity             = "borrowing"
	outstandingBookIdx = "borrowings_book_outstanding_key"
)

var columns = []string{"id", "user_id", "book_id", "borrowed_at", "due_date", "returned_at"}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	BookID     uuid.UUID  `db:"book_id"`
	BorrowedAt time.Time  `db:"borrowed_at"`
	DueDate    time.Time  `db:"due_date"`
	ReturnedAt *time.Time `db:"returned_at"`
}

func (r row) toDomain() domain.Borrowing {
	return domain.Borrowing{
		ID:         r.ID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		BorrowedAt: r.BorrowedAt,
		DueDate:    domain.CivilDate(r.DueDate),
		ReturnedAt: r.ReturnedAt,
	}
}

type reminderRow struct {
	BorrowingID uuid.UUID `db:"borrowing_id"`
	UserID      uuid.UUID `db:"user_id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	BookTitle   string    `db:"book_title"`
	DueDate     time.Time `db:"due_date"`
}

// Repo provides borrowing persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new borrowing repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an outstanding borrowing. A second outstanding borrowing for
// the same book is rejected by the partial unique index and surfaces as
// domain.ErrBookAlreadyBorrowed.
func (r *Repo) Create(ctx context.Context, b *domain.Borrowing) (*domain.Borrowing, error) {
	q := postgres.Builder.Insert("borrowings").
		Columns("user_id", "book_id", "borrowed_at", "due_date").
		Values(b.UserID, b.BookID, b.BorrowedAt, b.DueDate).
		Suffix(postgres.Returning(columns...))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		if postgres.IsUniqueViolation(err, outstandingBookIdx) {
			return nil, fmt.Errorf("%s for book %s: %w", entity, b.BookID, domain.ErrBookAlreadyBorrowed)
		}
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	out := got.toDomain()
	return &out, nil
}

// GetByID returns a borrowing by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Borrowing, error) {
	q := postgres.Builder.Select(columns...).From("borrowings").Where(sq.Eq{"id": id})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	out := got.toDomain()
	return &out, nil
}

// CountOutstandingByUser returns how many books the user currently holds.
func (r *Repo) CountOutstandingByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.Builder.Select("count(*)").From("borrowings").
		Where(sq.Eq{"user_id": userID, "returned_at": nil})

	n, err := postgres.Get[int](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return n, nil
}

// HasOutstandingForBook reports whether anyone currently holds the book.
func (r *Repo) HasOutstandingForBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	q := postgres.Builder.Select().
		Column(sq.Expr("EXISTS(SELECT 1 FROM borrowings WHERE book_id = ? AND returned_at IS NULL)", bookID))

	ok, err := postgres.Get[bool](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, postgres.MapError(err, entity, uuid.Nil)
	}
	return ok, nil
}

// ListByUser returns the user's borrowings, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Borrowing, error) {
	q := postgres.Builder.Select(columns...).From("borrowings").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("borrowed_at DESC", "id")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Borrowing, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// MarkReturned sets returned_at on an outstanding borrowing. The update is
// conditional, so of two concurrent returns exactly one succeeds and the
// other observes domain.ErrAlreadyReturned.
func (r *Repo) MarkReturned(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Borrowing, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	q := postgres.Builder.Update("borrowings").
		Set("returned_at", at).
		Where(sq.Eq{"id": id, "returned_at": nil}).
		Suffix(postgres.Returning(columns...))

	got, err := postgres.Get[row](ctx, querier, q)
	if err == nil {
		out := got.toDomain()
		return &out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, entity, id)
	}

	// Nothing updated: either the row is missing or it was already returned.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyReturned)
}

// ListDueOn returns outstanding borrowings whose due date is exactly day,
// joined with the borrower and book title.
func (r *Repo) ListDueOn(ctx context.Context, day time.Time) ([]domain.DueReminder, error) {
	q := postgres.Builder.Select(
		"br.id AS borrowing_id",
		"u.id AS user_id",
		"u.username",
		"u.email",
		"b.title AS book_title",
		"br.due_date",
	).
		From("borrowings br").
		Join("users u ON u.id = br.user_id").
		Join("books b ON b.id = br.book_id").
		Where(sq.Eq{"br.due_date": domain.CivilDate(day), "br.returned_at": nil}).
		OrderBy("br.id")

	rows, err := postgres.Select[reminderRow](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.DueReminder, len(rows))
	for i, rw := range rows {
		out[i] = domain.DueReminder{
			BorrowingID: rw.BorrowingID,
			UserID:      rw.UserID,
			Username:    rw.Username,
			Email:       rw.Email,
			BookTitle:   rw.BookTitle,
			DueDate:     domain.CivilDate(rw.DueDate),
		}
	}
	return out, nil
}
