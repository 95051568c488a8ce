// Package reservation implements the Reservation repository using PostgreSQL.
package reservation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const (
	entity      = "reservation"
	bookSlotKey = "reservations_book_id_key"
)

var columns = []string{"id", "user_id", "book_id", "reserved_at"}

type row struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	BookID     uuid.UUID `db:"book_id"`
	ReservedAt time.Time `db:"reserved_at"`
}

func (r row) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:         r.ID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		ReservedAt: r.ReservedAt,
	}
}

// Repo provides reservation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reservation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create claims the reservation slot of a book. A taken slot surfaces as
// domain.ErrBookAlreadyReserved.
func (r *Repo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	q := postgres.Builder.Insert("reservations").
		Columns("user_id", "book_id", "reserved_at").
		Values(res.UserID, res.BookID, res.ReservedAt).
		Suffix(postgres.Returning(columns...))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		if postgres.IsUniqueViolation(err, bookSlotKey) {
			return nil, fmt.Errorf("%s for book %s: %w", entity, res.BookID, domain.ErrBookAlreadyReserved)
		}
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	out := got.toDomain()
	return &out, nil
}

// GetByBook returns the reservation holding the book's slot.
// Returns domain.ErrNotFound if the book is not reserved.
func (r *Repo) GetByBook(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error) {
	q := postgres.Builder.Select(columns...).From("reservations").Where(sq.Eq{"book_id": bookID})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, bookID)
	}
	out := got.toDomain()
	return &out, nil
}

// ListByUser returns the user's reservations, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	q := postgres.Builder.Select(columns...).From("reservations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("reserved_at DESC", "id")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Reservation, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Delete frees a reservation slot.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder.Delete("reservations").Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, entity, id)
	}
	return nil
}
