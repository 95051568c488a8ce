// Package author implements the Author repository using PostgreSQL.
package author

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const entity = "author"

var columns = []string{"id", "name", "biography", "nationality", "date_of_birth", "created_at", "updated_at"}

type row struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Biography   string    `db:"biography"`
	Nationality string    `db:"nationality"`
	DateOfBirth time.Time `db:"date_of_birth"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Author {
	return domain.Author{
		ID:          r.ID,
		Name:        r.Name,
		Biography:   r.Biography,
		Nationality: r.Nationality,
		DateOfBirth: r.DateOfBirth,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides author persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new author repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an author and returns the stored row.
func (r *Repo) Create(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	q := postgres.Builder.Insert("authors").
		Columns("name", "biography", "nationality", "date_of_birth").
		Values(a.Name, a.Biography, a.Nationality, a.DateOfBirth).
		Suffix(postgres.Returning(columns...))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	out := got.toDomain()
	return &out, nil
}

// GetByID returns an author by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	q := postgres.Builder.Select(columns...).From("authors").Where(sq.Eq{"id": id})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	out := got.toDomain()
	return &out, nil
}

// GetByIDs returns the authors among ids that exist, in no particular order.
// Used by the per-request author loader.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error) {
	if len(ids) == 0 {
		return []domain.Author{}, nil
	}

	q := postgres.Builder.Select(columns...).From("authors").Where(sq.Eq{"id": ids})

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return toDomainSlice(rows), nil
}

// List returns authors ordered by name.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Author, error) {
	q := postgres.Builder.Select(columns...).From("authors").
		OrderBy("name", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return toDomainSlice(rows), nil
}

// Update overwrites the editable fields of an author.
func (r *Repo) Update(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	q := postgres.Builder.Update("authors").
		Set("name", a.Name).
		Set("biography", a.Biography).
		Set("nationality", a.Nationality).
		Set("date_of_birth", a.DateOfBirth).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": a.ID}).
		Suffix(postgres.Returning(columns...))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, a.ID)
	}
	out := got.toDomain()
	return &out, nil
}

// Delete removes an author. Its books and everything hanging off them are
// removed by ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder.Delete("authors").Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, entity, id)
	}
	return nil
}

func toDomainSlice(rows []row) []domain.Author {
	out := make([]domain.Author, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}
