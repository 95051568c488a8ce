// Package book implements the Book repository using PostgreSQL.
// average_score is computed in every read query and never stored.
package book

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const entity = "book"

var baseColumns = []string{
	"b.id", "b.title", "b.description", "b.author_id", "b.isbn",
	"b.category", "b.publication_date", "b.created_at", "b.updated_at",
}

const averageScoreColumn = "COALESCE((SELECT AVG(s.score) FROM scores s WHERE s.book_id = b.id), 0)::float8 AS average_score"

type row struct {
	ID              uuid.UUID `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	AuthorID        uuid.UUID `db:"author_id"`
	ISBN            string    `db:"isbn"`
	Category        string    `db:"category"`
	PublicationDate time.Time `db:"publication_date"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	AverageScore    float64   `db:"average_score"`
}

func (r row) toDomain() domain.Book {
	return domain.Book{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		AuthorID:        r.AuthorID,
		ISBN:            r.ISBN,
		Category:        r.Category,
		PublicationDate: r.PublicationDate,
		AverageScore:    r.AverageScore,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new book repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectBooks() sq.SelectBuilder {
	return postgres.Builder.Select(baseColumns...).Column(averageScoreColumn).From("books b")
}

// Create inserts a book. An unknown author maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	q := postgres.Builder.Insert("books").
		Columns("title", "description", "author_id", "isbn", "category", "publication_date").
		Values(b.Title, b.Description, b.AuthorID, b.ISBN, b.Category, b.PublicationDate).
		Suffix("RETURNING id")

	id, err := postgres.Get[uuid.UUID](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a book with its current average score.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	q := selectBooks().Where(sq.Eq{"b.id": id})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	out := got.toDomain()
	return &out, nil
}

// List returns books matching the filter ordered by title.
func (r *Repo) List(ctx context.Context, f domain.BookFilter) ([]domain.Book, error) {
	q := selectBooks().OrderBy("b.title", "b.id")

	if f.Category != "" {
		q = q.Where(sq.Eq{"b.category": f.Category})
	}
	if f.AuthorID != nil {
		q = q.Where(sq.Eq{"b.author_id": *f.AuthorID})
	}
	if f.Query != "" {
		q = q.Where(sq.ILike{"b.title": "%" + f.Query + "%"})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Book, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Update overwrites the editable fields of a book.
func (r *Repo) Update(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	q := postgres.Builder.Update("books").
		Set("title", b.Title).
		Set("description", b.Description).
		Set("author_id", b.AuthorID).
		Set("isbn", b.ISBN).
		Set("category", b.Category).
		Set("publication_date", b.PublicationDate).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": b.ID}).
		Suffix("RETURNING id")

	if _, err := postgres.Get[uuid.UUID](ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return nil, postgres.MapError(err, entity, b.ID)
	}
	return r.GetByID(ctx, b.ID)
}

// Delete removes a book together with its scores, borrowings and reservations.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder.Delete("books").Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, entity, id)
	}
	return nil
}

// LockByID takes a row lock on the book for the rest of the surrounding
// transaction. Every borrow and reserve decision for one book serializes on it.
// Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder.Select("id").From("books").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")

	if _, err := postgres.Get[uuid.UUID](ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// Exists reports whether a book with the id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.Builder.Select().Column(sq.Expr("EXISTS(SELECT 1 FROM books WHERE id = ?)", id))

	exists, err := postgres.Get[bool](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return exists, nil
}
