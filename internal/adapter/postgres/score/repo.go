// Package score implements the Score repository using PostgreSQL.
package score

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
	entity      = "score"
	userBookKey = "scores_user_book_key"
)

var columns = []string{"id", "user_id", "book_id", "score", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	BookID    uuid.UUID `db:"book_id"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides score persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new score repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a score. A second score by the same user for the same book
// surfaces as domain.ErrAlreadyScored.
func (r *Repo) Create(ctx context.Context, s *domain.Score) (*domain.Score, error) {
	q := postgres.Builder.Insert("scores").
		Columns("user_id", "book_id", "score").
		Values(s.UserID, s.BookID, s.Value).
		Suffix(postgres.Returning(columns...))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		if postgres.IsUniqueViolation(err, userBookKey) {
			return nil, fmt.Errorf("%s for book %s: %w", entity, s.BookID, domain.ErrAlreadyScored)
		}
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return &domain.Score{
		ID:        got.ID,
		UserID:    got.UserID,
		BookID:    got.BookID,
		Value:     got.Score,
		CreatedAt: got.CreatedAt,
	}, nil
}

// AverageForBook returns the mean of all scores for the book, 0 when none exist.
func (r *Repo) AverageForBook(ctx context.Context, bookID uuid.UUID) (float64, error) {
	q := postgres.Builder.Select("COALESCE(AVG(score), 0)::float8").From("scores").
		Where(sq.Eq{"book_id": bookID})

	avg, err := postgres.Get[float64](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, entity, bookID)
	}
	return avg, nil
}
