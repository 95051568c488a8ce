// Package score records member ratings of books.
package score

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

type bookRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type scoreRepo interface {
	Create(ctx context.Context, s *domain.Score) (*domain.Score, error)
	AverageForBook(ctx context.Context, bookID uuid.UUID) (float64, error)
}

// Result is a stored score together with the book's recomputed average.
type Result struct {
	Score        *domain.Score
	AverageScore float64
}

// Service implements score submission.
type Service struct {
	books  bookRepo
	scores scoreRepo
	cfg    config.ScoreConfig
	log    *slog.Logger
}

// NewService creates a new score service.
func NewService(log *slog.Logger, books bookRepo, scores scoreRepo, cfg config.ScoreConfig) *Service {
	return &Service{
		books:  books,
		scores: scores,
		cfg:    cfg,
		log:    log.With("service", "score"),
	}
}

// Submit records the authenticated user's score for a book. A user scores a
// book at most once; the first value stands.
func (s *Service) Submit(ctx context.Context, bookID uuid.UUID, value int) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if value < s.cfg.Min || value > s.cfg.Max {
		return nil, domain.NewValidationError("score",
			fmt.Sprintf("must be between %d and %d", s.cfg.Min, s.cfg.Max))
	}

	exists, err := s.books.Exists(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("score.Submit check book: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("score.Submit book %s: %w", bookID, domain.ErrNotFound)
	}

	created, err := s.scores.Create(ctx, &domain.Score{UserID: userID, BookID: bookID, Value: value})
	if err != nil {
		return nil, fmt.Errorf("score.Submit: %w", err)
	}

	avg, err := s.scores.AverageForBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("score.Submit average: %w", err)
	}

	s.log.InfoContext(ctx, "book scored",
		slog.String("user_id", userID.String()),
		slog.String("book_id", bookID.String()),
		slog.Int("score", value),
	)

	return &Result{Score: created, AverageScore: avg}, nil
}
