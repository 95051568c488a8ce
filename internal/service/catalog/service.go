package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type authorRepo interface {
	Create(ctx context.Context, a *domain.Author) (*domain.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)
	List(ctx context.Context, limit, offset int) ([]domain.Author, error)
	Update(ctx context.Context, a *domain.Author) (*domain.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookRepo interface {
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context, f domain.BookFilter) ([]domain.Book, error)
	Update(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Service manages authors and books. Reads of books are public; every
// write and every author read requires an admin.
type Service struct {
	authors authorRepo
	books   bookRepo
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, authors authorRepo, books bookRepo) *Service {
	return &Service{
		authors: authors,
		books:   books,
		log:     log.With("service", "catalog"),
	}
}

// clampPage applies the default and maximum page size.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
