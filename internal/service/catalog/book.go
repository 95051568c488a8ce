package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// ListBooks returns a page of books matching the filter. Public.
func (s *Service) ListBooks(ctx context.Context, f domain.BookFilter) ([]domain.Book, error) {
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)
	f.Category = strings.TrimSpace(f.Category)
	f.Query = strings.TrimSpace(f.Query)

	books, err := s.books.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListBooks: %w", err)
	}
	return books, nil
}

// GetBook returns a book with its current average score. Public.
func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetBook: %w", err)
	}
	return b, nil
}

// CreateBook adds a book (admin only). A missing author is ErrNotFound.
func (s *Service) CreateBook(ctx context.Context, input BookInput) (*domain.Book, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.books.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateBook: %w", err)
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("book_id", b.ID.String()),
		slog.String("author_id", b.AuthorID.String()),
	)
	return b, nil
}

// UpdateBook overwrites a book's fields (admin only).
func (s *Service) UpdateBook(ctx context.Context, id uuid.UUID, input BookInput) (*domain.Book, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b := input.toDomain()
	b.ID = id
	updated, err := s.books.Update(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateBook: %w", err)
	}

	s.log.InfoContext(ctx, "book updated", slog.String("book_id", id.String()))
	return updated, nil
}

// DeleteBook removes a book with its scores, borrowings and reservations (admin only).
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteBook: %w", err)
	}

	s.log.InfoContext(ctx, "book deleted", slog.String("book_id", id.String()))
	return nil
}
