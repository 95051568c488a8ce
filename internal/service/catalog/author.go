package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// CreateAuthor adds an author (admin only).
func (s *Service) CreateAuthor(ctx context.Context, input AuthorInput) (*domain.Author, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.authors.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateAuthor: %w", err)
	}

	s.log.InfoContext(ctx, "author created", slog.String("author_id", a.ID.String()))
	return a, nil
}

// GetAuthor returns an author (admin only).
func (s *Service) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	a, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetAuthor: %w", err)
	}
	return a, nil
}

// ListAuthors returns a page of authors ordered by name (admin only).
func (s *Service) ListAuthors(ctx context.Context, limit, offset int) ([]domain.Author, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	limit, offset = clampPage(limit, offset)
	authors, err := s.authors.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListAuthors: %w", err)
	}
	return authors, nil
}

// UpdateAuthor overwrites an author's fields (admin only).
func (s *Service) UpdateAuthor(ctx context.Context, id uuid.UUID, input AuthorInput) (*domain.Author, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a := input.toDomain()
	a.ID = id
	updated, err := s.authors.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateAuthor: %w", err)
	}

	s.log.InfoContext(ctx, "author updated", slog.String("author_id", id.String()))
	return updated, nil
}

// DeleteAuthor removes an author and, by cascade, all of their books (admin only).
func (s *Service) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.authors.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteAuthor: %w", err)
	}

	s.log.InfoContext(ctx, "author deleted", slog.String("author_id", id.String()))
	return nil
}
