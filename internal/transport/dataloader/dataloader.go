// Package dataloader provides per-request loaders that batch the author
// lookups made while rendering book lists into a single SQL query.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/library-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type authorRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Author, error)
}

// Loaders holds the per-request loader instances. Results are cached for
// the lifetime of one request only.
type Loaders struct {
	AuthorByID *dataloader.Loader[uuid.UUID, *domain.Author]
}

// NewLoaders must be called once per request.
func NewLoaders(authors authorRepo) *Loaders {
	return &Loaders{
		AuthorByID: dataloader.NewBatchedLoader(
			newAuthorBatchFn(authors),
			dataloader.WithWait[uuid.UUID, *domain.Author](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.Author](maxBatch),
		),
	}
}

// newAuthorBatchFn resolves missing authors to nil rather than an error; a
// book whose author vanished mid-request still renders.
func newAuthorBatchFn(repo authorRepo) dataloader.BatchFunc[uuid.UUID, *domain.Author] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Author] {
		authors, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Author], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Author]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.Author, len(authors))
		for i := range authors {
			byID[authors[i].ID] = &authors[i]
		}

		results := make([]*dataloader.Result[*domain.Author], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Author]{Data: byID[key]}
		}
		return results
	}
}

// LoadAuthors resolves the authors of the given books in one batch, keyed by
// author id.
func (l *Loaders) LoadAuthors(ctx context.Context, books []domain.Book) (map[uuid.UUID]*domain.Author, error) {
	seen := make(map[uuid.UUID]struct{}, len(books))
	keys := make([]uuid.UUID, 0, len(books))
	for _, b := range books {
		if _, ok := seen[b.AuthorID]; ok {
			continue
		}
		seen[b.AuthorID] = struct{}{}
		keys = append(keys, b.AuthorID)
	}

	authors, errs := l.AuthorByID.LoadMany(ctx, keys)()
	out := make(map[uuid.UUID]*domain.Author, len(keys))
	for i, key := range keys {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[key] = authors[i]
	}
	return out, nil
}

type contextKey struct{}

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request's loaders, or nil when Middleware is not
// installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}

// Middleware installs a fresh set of loaders on every request.
func Middleware(authors authorRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(authors))))
		})
	}
}
