// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const entity = "refresh_token"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r row) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new refresh token. A missing user maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	q := postgres.Builder.Insert("refresh_tokens").
		Columns("user_id", "token_hash", "expires_at").
		Values(token.UserID, token.TokenHash, token.ExpiresAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, entity, uuid.Nil)
	}
	return nil
}

// GetByHash returns a refresh token by its hash, revoked or not, so the
// caller can tell a replayed token from an unknown one. Expiry is checked by
// the caller.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.Builder.Select(columns...).From("refresh_tokens").
		Where(sq.Eq{"token_hash": tokenHash})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return got.toDomain(), nil
}

// RevokeByID revokes an active token and reports whether this call did it.
// A false result means the token was already revoked, typically by a
// concurrent refresh presenting the same token.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.Builder.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "revoked_at": nil})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return tag.RowsAffected() == 1, nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.Builder.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, entity, uuid.Nil)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens and returns the count.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.Builder.Delete("refresh_tokens").
		Where(sq.Or{sq.Expr("expires_at < now()"), sq.NotEq{"revoked_at": nil}})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
