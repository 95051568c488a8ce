package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
)

// Builder is the squirrel statement builder configured for PostgreSQL.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Get runs a query built with squirrel and scans exactly one row into T.
// A missing row surfaces as pgx.ErrNoRows for MapError to translate.
func Get[T any](ctx context.Context, q Querier, b sq.Sqlizer) (T, error) {
	var dst T

	query, args, err := b.ToSql()
	if err != nil {
		return dst, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, q, &dst, query, args...); err != nil {
		return dst, err
	}
	return dst, nil
}

// Select runs a query built with squirrel and scans all rows into []T.
// The result is never nil.
func Select[T any](ctx context.Context, q Querier, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	dst := make([]T, 0)
	if err := pgxscan.Select(ctx, q, &dst, query, args...); err != nil {
		return nil, err
	}
	return dst, nil
}

// Exec runs a statement built with squirrel.
func Exec(ctx context.Context, q Querier, b sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return q.Exec(ctx, query, args...)
}

// Returning renders a RETURNING clause for use with squirrel's Suffix.
func Returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
