// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const entity = "user"

var columns = []string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}

type row struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a user. Username and email uniqueness violations map to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	q := postgres.Builder.Insert("users").
		Columns("username", "email", "password_hash", "role").
		Values(u.Username, u.Email, u.PasswordHash, string(role)).
		Suffix(postgres.Returning(columns...))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return got.toDomain(), nil
}

// GetByID returns a user by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From("users").Where(sq.Eq{"id": id})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return got.toDomain(), nil
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From("users").Where(sq.Eq{"username": username})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return got.toDomain(), nil
}

// LockByID takes a row lock on the user for the rest of the surrounding
// transaction. It serializes borrow decisions per user.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder.Select("id").From("users").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")

	if _, err := postgres.Get[uuid.UUID](ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// PromoteToAdmin sets the admin role by username. Returns domain.ErrNotFound
// when no non-admin user has that username.
func (r *Repo) PromoteToAdmin(ctx context.Context, username string) error {
	q := postgres.Builder.Update("users").
		Set("role", string(domain.UserRoleAdmin)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"username": username}).
		Where(sq.NotEq{"role": string(domain.UserRoleAdmin)})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, entity, uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, entity, uuid.Nil)
	}
	return nil
}
