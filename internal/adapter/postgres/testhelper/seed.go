package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a regular user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin inserts an admin user.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "reader-" + suffix,
		Email:        "reader-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashse",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedAuthor inserts an author.
func SeedAuthor(t *testing.T, pool *pgxpool.Pool) domain.Author {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Author{
		ID:          uuid.New(),
		Name:        "Author " + uniqueSuffix(),
		Biography:   "Wrote things.",
		Nationality: "Nowhere",
		DateOfBirth: time.Date(1950, time.June, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO authors (id, name, biography, nationality, date_of_birth, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Name, a.Biography, a.Nationality, a.DateOfBirth, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuthor: %v", err)
	}

	return a
}

// SeedBook inserts a book by a freshly seeded author.
func SeedBook(t *testing.T, pool *pgxpool.Pool) domain.Book {
	t.Helper()
	return SeedBookBy(t, pool, SeedAuthor(t, pool).ID)
}

// SeedBookBy inserts a book by the given author.
func SeedBookBy(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Book {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Book{
		ID:              uuid.New(),
		Title:           "Book " + uniqueSuffix(),
		Description:     "A book.",
		AuthorID:        authorID,
		ISBN:            "9780000000000",
		Category:        "fiction",
		PublicationDate: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, title, description, author_id, isbn, category, publication_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.Title, b.Description, b.AuthorID, b.ISBN, b.Category, b.PublicationDate, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return b
}

// SeedBorrowing inserts a borrowing directly, bypassing lending rules.
func SeedBorrowing(t *testing.T, pool *pgxpool.Pool, userID, bookID uuid.UUID, dueDate time.Time, returnedAt *time.Time) domain.Borrowing {
	t.Helper()

	b := domain.Borrowing{
		ID:         uuid.New(),
		UserID:     userID,
		BookID:     bookID,
		BorrowedAt: dueDate.AddDate(0, 0, -14),
		DueDate:    domain.CivilDate(dueDate),
		ReturnedAt: returnedAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO borrowings (id, user_id, book_id, borrowed_at, due_date, returned_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.UserID, b.BookID, b.BorrowedAt, b.DueDate, b.ReturnedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBorrowing: %v", err)
	}

	return b
}
