package domain

import (
	"time"

	"github.com/google/uuid"
)

// Author owns zero or more books. Deleting an author deletes its books.
type Author struct {
	ID          uuid.UUID
	Name        string
	Biography   string
	Nationality string
	DateOfBirth time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Book is a catalog entry. AverageScore is derived on every read and is 0
// when the book has no scores.
type Book struct {
	ID              uuid.UUID
	Title           string
	Description     string
	AuthorID        uuid.UUID
	ISBN            string
	Category        string
	PublicationDate time.Time
	AverageScore    float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookFilter narrows a book listing. Zero values mean "no filter".
type BookFilter struct {
	Category string
	AuthorID *uuid.UUID
	Query    string
	Limit    int
	Offset   int
}
