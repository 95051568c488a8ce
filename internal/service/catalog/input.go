package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// AuthorInput holds the editable fields of an author.
type AuthorInput struct {
	Name        string
	Biography   string
	Nationality string
	DateOfBirth time.Time
}

// Validate checks all fields and collects all errors.
func (i AuthorInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Nationality)) > 50 {
		errs = append(errs, domain.FieldError{Field: "nationality", Message: "max 50 characters"})
	}
	if i.DateOfBirth.IsZero() {
		errs = append(errs, domain.FieldError{Field: "dateOfBirth", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AuthorInput) toDomain() *domain.Author {
	return &domain.Author{
		Name:        strings.TrimSpace(i.Name),
		Biography:   strings.TrimSpace(i.Biography),
		Nationality: strings.TrimSpace(i.Nationality),
		DateOfBirth: domain.CivilDate(i.DateOfBirth),
	}
}

// BookInput holds the editable fields of a book.
type BookInput struct {
	Title           string
	Description     string
	AuthorID        uuid.UUID
	ISBN            string
	Category        string
	PublicationDate time.Time
}

// Validate checks all fields and collects all errors.
func (i BookInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "authorId", Message: "required"})
	}

	isbn := strings.TrimSpace(i.ISBN)
	if isbn == "" {
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "required"})
	} else if len(isbn) > 13 {
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "max 13 characters"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.Category)) > 50 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 50 characters"})
	}
	if i.PublicationDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "publicationDate", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i BookInput) toDomain() *domain.Book {
	return &domain.Book{
		Title:           strings.TrimSpace(i.Title),
		Description:     strings.TrimSpace(i.Description),
		AuthorID:        i.AuthorID,
		ISBN:            strings.TrimSpace(i.ISBN),
		Category:        strings.TrimSpace(i.Category),
		PublicationDate: domain.CivilDate(i.PublicationDate),
	}
}
