package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// RuleError is a business-rule rejection. It always unwraps to ErrConflict,
// so callers that only care about the error class can use errors.Is.
type RuleError struct {
	Code    string
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func (e *RuleError) Unwrap() error { return ErrConflict }

// Is reports equality by code so wrapped copies still match the sentinels below.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Code == e.Code
}

// Lending and scoring rule rejections.
var (
	ErrBorrowLimitExceeded = &RuleError{Code: "BORROW_LIMIT_EXCEEDED", Message: "borrow limit exceeded"}
	ErrBookAlreadyBorrowed = &RuleError{Code: "BOOK_ALREADY_BORROWED", Message: "book is already borrowed"}
	ErrBookReservedByOther = &RuleError{Code: "BOOK_RESERVED_BY_OTHER", Message: "book is reserved by another user"}
	ErrBookAlreadyReserved = &RuleError{Code: "BOOK_ALREADY_RESERVED", Message: "book is already reserved"}
	ErrAlreadyReturned     = &RuleError{Code: "ALREADY_RETURNED", Message: "borrowing has already been returned"}
	ErrAlreadyScored       = &RuleError{Code: "ALREADY_SCORED", Message: "book has already been scored by this user"}
)
