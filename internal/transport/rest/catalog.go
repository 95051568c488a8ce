package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
	"github.com/heartmarshall/library-backend/internal/transport/dataloader"
)

type catalogService interface {
	ListBooks(ctx context.Context, f domain.BookFilter) ([]domain.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	CreateBook(ctx context.Context, input catalog.BookInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, input catalog.BookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error

	ListAuthors(ctx context.Context, limit, offset int) ([]domain.Author, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error)
	CreateAuthor(ctx context.Context, input catalog.AuthorInput) (*domain.Author, error)
	UpdateAuthor(ctx context.Context, id uuid.UUID, input catalog.AuthorInput) (*domain.Author, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
}

// CatalogHandler serves /books and /authors.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// ─── Wire types ─────────────────────────────────────────────────────────────

type bookRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	AuthorID        string `json:"authorId"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category"`
	PublicationDate string `json:"publicationDate"`
}

type authorRequest struct {
	Name        string `json:"name"`
	Biography   string `json:"biography"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"`
}

type authorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type bookResponse struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	AuthorID        string         `json:"authorId"`
	Author          *authorSummary `json:"author,omitempty"`
	ISBN            string         `json:"isbn"`
	Category        string         `json:"category"`
	PublicationDate string         `json:"publicationDate"`
	AverageScore    float64        `json:"averageScore"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type authorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Biography   string    `json:"biography"`
	Nationality string    `json:"nationality"`
	DateOfBirth string    `json:"dateOfBirth"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (req bookRequest) toInput() (catalog.BookInput, error) {
	var errs []domain.FieldError

	authorID, err := parseUUID("authorId", req.AuthorID)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "authorId", Message: "invalid uuid"})
	}
	published, err := parseDate("publicationDate", req.PublicationDate)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "publicationDate", Message: "expected YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return catalog.BookInput{}, domain.NewValidationErrors(errs)
	}

	return catalog.BookInput{
		Title:           req.Title,
		Description:     req.Description,
		AuthorID:        authorID,
		ISBN:            req.ISBN,
		Category:        req.Category,
		PublicationDate: published,
	}, nil
}

func (req authorRequest) toInput() (catalog.AuthorInput, error) {
	born, err := parseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return catalog.AuthorInput{}, err
	}
	return catalog.AuthorInput{
		Name:        req.Name,
		Biography:   req.Biography,
		Nationality: req.Nationality,
		DateOfBirth: born,
	}, nil
}

func toBookResponse(b *domain.Book, author *domain.Author) bookResponse {
	resp := bookResponse{
		ID:              b.ID.String(),
		Title:           b.Title,
		Description:     b.Description,
		AuthorID:        b.AuthorID.String(),
		ISBN:            b.ISBN,
		Category:        b.Category,
		PublicationDate: formatDate(b.PublicationDate),
		AverageScore:    b.AverageScore,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if author != nil {
		resp.Author = &authorSummary{ID: author.ID.String(), Name: author.Name}
	}
	return resp
}

func toAuthorResponse(a *domain.Author) authorResponse {
	return authorResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Biography:   a.Biography,
		Nationality: a.Nationality,
		DateOfBirth: formatDate(a.DateOfBirth),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// renderBooks embeds author summaries using the request's dataloader when
// one is installed.
func (h *CatalogHandler) renderBooks(ctx context.Context, books []domain.Book) ([]bookResponse, error) {
	var authors map[uuid.UUID]*domain.Author
	if loaders := dataloader.FromContext(ctx); loaders != nil && len(books) > 0 {
		var err error
		if authors, err = loaders.LoadAuthors(ctx, books); err != nil {
			return nil, err
		}
	}

	out := make([]bookResponse, len(books))
	for i := range books {
		out[i] = toBookResponse(&books[i], authors[books[i].AuthorID])
	}
	return out, nil
}

func (h *CatalogHandler) respondBook(w http.ResponseWriter, r *http.Request, status int, b *domain.Book) {
	rendered, err := h.renderBooks(r.Context(), []domain.Book{*b})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, rendered[0])
}

// ─── Books ──────────────────────────────────────────────────────────────────

// ListBooks handles GET /books?category=&authorId=&q=&limit=&offset=.
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BookFilter{
		Category: q.Get("category"),
		Query:    q.Get("q"),
	}

	authorID, err := parseUUID("authorId", q.Get("authorId"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if authorID != uuid.Nil {
		filter.AuthorID = &authorID
	}
	if filter.Limit, filter.Offset, err = pageParams(r); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	books, err := h.svc.ListBooks(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	rendered, err := h.renderBooks(r.Context(), books)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rendered)
}

// GetBook handles GET /books/{id}.
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.respondBook(w, r, http.StatusOK, book)
}

// CreateBook handles POST /books.
func (h *CatalogHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	book, err := h.svc.CreateBook(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.respondBook(w, r, http.StatusCreated, book)
}

// UpdateBook handles PUT /books/{id}.
func (h *CatalogHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req bookRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	book, err := h.svc.UpdateBook(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.respondBook(w, r, http.StatusOK, book)
}

// DeleteBook handles DELETE /books/{id}.
func (h *CatalogHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Authors ────────────────────────────────────────────────────────────────

// ListAuthors handles GET /authors?limit=&offset=.
func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	authors, err := h.svc.ListAuthors(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	out := make([]authorResponse, len(authors))
	for i := range authors {
		out[i] = toAuthorResponse(&authors[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetAuthor handles GET /authors/{id}.
func (h *CatalogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	author, err := h.svc.GetAuthor(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthorResponse(author))
}

// CreateAuthor handles POST /authors.
func (h *CatalogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	author, err := h.svc.CreateAuthor(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAuthorResponse(author))
}

// UpdateAuthor handles PUT /authors/{id}.
func (h *CatalogHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req authorRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	author, err := h.svc.UpdateAuthor(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthorResponse(author))
}

// DeleteAuthor handles DELETE /authors/{id}. The author's books go with it.
func (h *CatalogHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteAuthor(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pageParams reads limit and offset. Missing values are zero and left to
// the service to default and clamp.
func pageParams(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	var errs []domain.FieldError
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a non-negative integer"})
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		}
	}
	if len(errs) > 0 {
		return 0, 0, domain.NewValidationErrors(errs)
	}
	return limit, offset, nil
}
