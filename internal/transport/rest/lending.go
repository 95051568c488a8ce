package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type lendingService interface {
	Borrow(ctx context.Context, bookID uuid.UUID) (*domain.Borrowing, error)
	Return(ctx context.Context, borrowingID uuid.UUID) (*domain.Borrowing, error)
	ListBorrowings(ctx context.Context) ([]domain.Borrowing, error)
	Reserve(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	Now() time.Time
}

// LendingHandler serves /borrowings and /reservations for the current user.
type LendingHandler struct {
	svc lendingService
	log *slog.Logger
}

// NewLendingHandler creates a LendingHandler.
func NewLendingHandler(svc lendingService, logger *slog.Logger) *LendingHandler {
	return &LendingHandler{svc: svc, log: logger.With("handler", "lending")}
}

type bookRefRequest struct {
	BookID string `json:"bookId"`
}

type borrowingResponse struct {
	ID         string     `json:"id"`
	BookID     string     `json:"bookId"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	DueDate    string     `json:"dueDate"`
	ReturnedAt *time.Time `json:"returnedAt"`
	IsOverdue  bool       `json:"isOverdue"`
}

type reservationResponse struct {
	ID         string    `json:"id"`
	BookID     string    `json:"bookId"`
	ReservedAt time.Time `json:"reservedAt"`
}

func toBorrowingResponse(b *domain.Borrowing, now time.Time) borrowingResponse {
	return borrowingResponse{
		ID:         b.ID.String(),
		BookID:     b.BookID.String(),
		BorrowedAt: b.BorrowedAt,
		DueDate:    formatDate(b.DueDate),
		ReturnedAt: b.ReturnedAt,
		IsOverdue:  b.IsOverdue(now),
	}
}

func toReservationResponse(res *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:         res.ID.String(),
		BookID:     res.BookID.String(),
		ReservedAt: res.ReservedAt,
	}
}

func decodeBookRef(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	var req bookRefRequest
	if err := decodeBody(w, r, &req); err != nil {
		return uuid.Nil, err
	}
	if req.BookID == "" {
		return uuid.Nil, domain.NewValidationError("bookId", "required")
	}
	return parseUUID("bookId", req.BookID)
}

// Borrow handles POST /borrowings.
func (h *LendingHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	bookID, err := decodeBookRef(w, r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	b, err := h.svc.Borrow(r.Context(), bookID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBorrowingResponse(b, h.svc.Now()))
}

// Return handles POST /borrowings/{id}/return.
func (h *LendingHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	b, err := h.svc.Return(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBorrowingResponse(b, h.svc.Now()))
}

// ListBorrowings handles GET /borrowings.
func (h *LendingHandler) ListBorrowings(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListBorrowings(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	now := h.svc.Now()
	out := make([]borrowingResponse, len(list))
	for i := range list {
		out[i] = toBorrowingResponse(&list[i], now)
	}
	writeJSON(w, http.StatusOK, out)
}

// Reserve handles POST /reservations.
func (h *LendingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	bookID, err := decodeBookRef(w, r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	res, err := h.svc.Reserve(r.Context(), bookID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReservationResponse(res))
}

// ListReservations handles GET /reservations.
func (h *LendingHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListReservations(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	out := make([]reservationResponse, len(list))
	for i := range list {
		out[i] = toReservationResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, out)
}
