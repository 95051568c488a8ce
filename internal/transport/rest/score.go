package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/score"
)

type scoreService interface {
	Submit(ctx context.Context, bookID uuid.UUID, value int) (*score.Result, error)
}

// ScoreHandler serves POST /scores.
type ScoreHandler struct {
	svc scoreService
	log *slog.Logger
}

// NewScoreHandler creates a ScoreHandler.
func NewScoreHandler(svc scoreService, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{svc: svc, log: logger.With("handler", "score")}
}

type scoreRequest struct {
	BookID string `json:"bookId"`
	Score  *int   `json:"score"`
}

type scoreResponse struct {
	ID           string    `json:"id"`
	BookID       string    `json:"bookId"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"createdAt"`
	AverageScore float64   `json:"averageScore"`
}

// Submit handles POST /scores.
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var errs []domain.FieldError
	bookID, err := parseUUID("bookId", req.BookID)
	if err != nil || bookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "bookId", Message: "valid uuid required"})
	}
	if req.Score == nil {
		errs = append(errs, domain.FieldError{Field: "score", Message: "required"})
	}
	if len(errs) > 0 {
		writeDomainError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	result, err := h.svc.Submit(r.Context(), bookID, *req.Score)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, scoreResponse{
		ID:           result.Score.ID.String(),
		BookID:       result.Score.BookID.String(),
		Score:        result.Score.Value,
		CreatedAt:    result.Score.CreatedAt,
		AverageScore: result.AverageScore,
	})
}
