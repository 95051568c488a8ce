package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type reservationAdmin interface {
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

// AdminHandler serves /admin endpoints. The router guards the whole group
// with middleware.RequireAdmin.
type AdminHandler struct {
	reservations reservationAdmin
	log          *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(reservations reservationAdmin, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reservations: reservations,
		log:          logger.With("handler", "admin"),
	}
}

// DeleteReservation handles DELETE /admin/reservations/{id}, freeing the
// book's reservation slot.
func (h *AdminHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.reservations.DeleteReservation(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.log.InfoContext(r.Context(), "reservation removed", slog.String("reservation_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
