package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adrec/internal/core/domain"
	"adrec/internal/core/port"
)

type interactionRequest struct {
	UserID   string  `json:"user_id"`
	Type     string  `json:"type"`
	Feedback *string `json:"feedback,omitempty"`
}

// handleInteraction appends an IMPLEMENT, DISMISS or FEEDBACK record to
// a recommendation set. Interactions are additive history; nothing is
// ever mutated or deleted.
func (h *Handler) handleInteraction(w http.ResponseWriter, r *http.Request) {
	setID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid set id", http.StatusBadRequest)
		return
	}

	var req interactionRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err = h.svc.RecordInteraction(r.Context(), port.InteractionReq{
		SetID:    setID,
		UserID:   req.UserID,
		Type:     domain.InteractionType(req.Type),
		Feedback: req.Feedback,
	})
	switch {
	case errors.Is(err, port.ErrInvalidInteractionType):
		http.Error(w, "invalid interaction type", http.StatusBadRequest)
	case errors.Is(err, port.ErrSetNotFound):
		http.NotFound(w, r)
	case err != nil:
		h.logger.Error("record interaction error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
