package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type activeResponse struct {
	RecommendationSetID int64     `json:"recommendation_set_id"`
	GeneratedAt         time.Time `json:"generated_at"`
	ExpiresAt           time.Time `json:"expires_at"`
	Summary             string    `json:"summary"`
	ConfidenceScore     float64   `json:"confidence_score"`
	IsViewed            bool      `json:"is_viewed"`
	Items               []itemDTO `json:"items"`
}

// handleActive returns the newest non-expired recommendation set for a
// business, or 204 when none is active. Expired sets are treated as
// absent; rows are never deleted here.
func (h *Handler) handleActive(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(r.URL.Query().Get("business_id"), 10, 64)
	if err != nil || businessID == 0 {
		http.Error(w, "invalid business_id", http.StatusBadRequest)
		return
	}

	active, err := h.svc.FetchActive(r.Context(), businessID)
	if err != nil {
		h.logger.Error("fetch active error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if active == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, activeResponse{
		RecommendationSetID: active.Set.ID,
		GeneratedAt:         active.Set.GeneratedAt,
		ExpiresAt:           active.Set.ExpiresAt,
		Summary:             active.Set.Summary,
		ConfidenceScore:     active.Set.ConfidenceScore,
		IsViewed:            active.Set.IsViewed,
		Items:               itemDTOs(active.Items),
	})
}
