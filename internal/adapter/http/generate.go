package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
)

type generateRequest struct {
	BusinessID int64 `json:"business_id"`
}

type generateResponse struct {
	Success             bool      `json:"success"`
	RecommendationSetID int64     `json:"recommendation_set_id"`
	Summary             string    `json:"summary"`
	ConfidenceScore     float64   `json:"confidence_score"`
	Items               []itemDTO `json:"items"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type itemDTO struct {
	AdMethodID        int64               `json:"ad_method_id"`
	Rank              int                 `json:"rank"`
	PredictedROI      float64             `json:"predicted_roi"`
	RecommendedBudget decimal.Decimal     `json:"recommended_budget"`
	Rationale         string              `json:"rationale"`
	ConfidenceScore   float64             `json:"confidence_score"`
	ScenarioData      domain.ScenarioData `json:"scenario_data"`
}

func itemDTOs(items []domain.RecommendationItem) []itemDTO {
	out := make([]itemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, itemDTO{
			AdMethodID:        item.AdMethodID,
			Rank:              item.Rank,
			PredictedROI:      item.PredictedROI,
			RecommendedBudget: item.RecommendedBudget,
			Rationale:         item.Rationale,
			ConfidenceScore:   item.ConfidenceScore,
			ScenarioData:      item.Scenarios,
		})
	}
	return out
}

// handleGenerate runs the generation pipeline for a business. The
// response never reveals which generation strategy produced the set; a
// failure here means storage was unhealthy.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BusinessID == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.svc.GenerateRecommendations(r.Context(), req.BusinessID)
	if err != nil {
		h.logger.Error("generate recommendations error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	h.writeJSON(w, http.StatusOK, generateResponse{
		Success:             true,
		RecommendationSetID: result.RecommendationSetID,
		Summary:             result.Summary,
		ConfidenceScore:     result.ConfidenceScore,
		Items:               itemDTOs(result.Items),
	})
}
