package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
	"adrec/internal/core/port"
)

// errInvalidReply marks any completion reply that fails extraction or
// validation. The caller treats it identically to a transport failure
// and falls back to the deterministic strategy; malformed data is never
// coerced into a partial result.
var errInvalidReply = errors.New("invalid completion reply")

// generationSystemPrompt instructs the model to convert an analysis
// context into ranked ad-method recommendations with a strict JSON
// output contract.
const generationSystemPrompt = `You are an advertising strategist for small businesses.
You will receive a performance summary of a business's past advertising campaigns.
Recommend which advertising methods the business should invest in next.

You must output ONLY a JSON object with these exact fields:
- summary: 1-3 sentence overview of your recommendations
- confidenceScore: number 0 to 1 (overall confidence)
- recommendations: array of 1 to 3 objects, each with:
  - adMethodId: integer, MUST be an id from the provided ad-method catalog
  - rank: integer 1 to 3, 1 = highest priority, no duplicates
  - predictedRoi: expected return on investment percentage
  - recommendedBudget: suggested spend in currency units
  - rationale: 1-2 sentences justifying this method
  - confidenceScore: number 0 to 1 for this item
  - scenarioData: object with conservative, moderate and aggressive keys,
    each {budget, predictedRoi}; budgets and predictedRoi must be
    non-decreasing from conservative to aggressive

CRITICAL RULES:
1. Never invent ad-method ids; use only ids listed in the catalog
2. Rank values must start at 1 and have no gaps or duplicates
3. Use strict JSON numeric literals (e.g. 0.85, never .85)
4. Output ONLY the JSON object, no markdown, no explanation`

// renderUserPrompt serializes the analysis context as the structured
// text block embedded in the completion request.
func renderUserPrompt(analysis domain.AnalysisContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Business: %s (type: %s)\n", analysis.BusinessName, analysis.BusinessType)
	m := analysis.Metrics
	fmt.Fprintf(&b, "Aggregate metrics: average ROI %.1f%%, total spent %s, total earned %s, %d active of %d campaigns\n",
		m.AverageROI, m.TotalSpent.StringFixed(2), m.TotalEarned.StringFixed(2), m.ActiveCampaigns, m.TotalCampaigns)

	b.WriteString("\nAd-method catalog (id: name):\n")
	for _, method := range analysis.Catalog {
		fmt.Fprintf(&b, "- %d: %s\n", method.ID, method.Name)
	}

	b.WriteString("\nPast campaigns (method, spent, earned, ROI):\n")
	if len(analysis.Campaigns) == 0 {
		b.WriteString("- none\n")
	}
	for _, cp := range analysis.Campaigns {
		fmt.Fprintf(&b, "- %s: spent %s, earned %s, ROI %.1f%%\n",
			analysis.MethodName(cp.Campaign.AdMethodID),
			cp.Campaign.AmountSpent.StringFixed(2), cp.Campaign.Earned().StringFixed(2), cp.ROI)
	}

	if len(analysis.UnusedMethods) > 0 {
		b.WriteString("\nMethods this business has never used:\n")
		for _, method := range analysis.UnusedMethods {
			fmt.Fprintf(&b, "- %d: %s\n", method.ID, method.Name)
		}
	}

	if len(analysis.TopPerformers) > 0 {
		b.WriteString("\nTop performing campaigns of similar nearby businesses (method, ROI):\n")
		for _, tp := range analysis.TopPerformers {
			fmt.Fprintf(&b, "- %s: ROI %.1f%%\n", analysis.MethodName(tp.Campaign.AdMethodID), tp.ROI)
		}
	}

	return b.String()
}

type replyScenario struct {
	Budget       *decimal.Decimal `json:"budget"`
	PredictedROI *float64         `json:"predictedRoi"`
}

type replyScenarios struct {
	Conservative *replyScenario `json:"conservative"`
	Moderate     *replyScenario `json:"moderate"`
	Aggressive   *replyScenario `json:"aggressive"`
}

type replyItem struct {
	AdMethodID        *int64           `json:"adMethodId"`
	Rank              *int             `json:"rank"`
	PredictedROI      *float64         `json:"predictedRoi"`
	RecommendedBudget *decimal.Decimal `json:"recommendedBudget"`
	Rationale         string           `json:"rationale"`
	ConfidenceScore   *float64         `json:"confidenceScore"`
	ScenarioData      *replyScenarios  `json:"scenarioData"`
}

type replyEnvelope struct {
	Summary         string      `json:"summary"`
	ConfidenceScore *float64    `json:"confidenceScore"`
	Recommendations []replyItem `json:"recommendations"`
}

// extractJSONBlock strips optional markdown fences and returns the
// outermost JSON object found in the reply text. The model may wrap the
// object in prose on either side.
func extractJSONBlock(raw string) (string, bool) {
	stripped := raw
	for _, fence := range []string{"```json", "```JSON", "```"} {
		if idx := strings.Index(stripped, fence); idx != -1 {
			stripped = stripped[idx+len(fence):]
			if end := strings.Index(stripped, "```"); end != -1 {
				stripped = stripped[:end]
			}
			break
		}
	}

	start := strings.Index(stripped, "{")
	end := strings.LastIndex(stripped, "}")
	if start != -1 && end > start {
		return stripped[start : end+1], true
	}
	return "", false
}

// parseReply deserializes and validates a raw completion reply against
// the analysis context. Any violation returns an error wrapping
// errInvalidReply; there are no partial results.
func parseReply(raw string, analysis domain.AnalysisContext) (*port.GenerationResult, error) {
	block, ok := extractJSONBlock(raw)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in reply", errInvalidReply)
	}

	var env replyEnvelope
	if err := json.Unmarshal([]byte(block), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidReply, err)
	}

	if strings.TrimSpace(env.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", errInvalidReply)
	}
	if env.ConfidenceScore == nil || *env.ConfidenceScore < 0 || *env.ConfidenceScore > 1 {
		return nil, fmt.Errorf("%w: confidenceScore missing or out of range", errInvalidReply)
	}
	if len(env.Recommendations) == 0 || len(env.Recommendations) > 3 {
		return nil, fmt.Errorf("%w: recommendations length %d", errInvalidReply, len(env.Recommendations))
	}

	seenRanks := make(map[int]bool, len(env.Recommendations))
	items := make([]domain.RecommendationItem, 0, len(env.Recommendations))
	for i, rec := range env.Recommendations {
		item, err := validateReplyItem(rec, analysis)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", errInvalidReply, i, err)
		}
		if item.Rank < 1 || item.Rank > len(env.Recommendations) || seenRanks[item.Rank] {
			return nil, fmt.Errorf("%w: item %d: rank %d is not a permutation of 1..%d",
				errInvalidReply, i, item.Rank, len(env.Recommendations))
		}
		seenRanks[item.Rank] = true
		items = append(items, item)
	}

	return &port.GenerationResult{
		Summary:         env.Summary,
		ConfidenceScore: *env.ConfidenceScore,
		Items:           items,
	}, nil
}

func validateReplyItem(rec replyItem, analysis domain.AnalysisContext) (domain.RecommendationItem, error) {
	var zero domain.RecommendationItem

	if rec.AdMethodID == nil {
		return zero, errors.New("missing adMethodId")
	}
	if !analysis.HasMethod(*rec.AdMethodID) {
		return zero, fmt.Errorf("adMethodId %d not in catalog", *rec.AdMethodID)
	}
	if rec.Rank == nil {
		return zero, errors.New("missing rank")
	}
	if rec.PredictedROI == nil {
		return zero, errors.New("missing predictedRoi")
	}
	if rec.RecommendedBudget == nil {
		return zero, errors.New("missing recommendedBudget")
	}
	if strings.TrimSpace(rec.Rationale) == "" {
		return zero, errors.New("missing rationale")
	}
	if rec.ConfidenceScore == nil || *rec.ConfidenceScore < 0 || *rec.ConfidenceScore > 1 {
		return zero, errors.New("confidenceScore missing or out of range")
	}

	scenarios, err := validateScenarios(rec.ScenarioData)
	if err != nil {
		return zero, err
	}

	return domain.RecommendationItem{
		AdMethodID:        *rec.AdMethodID,
		Rank:              *rec.Rank,
		PredictedROI:      *rec.PredictedROI,
		RecommendedBudget: *rec.RecommendedBudget,
		Rationale:         rec.Rationale,
		ConfidenceScore:   *rec.ConfidenceScore,
		Scenarios:         scenarios,
	}, nil
}

func validateScenarios(s *replyScenarios) (domain.ScenarioData, error) {
	var zero domain.ScenarioData
	if s == nil {
		return zero, errors.New("missing scenarioData")
	}
	conservative, err := scenarioOf(s.Conservative, "conservative")
	if err != nil {
		return zero, err
	}
	moderate, err := scenarioOf(s.Moderate, "moderate")
	if err != nil {
		return zero, err
	}
	aggressive, err := scenarioOf(s.Aggressive, "aggressive")
	if err != nil {
		return zero, err
	}
	data := domain.ScenarioData{Conservative: conservative, Moderate: moderate, Aggressive: aggressive}
	if !data.Monotone() {
		return zero, errors.New("scenario budgets or ROI not monotone")
	}
	return data, nil
}

func scenarioOf(s *replyScenario, name string) (domain.Scenario, error) {
	if s == nil || s.Budget == nil || s.PredictedROI == nil {
		return domain.Scenario{}, fmt.Errorf("missing %s scenario", name)
	}
	return domain.Scenario{Budget: *s.Budget, PredictedROI: *s.PredictedROI}, nil
}
