package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
	"adrec/internal/core/port"
)

// Fallback heuristics. Hand-tuned defaults: the proven channel gets the
// largest allocation, new or unused channels get smaller exploratory
// stakes. Budgets and predicted ROI both grow from conservative to
// aggressive within every rank.
const (
	fallbackConfidence = 0.7
	baselineSpending   = 500
)

var (
	rankBudgetMultipliers = [3][3]float64{
		{1.0, 1.2, 1.5},
		{0.6, 0.8, 1.0},
		{0.3, 0.5, 0.7},
	}
	rankROISteps = [3][3]float64{
		{65, 75, 80},
		{55, 60, 65},
		{45, 50, 55},
	}
	rankItemConfidence = [3]float64{0.75, 0.65, 0.55}
)

// FallbackStrategy is the deterministic, dependency-free generation
// path. It is used whenever the LLM strategy is unavailable or its
// output fails validation, and it always succeeds with 1 to 3 items;
// fewer than 3 only when fewer than 3 distinct ad methods exist.
type FallbackStrategy struct{}

// NewFallbackStrategy returns the deterministic strategy.
func NewFallbackStrategy() *FallbackStrategy {
	return &FallbackStrategy{}
}

type fallbackPick struct {
	method  domain.AdMethod
	roi     float64
	fromTop bool // chosen as the business's proven top performer
	unused  bool // channel the business has never run
}

// Generate ranks the business's own campaigns by ROI and allocates
// budget scenarios per rank. It is a pure function of the analysis
// context and never returns an error.
func (FallbackStrategy) Generate(_ context.Context, analysis domain.AnalysisContext) (*port.GenerationResult, error) {
	picks := selectMethods(analysis)

	avgSpending := decimal.NewFromInt(baselineSpending)
	if n := analysis.Metrics.TotalCampaigns; n > 0 {
		avgSpending = analysis.Metrics.TotalSpent.Div(decimal.NewFromInt(int64(n)))
	}

	items := make([]domain.RecommendationItem, 0, len(picks))
	for i, p := range picks {
		scenarios := domain.ScenarioData{
			Conservative: scenario(avgSpending, rankBudgetMultipliers[i][0], rankROISteps[i][0]),
			Moderate:     scenario(avgSpending, rankBudgetMultipliers[i][1], rankROISteps[i][1]),
			Aggressive:   scenario(avgSpending, rankBudgetMultipliers[i][2], rankROISteps[i][2]),
		}
		items = append(items, domain.RecommendationItem{
			AdMethodID:        p.method.ID,
			Rank:              i + 1,
			PredictedROI:      scenarios.Moderate.PredictedROI,
			RecommendedBudget: scenarios.Moderate.Budget,
			Rationale:         rationaleFor(i, p),
			ConfidenceScore:   rankItemConfidence[i],
			Scenarios:         scenarios,
		})
	}

	return &port.GenerationResult{
		Summary:         summaryFor(analysis, picks),
		ConfidenceScore: fallbackConfidence,
		Items:           items,
	}, nil
}

func scenario(avg decimal.Decimal, multiplier, roi float64) domain.Scenario {
	return domain.Scenario{
		Budget:       avg.Mul(decimal.NewFromFloat(multiplier)).Round(2),
		PredictedROI: roi,
	}
}

// selectMethods picks up to three distinct ad methods: the business's
// two best-performing channels first, then an unused channel to bias
// toward exploration, topping up from the catalog when history is thin.
func selectMethods(analysis domain.AnalysisContext) []fallbackPick {
	ranked := make([]domain.CampaignPerformance, len(analysis.Campaigns))
	copy(ranked, analysis.Campaigns)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ROI > ranked[j].ROI })

	var picks []fallbackPick
	chosen := make(map[int64]bool, 3)
	add := func(p fallbackPick) {
		if len(picks) < 3 && !chosen[p.method.ID] {
			picks = append(picks, p)
			chosen[p.method.ID] = true
		}
	}

	// Ranks 1 and 2 come from the business's own history, best ROI first.
	for _, cp := range ranked {
		if len(picks) == 2 {
			break
		}
		name := analysis.MethodName(cp.Campaign.AdMethodID)
		add(fallbackPick{
			method:  domain.AdMethod{ID: cp.Campaign.AdMethodID, Name: name},
			roi:     cp.ROI,
			fromTop: len(picks) == 0,
		})
	}

	// Without history, or with a single channel, top up from the catalog.
	for _, m := range analysis.Catalog {
		if len(picks) == 2 {
			break
		}
		add(fallbackPick{method: m, unused: analysis.IsUnused(m.ID)})
	}

	// Rank 3 prefers a never-used channel for diversification.
	for _, m := range analysis.UnusedMethods {
		if len(picks) == 3 {
			break
		}
		add(fallbackPick{method: m, unused: true})
	}
	for _, m := range analysis.Catalog {
		if len(picks) == 3 {
			break
		}
		add(fallbackPick{method: m, unused: analysis.IsUnused(m.ID)})
	}

	return picks
}

func rationaleFor(rank int, p fallbackPick) string {
	switch rank {
	case 0:
		if p.fromTop {
			return fmt.Sprintf("%s delivered your strongest return at %.1f%% ROI, so it gets the largest share of budget.", p.method.Name, p.roi)
		}
		return fmt.Sprintf("No campaign history to draw on yet; %s is a sensible first channel to establish a baseline.", p.method.Name)
	case 1:
		if p.unused {
			return fmt.Sprintf("%s broadens your mix beyond the lead channel at a moderate stake.", p.method.Name)
		}
		return fmt.Sprintf("Your %s campaigns rank second on ROI; keep them funded at a moderate level.", p.method.Name)
	default:
		if p.unused {
			return fmt.Sprintf("You have never run %s; a small exploratory budget tests the channel at low risk.", p.method.Name)
		}
		return fmt.Sprintf("A small allocation to %s keeps your advertising mix diversified.", p.method.Name)
	}
}

func summaryFor(analysis domain.AnalysisContext, picks []fallbackPick) string {
	if len(picks) == 0 {
		return "No advertising methods are available to recommend yet."
	}
	lead := picks[0].method.Name
	if analysis.Metrics.TotalCampaigns == 0 {
		return fmt.Sprintf("Without campaign history to draw on, start with %s and expand once results come in.", lead)
	}
	return fmt.Sprintf("Across %d campaigns averaging %.1f%% ROI, %s is your proven channel: scale it first and stake smaller budgets on the alternatives.",
		analysis.Metrics.TotalCampaigns, analysis.Metrics.AverageROI, lead)
}
