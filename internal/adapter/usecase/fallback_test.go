package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
)

// TestFallbackEndToEnd covers the reference scenario: method A at 50%
// ROI beats method B at -20%, method C is unused, and the average spend
// of 750 drives the rank-1 budget ladder 750/900/1125.
func TestFallbackEndToEnd(t *testing.T) {
	business := &domain.Business{ID: 1, Name: "Cafe", BusinessType: "restaurant"}
	campaigns := []domain.CampaignRecord{
		testCampaign(1, 1000, 1500),
		testCampaign(2, 500, 400),
	}
	analysis := BuildAnalysisContext(business, campaigns, testCatalog, nil, nil, time.Now())

	result, err := NewFallbackStrategy().Generate(context.Background(), analysis)
	if err != nil {
		t.Fatalf("fallback returned error: %v", err)
	}
	if result.ConfidenceScore != 0.7 {
		t.Fatalf("overall confidence = %v, want 0.7", result.ConfidenceScore)
	}
	if result.Summary == "" {
		t.Fatal("expected non-empty summary")
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(result.Items))
	}

	wantMethods := []int64{1, 2, 3}
	for i, item := range result.Items {
		if item.Rank != i+1 {
			t.Fatalf("item %d rank = %d, want %d", i, item.Rank, i+1)
		}
		if item.AdMethodID != wantMethods[i] {
			t.Fatalf("rank %d method = %d, want %d", i+1, item.AdMethodID, wantMethods[i])
		}
		if item.Rationale == "" {
			t.Fatalf("rank %d has empty rationale", i+1)
		}
	}

	top := result.Items[0].Scenarios
	assertScenario(t, top.Conservative, 750, 65)
	assertScenario(t, top.Moderate, 900, 75)
	assertScenario(t, top.Aggressive, 1125, 80)

	second := result.Items[1].Scenarios
	assertScenario(t, second.Conservative, 450, 55)
	assertScenario(t, second.Moderate, 600, 60)
	assertScenario(t, second.Aggressive, 750, 65)

	third := result.Items[2].Scenarios
	assertScenario(t, third.Conservative, 225, 45)
	assertScenario(t, third.Moderate, 375, 50)
	assertScenario(t, third.Aggressive, 525, 55)
}

func assertScenario(t *testing.T, s domain.Scenario, budget int64, roi float64) {
	t.Helper()
	if !s.Budget.Equal(decimal.NewFromInt(budget)) {
		t.Fatalf("scenario budget = %s, want %d", s.Budget, budget)
	}
	if s.PredictedROI != roi {
		t.Fatalf("scenario ROI = %v, want %v", s.PredictedROI, roi)
	}
}

// TestFallbackNoHistory checks the degraded path: no campaigns means
// the catalog head leads with the baseline spending of 500.
func TestFallbackNoHistory(t *testing.T) {
	business := &domain.Business{ID: 2, Name: "New Shop"}
	analysis := BuildAnalysisContext(business, nil, testCatalog, nil, nil, time.Now())

	result, err := NewFallbackStrategy().Generate(context.Background(), analysis)
	if err != nil {
		t.Fatalf("fallback returned error: %v", err)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items from a 3-method catalog, got %d", len(result.Items))
	}
	if result.Items[0].AdMethodID != testCatalog[0].ID {
		t.Fatalf("rank 1 method = %d, want catalog head %d", result.Items[0].AdMethodID, testCatalog[0].ID)
	}
	assertScenario(t, result.Items[0].Scenarios.Conservative, 500, 65)
	assertScenario(t, result.Items[0].Scenarios.Moderate, 600, 75)
	assertScenario(t, result.Items[0].Scenarios.Aggressive, 750, 80)
}

// TestFallbackRankPermutation exercises thin catalogs: the strategy
// must always emit 1-3 items whose ranks are a permutation of 1..N,
// with fewer than 3 only when fewer than 3 distinct methods exist.
func TestFallbackRankPermutation(t *testing.T) {
	cases := []struct {
		name      string
		campaigns []domain.CampaignRecord
		catalog   []domain.AdMethod
		wantItems int
	}{
		{"single method no history", nil, testCatalog[:1], 1},
		{"two methods no history", nil, testCatalog[:2], 2},
		{"full catalog with history", []domain.CampaignRecord{testCampaign(1, 100, 200)}, testCatalog, 3},
		{"same method twice", []domain.CampaignRecord{testCampaign(1, 100, 200), testCampaign(1, 50, 80)}, testCatalog[:2], 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			analysis := BuildAnalysisContext(&domain.Business{ID: 1}, tc.campaigns, tc.catalog, nil, nil, time.Now())
			result, err := NewFallbackStrategy().Generate(context.Background(), analysis)
			if err != nil {
				t.Fatalf("fallback returned error: %v", err)
			}
			if len(result.Items) != tc.wantItems {
				t.Fatalf("got %d items, want %d", len(result.Items), tc.wantItems)
			}
			seen := map[int]bool{}
			methods := map[int64]bool{}
			for _, item := range result.Items {
				if item.Rank < 1 || item.Rank > len(result.Items) || seen[item.Rank] {
					t.Fatalf("rank %d breaks the 1..%d permutation", item.Rank, len(result.Items))
				}
				seen[item.Rank] = true
				if methods[item.AdMethodID] {
					t.Fatalf("method %d recommended twice", item.AdMethodID)
				}
				methods[item.AdMethodID] = true
				if !item.Scenarios.Monotone() {
					t.Fatalf("rank %d scenarios not monotone", item.Rank)
				}
			}
		})
	}
}

// TestFallbackPrefersUnusedForRankThree asserts the diversification
// bias: rank 3 goes to a channel the business has never run when one
// exists.
func TestFallbackPrefersUnusedForRankThree(t *testing.T) {
	campaigns := []domain.CampaignRecord{
		testCampaign(1, 100, 300),
		testCampaign(2, 100, 200),
		testCampaign(3, 100, 150),
	}
	catalog := append([]domain.AdMethod{}, testCatalog...)
	catalog = append(catalog, domain.AdMethod{ID: 4, Name: "Radio Spots"})

	analysis := BuildAnalysisContext(&domain.Business{ID: 1}, campaigns, catalog, nil, nil, time.Now())
	result, err := NewFallbackStrategy().Generate(context.Background(), analysis)
	if err != nil {
		t.Fatalf("fallback returned error: %v", err)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(result.Items))
	}
	if result.Items[2].AdMethodID != 4 {
		t.Fatalf("rank 3 method = %d, want unused method 4", result.Items[2].AdMethodID)
	}
}
