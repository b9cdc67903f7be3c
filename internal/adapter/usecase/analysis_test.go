package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testCampaign(method int64, spent, earned int64) domain.CampaignRecord {
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	return domain.CampaignRecord{
		BusinessID:   1,
		AdMethodID:   method,
		AmountSpent:  dec(spent),
		AmountEarned: decPtr(earned),
		StartDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      &end,
	}
}

var testCatalog = []domain.AdMethod{
	{ID: 1, Name: "Social Media"},
	{ID: 2, Name: "Search Ads"},
	{ID: 3, Name: "Local Print"},
}

func TestBuildAnalysisContext(t *testing.T) {
	business := &domain.Business{ID: 1, Name: "Cafe", BusinessType: "restaurant"}
	campaigns := []domain.CampaignRecord{
		testCampaign(1, 1000, 1500),
		testCampaign(2, 500, 400),
	}
	running := domain.CampaignRecord{BusinessID: 1, AdMethodID: 1, AmountSpent: dec(300), StartDate: time.Now()}
	campaigns = append(campaigns, running)

	analysis := BuildAnalysisContext(business, campaigns, testCatalog, nil, nil, time.Now())

	if analysis.BusinessID != 1 || analysis.BusinessType != "restaurant" {
		t.Fatalf("business identity not carried: %+v", analysis)
	}
	if len(analysis.Campaigns) != 3 {
		t.Fatalf("expected 3 annotated campaigns, got %d", len(analysis.Campaigns))
	}
	if analysis.Campaigns[0].ROI != 50 {
		t.Fatalf("campaign 0 ROI = %v, want 50", analysis.Campaigns[0].ROI)
	}
	if analysis.Campaigns[1].ROI != -20 {
		t.Fatalf("campaign 1 ROI = %v, want -20", analysis.Campaigns[1].ROI)
	}

	m := analysis.Metrics
	if m.TotalCampaigns != 3 || m.ActiveCampaigns != 1 {
		t.Fatalf("campaign counts = %d total, %d active", m.TotalCampaigns, m.ActiveCampaigns)
	}
	if !m.TotalSpent.Equal(dec(1800)) {
		t.Fatalf("total spent = %s, want 1800", m.TotalSpent)
	}
	if !m.TotalEarned.Equal(dec(1900)) {
		t.Fatalf("total earned = %s, want 1900", m.TotalEarned)
	}

	if len(analysis.UnusedMethods) != 1 || analysis.UnusedMethods[0].ID != 3 {
		t.Fatalf("unused methods = %+v, want only id 3", analysis.UnusedMethods)
	}
}

// TestBuildAnalysisContextEmpty ensures zero campaigns is not an error:
// the context stays valid with empty lists and the whole catalog unused.
func TestBuildAnalysisContextEmpty(t *testing.T) {
	business := &domain.Business{ID: 9, Name: "New Shop", BusinessType: "retail"}
	analysis := BuildAnalysisContext(business, nil, testCatalog, nil, nil, time.Now())

	if len(analysis.Campaigns) != 0 {
		t.Fatalf("expected no campaigns, got %d", len(analysis.Campaigns))
	}
	if analysis.Metrics.AverageROI != 0 || analysis.Metrics.TotalCampaigns != 0 {
		t.Fatalf("expected zeroed metrics, got %+v", analysis.Metrics)
	}
	if len(analysis.UnusedMethods) != len(testCatalog) {
		t.Fatalf("expected full catalog unused, got %d", len(analysis.UnusedMethods))
	}
}
