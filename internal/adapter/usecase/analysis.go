package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
)

// BuildAnalysisContext turns raw campaign, business and ad-method rows
// into the normalized context both generation strategies consume. It is
// a pure function of its inputs: no side effects, no I/O. A business
// with zero campaigns still yields a valid context with empty lists.
func BuildAnalysisContext(
	business *domain.Business,
	campaigns []domain.CampaignRecord,
	catalog []domain.AdMethod,
	topPerformers []domain.CampaignRecord,
	geo *domain.GeoFilter,
	now time.Time,
) domain.AnalysisContext {
	analysis := domain.AnalysisContext{
		Catalog: catalog,
		Geo:     geo,
	}
	if business != nil {
		analysis.BusinessID = business.ID
		analysis.BusinessName = business.Name
		analysis.BusinessType = business.BusinessType
	}

	used := make(map[int64]bool, len(campaigns))
	var (
		roiSum      float64
		totalSpent  = decimal.Zero
		totalEarned = decimal.Zero
		active      int
	)
	for _, c := range campaigns {
		roi := domain.ComputeROI(c.AmountSpent, c.Earned())
		analysis.Campaigns = append(analysis.Campaigns, domain.CampaignPerformance{Campaign: c, ROI: roi})
		roiSum += roi
		totalSpent = totalSpent.Add(c.AmountSpent)
		totalEarned = totalEarned.Add(c.Earned())
		if c.Active(now) {
			active++
		}
		used[c.AdMethodID] = true
	}

	analysis.Metrics = domain.BusinessMetrics{
		TotalSpent:      totalSpent,
		TotalEarned:     totalEarned,
		ActiveCampaigns: active,
		TotalCampaigns:  len(campaigns),
	}
	if len(campaigns) > 0 {
		analysis.Metrics.AverageROI = roiSum / float64(len(campaigns))
	}

	for _, p := range topPerformers {
		analysis.TopPerformers = append(analysis.TopPerformers, domain.CampaignPerformance{
			Campaign: p,
			ROI:      domain.ComputeROI(p.AmountSpent, p.Earned()),
		})
	}

	for _, m := range catalog {
		if !used[m.ID] {
			analysis.UnusedMethods = append(analysis.UnusedMethods, m)
		}
	}

	return analysis
}
