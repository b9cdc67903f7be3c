package domain

import "github.com/shopspring/decimal"

// GeoFilter scopes which external top performers were fetched for
// benchmarking. It never influences generation itself.
type GeoFilter struct {
	Latitude    float64
	Longitude   float64
	Zip         string
	RadiusMiles float64
}

// CampaignPerformance is a campaign annotated with its derived ROI.
type CampaignPerformance struct {
	Campaign CampaignRecord
	ROI      float64
}

// BusinessMetrics aggregates a business's campaign history.
type BusinessMetrics struct {
	AverageROI      float64
	TotalSpent      decimal.Decimal
	TotalEarned     decimal.Decimal
	ActiveCampaigns int
	TotalCampaigns  int
}

// AnalysisContext is the transient input to both generation strategies.
// It is never persisted. A business with no history still produces a
// valid context with empty campaign lists; the strategies tolerate it.
type AnalysisContext struct {
	BusinessID    int64
	BusinessName  string
	BusinessType  string
	Metrics       BusinessMetrics
	Campaigns     []CampaignPerformance
	TopPerformers []CampaignPerformance
	UnusedMethods []AdMethod
	Catalog       []AdMethod
	Geo           *GeoFilter
}

// MethodName resolves an ad-method id against the catalog. Falls back
// to an empty string for ids outside the catalog.
func (a AnalysisContext) MethodName(id int64) string {
	for _, m := range a.Catalog {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}

// HasMethod reports whether the catalog contains the given method id.
func (a AnalysisContext) HasMethod(id int64) bool {
	for _, m := range a.Catalog {
		if m.ID == id {
			return true
		}
	}
	return false
}

// IsUnused reports whether the business has never run the given method.
func (a AnalysisContext) IsUnused(id int64) bool {
	for _, m := range a.UnusedMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}
