package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignRecord is one historical advertising effort of a business.
// AmountEarned is nil while the campaign is still running. Monetary
// amounts are decimals end to end; ROI is always derived, never stored.
type CampaignRecord struct {
	ID           int64
	BusinessID   int64
	AdMethodID   int64
	AmountSpent  decimal.Decimal
	AmountEarned *decimal.Decimal
	StartDate    time.Time
	EndDate      *time.Time
}

// Active reports whether the campaign is still running at the given time.
func (c CampaignRecord) Active(now time.Time) bool {
	return c.EndDate == nil || c.EndDate.After(now)
}

// Earned returns the earned amount, zero when the campaign has not
// reported earnings yet.
func (c CampaignRecord) Earned() decimal.Decimal {
	if c.AmountEarned == nil {
		return decimal.Zero
	}
	return *c.AmountEarned
}

// ROI returns the campaign's derived return on investment percentage.
func (c CampaignRecord) ROI() float64 {
	return ComputeROI(c.AmountSpent, c.Earned())
}

// AdMethod is a named advertising channel. Immutable reference data.
type AdMethod struct {
	ID   int64
	Name string
}

// Business identifies the entity recommendations are generated for. The
// geographic fields scope which external top performers are fetched for
// benchmarking; they are never used by the generation strategies
// themselves.
type Business struct {
	ID           int64
	Name         string
	BusinessType string
	Zip          string
	Latitude     float64
	Longitude    float64
}
