package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecommendationTTL is how long a generated set stays active. Expiry is
// a read-time policy: rows are never deleted, readers treat expired
// sets as absent.
const RecommendationTTL = 7 * 24 * time.Hour

// RecommendationSet is the header of one generation event for one
// business. It is created exactly once per successful generation and is
// never mutated afterwards except for the viewed flag.
type RecommendationSet struct {
	ID              int64
	BusinessID      int64
	GeneratedAt     time.Time
	ExpiresAt       time.Time
	Summary         string
	ConfidenceScore float64
	IsViewed        bool
}

// Expired reports whether the set is stale at the given time.
func (s RecommendationSet) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Scenario is one budget/predicted-ROI pairing offered to let a
// business pick a risk posture.
type Scenario struct {
	Budget       decimal.Decimal `json:"budget"`
	PredictedROI float64         `json:"predictedRoi"`
}

// ScenarioData carries the three named scenarios per item. Budgets and
// predicted ROI must both be non-decreasing from conservative through
// aggressive.
type ScenarioData struct {
	Conservative Scenario `json:"conservative"`
	Moderate     Scenario `json:"moderate"`
	Aggressive   Scenario `json:"aggressive"`
}

// Monotone reports whether both the budget and ROI orderings hold.
func (s ScenarioData) Monotone() bool {
	if s.Conservative.Budget.GreaterThan(s.Moderate.Budget) ||
		s.Moderate.Budget.GreaterThan(s.Aggressive.Budget) {
		return false
	}
	return s.Conservative.PredictedROI <= s.Moderate.PredictedROI &&
		s.Moderate.PredictedROI <= s.Aggressive.PredictedROI
}

// RecommendationItem is one ranked suggestion in a set. Rank values
// within a set form a permutation of 1..N where N is 1 to 3.
type RecommendationItem struct {
	ID                int64
	SetID             int64
	AdMethodID        int64
	Rank              int
	PredictedROI      float64
	RecommendedBudget decimal.Decimal
	Rationale         string
	ConfidenceScore   float64
	Scenarios         ScenarioData
}
