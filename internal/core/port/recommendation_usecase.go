package port

import (
	"context"

	"adrec/internal/core/domain"
)

// RecommendationUseCase defines the business operations exposed by the
// recommendation engine. This interface is the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type RecommendationUseCase interface {
	// GenerateRecommendations runs the full pipeline for a business:
	// context assembly, LLM-backed generation with deterministic
	// fallback, and atomic persistence. Generation-strategy failures are
	// absorbed internally; only storage failures surface as errors.
	GenerateRecommendations(ctx context.Context, businessID int64) (*GenerateResult, error)

	// RecordInteraction appends a user interaction to a set. Sets and
	// items are never mutated or deleted by interactions.
	RecordInteraction(ctx context.Context, req InteractionReq) error

	// FetchActive returns the newest non-expired recommendation set for
	// a business, or nil when none exists. A returned set is marked
	// viewed.
	FetchActive(ctx context.Context, businessID int64) (*ActiveSet, error)
}

// GenerateResult is the DTO returned to the inbound adapter after a
// successful generation call.
type GenerateResult struct {
	RecommendationSetID int64
	Summary             string
	ConfidenceScore     float64
	Items               []domain.RecommendationItem
}

// InteractionReq carries one interaction to record.
type InteractionReq struct {
	SetID    int64
	UserID   string
	Type     domain.InteractionType
	Feedback *string
}

// ActiveSet pairs a recommendation header with its ranked items.
type ActiveSet struct {
	Set   domain.RecommendationSet
	Items []domain.RecommendationItem
}

// GenerationStrategy produces a recommendation set shape from an
// analysis context. The LLM-backed strategy and the deterministic
// fallback are interchangeable implementations; the fallback never
// fails.
type GenerationStrategy interface {
	Generate(ctx context.Context, analysis domain.AnalysisContext) (*GenerationResult, error)
}

// GenerationResult is the strategy output before persistence assigns
// identifiers.
type GenerationResult struct {
	Summary         string
	ConfidenceScore float64
	Items           []domain.RecommendationItem
}
