package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adrec/internal/core/domain"
	"adrec/internal/core/port"
)

const (
	// topPerformerLimit caps how many external benchmark campaigns are
	// embedded in the analysis context.
	topPerformerLimit = 5
	// defaultRadiusMiles scopes the top-performer lookup around the
	// business's location.
	defaultRadiusMiles = 25
)

// RecommendationUseCase orchestrates the generation pipeline: context
// assembly, LLM-first generation with deterministic fallback, and
// atomic persistence. It implements port.RecommendationUseCase.
type RecommendationUseCase struct {
	perf     port.PerformanceRepository
	repo     port.RecommendationRepository
	llm      *LLMStrategy
	fallback *FallbackStrategy
	logger   *slog.Logger

	now func() time.Time
}

// NewRecommendationUseCase wires the pipeline. The LLM strategy may be
// built around a nil client, in which case every generation goes
// straight to the fallback.
func NewRecommendationUseCase(
	perf port.PerformanceRepository,
	repo port.RecommendationRepository,
	llm *LLMStrategy,
	fallback *FallbackStrategy,
	logger *slog.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		perf:     perf,
		repo:     repo,
		llm:      llm,
		fallback: fallback,
		logger:   logger,
		now:      time.Now,
	}
}

// GenerateRecommendations runs the full pipeline for one business. An
// unknown business or empty campaign history degrades to a generic
// fallback set instead of failing; only storage errors surface.
func (u *RecommendationUseCase) GenerateRecommendations(ctx context.Context, businessID int64) (*port.GenerateResult, error) {
	// correlation id for every log line of this generation call
	logger := u.logger.With(slog.String("generation_id", uuid.NewString()), slog.Int64("business_id", businessID))

	business, err := u.perf.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.perf.GetCampaigns(ctx, businessID)
	if err != nil {
		return nil, err
	}
	catalog, err := u.perf.GetAdMethods(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		// a set holds 1 to 3 items, impossible without any method
		return nil, port.ErrNoAdMethods
	}

	now := u.now()

	var (
		top []domain.CampaignRecord
		geo *domain.GeoFilter
	)
	if business != nil {
		geo = &domain.GeoFilter{
			Latitude:    business.Latitude,
			Longitude:   business.Longitude,
			Zip:         business.Zip,
			RadiusMiles: defaultRadiusMiles,
		}
		top, err = u.perf.GetTopPerformers(ctx, businessID, business.BusinessType, geo, topPerformerLimit)
		if err != nil {
			// Benchmarks only enrich the context; generation proceeds without them.
			logger.Warn("top performer lookup failed", slog.Any("error", err))
			top = nil
		}
	}

	if business == nil {
		business = &domain.Business{ID: businessID}
		logger.Warn("unknown business, generating generic recommendations")
	}

	analysis := BuildAnalysisContext(business, campaigns, catalog, top, geo, now)
	result := u.generate(ctx, logger, analysis)

	set := &domain.RecommendationSet{
		BusinessID:      businessID,
		GeneratedAt:     now,
		ExpiresAt:       now.Add(domain.RecommendationTTL),
		Summary:         result.Summary,
		ConfidenceScore: result.ConfidenceScore,
	}
	if err = u.repo.CreateSet(ctx, set, result.Items); err != nil {
		return nil, err
	}
	logger.Info("recommendations generated", slog.Int64("set_id", set.ID), slog.Int("items", len(result.Items)))

	return &port.GenerateResult{
		RecommendationSetID: set.ID,
		Summary:             result.Summary,
		ConfidenceScore:     result.ConfidenceScore,
		Items:               result.Items,
	}, nil
}

// generate tries the LLM strategy once and falls back on any failure.
// The two strategies are never blended within one call.
func (u *RecommendationUseCase) generate(ctx context.Context, logger *slog.Logger, analysis domain.AnalysisContext) *port.GenerationResult {
	if u.llm != nil && u.llm.Available() {
		result, err := u.llm.Generate(ctx, analysis)
		if err == nil {
			return result
		}
		logger.Warn("llm generation failed, using fallback", slog.Any("error", err))
	}
	result, _ := u.fallback.Generate(ctx, analysis)
	return result
}

// RecordInteraction appends one interaction row. Interactions never
// mutate or delete the set they reference.
func (u *RecommendationUseCase) RecordInteraction(ctx context.Context, req port.InteractionReq) error {
	if !req.Type.Valid() {
		return port.ErrInvalidInteractionType
	}
	in := &domain.UserInteraction{
		SetID:     req.SetID,
		UserID:    req.UserID,
		Type:      req.Type,
		Feedback:  req.Feedback,
		CreatedAt: u.now(),
	}
	return u.repo.AddInteraction(ctx, in)
}

// FetchActive returns the newest non-expired set for the business, or
// nil when none exists. A freshly read set is marked viewed.
func (u *RecommendationUseCase) FetchActive(ctx context.Context, businessID int64) (*port.ActiveSet, error) {
	set, items, err := u.repo.GetActiveSet(ctx, businessID, u.now())
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, nil
	}
	if !set.IsViewed {
		if err = u.repo.MarkViewed(ctx, set.ID); err != nil {
			u.logger.Warn("mark viewed failed", slog.Any("error", err))
		} else {
			set.IsViewed = true
		}
	}
	return &port.ActiveSet{Set: *set, Items: items}, nil
}
