package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adrec/internal/core/domain"
	"adrec/internal/core/port"
	"adrec/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func expectPipelineReads(perf *mocks.MockPerformanceRepository) {
	business := &domain.Business{ID: 1, Name: "Cafe", BusinessType: "restaurant", Latitude: 40.7, Longitude: -74.0}
	perf.EXPECT().GetBusiness(mock.Anything, int64(1)).Return(business, nil)
	perf.EXPECT().GetCampaigns(mock.Anything, int64(1)).Return([]domain.CampaignRecord{
		testCampaign(1, 1000, 1500),
		testCampaign(2, 500, 400),
	}, nil)
	perf.EXPECT().GetAdMethods(mock.Anything).Return(testCatalog, nil)
	// the business's own id goes along so its campaigns are excluded
	// from the benchmark list
	perf.EXPECT().
		GetTopPerformers(mock.Anything, int64(1), "restaurant", mock.AnythingOfType("*domain.GeoFilter"), topPerformerLimit).
		Return(nil, nil)
}

// TestGenerateFallsBackOnLLMFailure asserts the availability guarantee:
// a dead completion provider is invisible to the caller, the
// deterministic strategy produces the set, and the persisted expiry is
// exactly seven days after generation.
func TestGenerateFallsBackOnLLMFailure(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)
	client := mocks.NewMockCompletionClient(t)

	expectPipelineReads(perf)
	client.EXPECT().
		Complete(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("", errors.New("timeout")).
		Once()
	repo.EXPECT().
		CreateSet(mock.Anything, mock.AnythingOfType("*domain.RecommendationSet"), mock.AnythingOfType("[]domain.RecommendationItem")).
		Run(func(ctx context.Context, set *domain.RecommendationSet, items []domain.RecommendationItem) {
			set.ID = 42
			if got := set.ExpiresAt.Sub(set.GeneratedAt); got != domain.RecommendationTTL {
				t.Errorf("expiry window = %v, want %v", got, domain.RecommendationTTL)
			}
			if set.IsViewed {
				t.Error("new set must not be viewed")
			}
			if len(items) == 0 || len(items) > 3 {
				t.Errorf("persisted %d items", len(items))
			}
		}).
		Return(nil)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(client), NewFallbackStrategy(), testLogger())

	result, err := svc.GenerateRecommendations(context.Background(), 1)
	if err != nil {
		t.Fatalf("GenerateRecommendations error: %v", err)
	}
	if result.RecommendationSetID != 42 {
		t.Fatalf("set id = %d, want 42", result.RecommendationSetID)
	}
	// the fallback's fixed overall confidence marks which strategy ran
	if result.ConfidenceScore != 0.7 {
		t.Fatalf("confidence = %v, want fallback's 0.7", result.ConfidenceScore)
	}
}

func TestGenerateUsesLLMResult(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)
	client := mocks.NewMockCompletionClient(t)

	expectPipelineReads(perf)
	client.EXPECT().
		Complete(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(validReply(fmt.Sprintf(validItem, 1, 1)), nil).
		Once()
	repo.EXPECT().
		CreateSet(mock.Anything, mock.AnythingOfType("*domain.RecommendationSet"), mock.AnythingOfType("[]domain.RecommendationItem")).
		Return(nil)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(client), NewFallbackStrategy(), testLogger())

	result, err := svc.GenerateRecommendations(context.Background(), 1)
	if err != nil {
		t.Fatalf("GenerateRecommendations error: %v", err)
	}
	if result.Summary != "push the proven channel" {
		t.Fatalf("summary = %q, want the model's summary", result.Summary)
	}
	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(result.Items))
	}
}

// TestGenerateWithoutProvider covers explicit dependency injection: a
// nil completion client routes straight to the fallback with no
// completion attempt at all.
func TestGenerateWithoutProvider(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	expectPipelineReads(perf)
	repo.EXPECT().
		CreateSet(mock.Anything, mock.AnythingOfType("*domain.RecommendationSet"), mock.AnythingOfType("[]domain.RecommendationItem")).
		Return(nil)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	result, err := svc.GenerateRecommendations(context.Background(), 1)
	if err != nil {
		t.Fatalf("GenerateRecommendations error: %v", err)
	}
	if result.ConfidenceScore != 0.7 {
		t.Fatalf("confidence = %v, want fallback's 0.7", result.ConfidenceScore)
	}
}

// TestGenerateStorageFailureSurfaces: persistence problems are the one
// error class the caller actually sees, and fallback never substitutes
// for storage.
func TestGenerateStorageFailureSurfaces(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	expectPipelineReads(perf)
	repo.EXPECT().
		CreateSet(mock.Anything, mock.AnythingOfType("*domain.RecommendationSet"), mock.AnythingOfType("[]domain.RecommendationItem")).
		Return(errors.New("connection lost"))

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	if _, err := svc.GenerateRecommendations(context.Background(), 1); err == nil {
		t.Fatal("expected storage error to surface")
	}
}

// TestGenerateUnknownBusiness: an unknown id degrades to a generic
// fallback set instead of refusing.
func TestGenerateUnknownBusiness(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	perf.EXPECT().GetBusiness(mock.Anything, int64(99)).Return(nil, nil)
	perf.EXPECT().GetCampaigns(mock.Anything, int64(99)).Return(nil, nil)
	perf.EXPECT().GetAdMethods(mock.Anything).Return(testCatalog, nil)
	repo.EXPECT().
		CreateSet(mock.Anything, mock.AnythingOfType("*domain.RecommendationSet"), mock.AnythingOfType("[]domain.RecommendationItem")).
		Run(func(ctx context.Context, set *domain.RecommendationSet, items []domain.RecommendationItem) {
			if len(items) != 3 {
				t.Errorf("expected a full generic set, got %d items", len(items))
			}
		}).
		Return(nil)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	if _, err := svc.GenerateRecommendations(context.Background(), 99); err != nil {
		t.Fatalf("unknown business must not fail: %v", err)
	}
}

// TestGenerateEmptyCatalog: without any ad method there is nothing to
// recommend, so generation refuses instead of persisting an empty set.
func TestGenerateEmptyCatalog(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	perf.EXPECT().GetBusiness(mock.Anything, int64(1)).Return(&domain.Business{ID: 1}, nil)
	perf.EXPECT().GetCampaigns(mock.Anything, int64(1)).Return(nil, nil)
	perf.EXPECT().GetAdMethods(mock.Anything).Return(nil, nil)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	_, err := svc.GenerateRecommendations(context.Background(), 1)
	if !errors.Is(err, port.ErrNoAdMethods) {
		t.Fatalf("expected ErrNoAdMethods, got %v", err)
	}
	repo.AssertNotCalled(t, "CreateSet", mock.Anything, mock.Anything, mock.Anything)
}

// TestRecordInteractionAppendOnly: a DISMISS followed by an IMPLEMENT
// for the same set and user lands as two distinct rows.
func TestRecordInteractionAppendOnly(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	var recorded []domain.UserInteraction
	repo.EXPECT().
		AddInteraction(mock.Anything, mock.AnythingOfType("*domain.UserInteraction")).
		Run(func(ctx context.Context, in *domain.UserInteraction) {
			recorded = append(recorded, *in)
		}).
		Return(nil).
		Times(2)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	for _, typ := range []domain.InteractionType{domain.InteractionDismiss, domain.InteractionImplement} {
		err := svc.RecordInteraction(context.Background(), port.InteractionReq{SetID: 5, UserID: "u1", Type: typ})
		if err != nil {
			t.Fatalf("RecordInteraction(%s) error: %v", typ, err)
		}
	}

	if len(recorded) != 2 {
		t.Fatalf("recorded %d interactions, want 2", len(recorded))
	}
	if recorded[0].Type != domain.InteractionDismiss || recorded[1].Type != domain.InteractionImplement {
		t.Fatalf("interaction order wrong: %+v", recorded)
	}
	if recorded[0].CreatedAt.IsZero() || recorded[1].CreatedAt.IsZero() {
		t.Fatal("interactions must be timestamped")
	}
}

func TestRecordInteractionRejectsUnknownType(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	err := svc.RecordInteraction(context.Background(), port.InteractionReq{SetID: 5, UserID: "u1", Type: "ARCHIVE"})
	if !errors.Is(err, port.ErrInvalidInteractionType) {
		t.Fatalf("expected ErrInvalidInteractionType, got %v", err)
	}
}

func TestFetchActiveMarksViewed(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	set := &domain.RecommendationSet{
		ID:          7,
		BusinessID:  1,
		GeneratedAt: time.Now().Add(-time.Hour),
		ExpiresAt:   time.Now().Add(6 * 24 * time.Hour),
		Summary:     "s",
	}
	items := []domain.RecommendationItem{{SetID: 7, AdMethodID: 1, Rank: 1}}

	repo.EXPECT().GetActiveSet(mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(set, items, nil)
	repo.EXPECT().MarkViewed(mock.Anything, int64(7)).Return(nil)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	active, err := svc.FetchActive(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchActive error: %v", err)
	}
	if active == nil || active.Set.ID != 7 || len(active.Items) != 1 {
		t.Fatalf("unexpected active set: %+v", active)
	}
	if !active.Set.IsViewed {
		t.Fatal("returned set should be marked viewed")
	}
}

func TestFetchActiveNone(t *testing.T) {
	perf := mocks.NewMockPerformanceRepository(t)
	repo := mocks.NewMockRecommendationRepository(t)

	repo.EXPECT().GetActiveSet(mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(nil, nil, nil)

	svc := NewRecommendationUseCase(perf, repo, NewLLMStrategy(nil), NewFallbackStrategy(), testLogger())

	active, err := svc.FetchActive(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchActive error: %v", err)
	}
	if active != nil {
		t.Fatalf("expected nil active set, got %+v", active)
	}
}
