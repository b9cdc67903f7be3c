package port

import (
	"context"
	"errors"
	"time"

	"adrec/internal/core/domain"
)

var (
	ErrInvalidInteractionType = errors.New("invalid interaction type")
	ErrSetNotFound            = errors.New("recommendation set not found")
	// ErrNoAdMethods means the ad-method catalog is empty. A set holds
	// one to three items, so no valid set can be generated without at
	// least one method to recommend.
	ErrNoAdMethods = errors.New("ad method catalog is empty")
)

// RecommendationRepository is the outbound persistence port for the
// recommendation lifecycle. Implementations must insert a set's header
// and items atomically: a partial write must never become visible to
// readers.
type RecommendationRepository interface {
	// CreateSet persists the header and all items in one transaction,
	// filling in the generated ids on success.
	CreateSet(ctx context.Context, set *domain.RecommendationSet, items []domain.RecommendationItem) error
	// AddInteraction appends an interaction row. Returns ErrSetNotFound
	// when the referenced set does not exist.
	AddInteraction(ctx context.Context, in *domain.UserInteraction) error
	// GetActiveSet returns the newest set whose expiry is after now,
	// with its items ordered by rank, or nil when none is active.
	GetActiveSet(ctx context.Context, businessID int64, now time.Time) (*domain.RecommendationSet, []domain.RecommendationItem, error)
	// MarkViewed flips the viewed flag, the set's only mutable field.
	MarkViewed(ctx context.Context, setID int64) error
}

// PerformanceRepository supplies the read-only rows the aggregator
// works from. The engine never writes through this port.
type PerformanceRepository interface {
	// GetBusiness returns the business row or nil when unknown. An
	// unknown business is not an error: generation degrades to a
	// generic fallback set instead of refusing.
	GetBusiness(ctx context.Context, id int64) (*domain.Business, error)
	// GetCampaigns returns all campaigns run by the business.
	GetCampaigns(ctx context.Context, businessID int64) ([]domain.CampaignRecord, error)
	// GetAdMethods returns the full ad-method catalog.
	GetAdMethods(ctx context.Context) ([]domain.AdMethod, error)
	// GetTopPerformers returns externally benchmarked campaigns of the
	// given business type, optionally scoped by geography, best ROI
	// first. Campaigns of businessID itself are excluded: they are the
	// business's own history, not a benchmark.
	GetTopPerformers(ctx context.Context, businessID int64, businessType string, geo *domain.GeoFilter, limit int) ([]domain.CampaignRecord, error)
}
