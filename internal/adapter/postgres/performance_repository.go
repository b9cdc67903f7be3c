package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
)

// milesPerDegree approximates one degree of latitude. Good enough for a
// bounding-box benchmark lookup; this is context, not navigation.
const milesPerDegree = 69.0

// PerformanceRepository implements port.PerformanceRepository: the
// read-only provider of businesses, campaigns, the ad-method catalog
// and benchmark top performers.
type PerformanceRepository struct {
	pool *pgxpool.Pool
}

// NewPerformanceRepository returns a new repository instance.
func NewPerformanceRepository(pool *pgxpool.Pool) *PerformanceRepository {
	return &PerformanceRepository{pool: pool}
}

// GetBusiness returns a business by id, nil when unknown.
func (r *PerformanceRepository) GetBusiness(ctx context.Context, id int64) (*domain.Business, error) {
	var b domain.Business
	err := r.pool.QueryRow(ctx, `SELECT id, name, business_type, zip, latitude, longitude FROM businesses WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.BusinessType, &b.Zip, &b.Latitude, &b.Longitude)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetCampaigns returns every campaign run by the business, newest first.
func (r *PerformanceRepository) GetCampaigns(ctx context.Context, businessID int64) ([]domain.CampaignRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, business_id, ad_method_id, amount_spent::text, amount_earned::text, start_date, end_date
FROM campaigns WHERE business_id = $1 ORDER BY start_date DESC`, businessID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetAdMethods returns the full ad-method catalog.
func (r *PerformanceRepository) GetAdMethods(ctx context.Context) ([]domain.AdMethod, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM ad_methods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdMethod, error) {
		var m domain.AdMethod
		err := row.Scan(&m.ID, &m.Name)
		return m, err
	})
}

// GetTopPerformers returns finished campaigns of other same-type
// businesses ordered by ROI, optionally restricted to a bounding box
// around the requesting business. The requesting business's own
// campaigns never appear; they enter the analysis as history instead.
func (r *PerformanceRepository) GetTopPerformers(ctx context.Context, businessID int64, businessType string, geo *domain.GeoFilter, limit int) ([]domain.CampaignRecord, error) {
	query := `SELECT c.id, c.business_id, c.ad_method_id, c.amount_spent::text, c.amount_earned::text, c.start_date, c.end_date
FROM campaigns c
JOIN businesses b ON b.id = c.business_id
WHERE b.business_type = $1
  AND c.business_id <> $2
  AND c.amount_earned IS NOT NULL
  AND c.amount_spent > 0`
	args := []interface{}{businessType, businessID}

	if geo != nil && geo.RadiusMiles > 0 {
		delta := geo.RadiusMiles / milesPerDegree
		query += `
  AND b.latitude BETWEEN $3 AND $4
  AND b.longitude BETWEEN $5 AND $6`
		args = append(args, geo.Latitude-delta, geo.Latitude+delta, geo.Longitude-delta, geo.Longitude+delta)
	}

	query += fmt.Sprintf(`
ORDER BY (c.amount_earned - c.amount_spent) / c.amount_spent DESC
LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

func scanCampaign(row pgx.CollectableRow) (domain.CampaignRecord, error) {
	var (
		c      domain.CampaignRecord
		spent  string
		earned *string
	)
	if err := row.Scan(&c.ID, &c.BusinessID, &c.AdMethodID, &spent, &earned, &c.StartDate, &c.EndDate); err != nil {
		return c, err
	}
	var err error
	if c.AmountSpent, err = decimal.NewFromString(spent); err != nil {
		return c, err
	}
	if earned != nil {
		d, err := decimal.NewFromString(*earned)
		if err != nil {
			return c, err
		}
		c.AmountEarned = &d
	}
	return c, nil
}
