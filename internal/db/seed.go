package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a handful of businesses of two types, the
// ad-method catalog, and a spread of finished and running campaigns so
// the recommendation pipeline has history to analyze.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	methods := []string{"Social Media", "Search Ads", "Local Print", "Radio Spots", "Email Marketing"}
	for i, name := range methods {
		_, err := db.Exec(ctx, `INSERT INTO ad_methods (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			i+1, name)
		if err != nil {
			return err
		}
	}

	types := []string{"restaurant", "retail"}
	for i := 1; i <= 6; i++ {
		name := fmt.Sprintf("Business %d", i)
		businessType := types[i%2]
		lat := 40.0 + r.Float64()*0.5
		lng := -74.0 - r.Float64()*0.5
		zip := fmt.Sprintf("07%03d", r.Intn(1000))
		_, err := db.Exec(ctx, `INSERT INTO businesses (id, name, business_type, zip, latitude, longitude)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			i, name, businessType, zip, lat, lng)
		if err != nil {
			return err
		}

		for j := 0; j < 3+r.Intn(3); j++ {
			methodID := r.Intn(len(methods)) + 1
			spent := 200 + r.Intn(1800)
			start := time.Now().AddDate(0, -r.Intn(10)-1, 0)
			var (
				earned  *int
				endDate *time.Time
			)
			// about one in four campaigns is still running
			if r.Intn(4) > 0 {
				e := int(float64(spent) * (0.5 + r.Float64()*1.5))
				earned = &e
				end := start.AddDate(0, 1, 0)
				endDate = &end
			}
			_, err = db.Exec(ctx, `INSERT INTO campaigns (business_id, ad_method_id, amount_spent, amount_earned, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6)`,
				i, methodID, spent, earned, start, endDate)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
