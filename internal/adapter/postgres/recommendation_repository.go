package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adrec/internal/core/domain"
	"adrec/internal/core/port"
)

const pgForeignKeyViolation = "23503"

// txFinisher is the slice of pgx.Tx needed to close a transaction.
type txFinisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// closeTx rolls back when the operation already failed, keeping the
// original error, and otherwise commits. A commit failure is a
// persistence error and must reach the caller.
func closeTx(ctx context.Context, tx txFinisher, opErr error) error {
	if opErr != nil {
		_ = tx.Rollback(ctx)
		return opErr
	}
	return tx.Commit(ctx)
}

// RecommendationRepository implements port.RecommendationRepository
// using pgxpool for PostgreSQL.
type RecommendationRepository struct {
	pool *pgxpool.Pool
}

// NewRecommendationRepository returns a new repository instance.
func NewRecommendationRepository(pool *pgxpool.Pool) *RecommendationRepository {
	return &RecommendationRepository{pool: pool}
}

// CreateSet inserts the header and all items in one transaction. If any
// item insert fails the whole set is rolled back, so readers never see
// a header without its items.
func (r *RecommendationRepository) CreateSet(ctx context.Context, set *domain.RecommendationSet, items []domain.RecommendationItem) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		err = closeTx(ctx, tx, err)
	}()

	err = tx.QueryRow(ctx, `INSERT INTO recommendation_sets
	(business_id, generated_at, expires_at, is_viewed, summary, confidence_score)
VALUES ($1,$2,$3,false,$4,$5) RETURNING id`,
		set.BusinessID, set.GeneratedAt, set.ExpiresAt, set.Summary, set.ConfidenceScore).Scan(&set.ID)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].SetID = set.ID
		var scenarios []byte
		scenarios, err = json.Marshal(items[i].Scenarios)
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, `INSERT INTO recommendation_items
	(set_id, ad_method_id, rank, predicted_roi, recommended_budget, rationale, confidence_score, scenario_data)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
			items[i].SetID, items[i].AdMethodID, items[i].Rank, items[i].PredictedROI,
			items[i].RecommendedBudget.String(), items[i].Rationale, items[i].ConfidenceScore, scenarios).
			Scan(&items[i].ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// AddInteraction appends an interaction row. The set itself is never
// touched.
func (r *RecommendationRepository) AddInteraction(ctx context.Context, in *domain.UserInteraction) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO recommendation_interactions
	(set_id, user_id, interaction_type, feedback, created_at)
VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		in.SetID, in.UserID, string(in.Type), in.Feedback, in.CreatedAt).Scan(&in.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return port.ErrSetNotFound
	}
	return err
}

// GetActiveSet returns the newest set expiring after now, with items
// ordered by rank, or nil when nothing is active.
func (r *RecommendationRepository) GetActiveSet(ctx context.Context, businessID int64, now time.Time) (*domain.RecommendationSet, []domain.RecommendationItem, error) {
	var set domain.RecommendationSet
	err := r.pool.QueryRow(ctx, `SELECT id, business_id, generated_at, expires_at, summary, confidence_score, is_viewed
FROM recommendation_sets
WHERE business_id = $1 AND expires_at > $2
ORDER BY generated_at DESC LIMIT 1`, businessID, now).
		Scan(&set.ID, &set.BusinessID, &set.GeneratedAt, &set.ExpiresAt, &set.Summary, &set.ConfidenceScore, &set.IsViewed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT id, set_id, ad_method_id, rank, predicted_roi, recommended_budget::text, rationale, confidence_score, scenario_data
FROM recommendation_items WHERE set_id = $1 ORDER BY rank`, set.ID)
	if err != nil {
		return nil, nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecommendationItem, error) {
		var (
			item        domain.RecommendationItem
			budget      string
			scenarioRaw []byte
		)
		if err := row.Scan(&item.ID, &item.SetID, &item.AdMethodID, &item.Rank, &item.PredictedROI,
			&budget, &item.Rationale, &item.ConfidenceScore, &scenarioRaw); err != nil {
			return item, err
		}
		var err error
		if item.RecommendedBudget, err = decimal.NewFromString(budget); err != nil {
			return item, err
		}
		err = json.Unmarshal(scenarioRaw, &item.Scenarios)
		return item, err
	})
	if err != nil {
		return nil, nil, err
	}
	return &set, items, nil
}

// MarkViewed flips the viewed flag, the set's only mutable field.
func (r *RecommendationRepository) MarkViewed(ctx context.Context, setID int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE recommendation_sets SET is_viewed = true WHERE id = $1`, setID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrSetNotFound
	}
	return nil
}
