package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adframe/internal/core/domain"
)

// ActivityRepository implements port.ActivityRepository on PostgreSQL.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a repository backed by pool.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

var eventTables = map[domain.EventKind]struct {
	insert  string
	counter string
}{
	domain.KindImpression: {
		insert: `INSERT INTO impressions (idempotency_key, campaign_id, frame_id, cost)
                 VALUES ($1, $2, $3, $4)
                 ON CONFLICT (idempotency_key) DO NOTHING
                 RETURNING id, created_at`,
		counter: `UPDATE campaigns SET impressions = impressions + 1, spend = spend + $2 WHERE id = $1`,
	},
	domain.KindClick: {
		insert: `INSERT INTO clicks (idempotency_key, campaign_id, frame_id, cost)
                 VALUES ($1, $2, $3, $4)
                 ON CONFLICT (idempotency_key) DO NOTHING
                 RETURNING id, created_at`,
		counter: `UPDATE campaigns SET clicks = clicks + 1, spend = spend + $2 WHERE id = $1`,
	},
}

// RecordEvent prices the event from the frame the campaign occupies,
// appends it and bumps the campaign counters in one transaction. When the
// idempotency key is already taken nothing is written and false is
// returned.
func (r *ActivityRepository) RecordEvent(ctx context.Context, ev *domain.Event) (bool, error) {
	q, ok := eventTables[ev.Kind]
	if !ok {
		return false, fmt.Errorf("%w: unknown event kind %q", domain.ErrInvalidInput, ev.Kind)
	}

	written := false
	err := inTx(ctx, r.pool, "record "+string(ev.Kind), func(tx pgx.Tx) error {
		var (
			model string
			price int64
		)
		err := tx.QueryRow(ctx,
			`SELECT pricing_model, price FROM frames WHERE id = $1 AND campaign_id = $2`,
			ev.FrameID, ev.CampaignID).Scan(&model, &price)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("frame %s of campaign %s: %w", ev.FrameID, ev.CampaignID, domain.ErrNotFound)
		}
		if err != nil {
			return storageErr("price event", err)
		}
		cost := domain.EventCost(ev.Kind, domain.PricingModel(model), domain.Micros(price))

		err = tx.QueryRow(ctx, q.insert, ev.Key, ev.CampaignID, ev.FrameID, int64(cost)).
			Scan(&ev.ID, &ev.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return storageErr("append event", err)
		}

		if _, err = tx.Exec(ctx, q.counter, ev.CampaignID, int64(cost)); err != nil {
			return storageErr("increment counters", err)
		}
		ev.Cost = cost
		written = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return written, nil
}

// CampaignTotals returns the counters of the campaign row, or nil when the
// campaign does not exist.
func (r *ActivityRepository) CampaignTotals(ctx context.Context, campaignID string) (*domain.CampaignTotals, error) {
	var (
		t     domain.CampaignTotals
		spend int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, impressions, clicks, spend FROM campaigns WHERE id = $1`, campaignID).
		Scan(&t.CampaignID, &t.Impressions, &t.Clicks, &spend)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("campaign totals", err)
	}
	t.Spend = domain.Micros(spend)
	return &t, nil
}
