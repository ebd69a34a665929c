package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adframe/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
// Frame occupation lives on the frames table and is changed in the same
// transaction as the campaign status.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a repository backed by pool.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	return inTx(ctx, r.pool, "create campaign", func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO campaigns (id, advertiser_id, name, budget, daily_limit, end_date, target_url, status, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			c.ID, c.AdvertiserID, c.Name, int64(c.Budget), int64(c.DailyLimit), c.EndDate,
			c.TargetURL, string(c.Status), c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return storageErr("create campaign", err)
		}

		batch := &pgx.Batch{}
		for _, p := range c.Placements {
			for _, frameID := range p.FrameIDs {
				batch.Queue(`INSERT INTO campaign_placements (campaign_id, listing_id, frame_id, creative) VALUES ($1, $2, $3, $4)`,
					c.ID, p.ListingID, frameID, p.Creative)
			}
		}
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return storageErr("create placements", err)
		}
		return nil
	})
}

// GetCampaign returns the campaign with its placements and counters, or nil
// when it does not exist.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var (
		c                         domain.Campaign
		budget, dailyLimit, spend int64
		status                    string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, advertiser_id, name, budget, daily_limit, end_date, target_url, status,
               impressions, clicks, spend, created_at, updated_at
        FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.AdvertiserID, &c.Name, &budget, &dailyLimit, &c.EndDate, &c.TargetURL, &status,
			&c.Impressions, &c.Clicks, &spend, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get campaign", err)
	}
	c.Budget = domain.Micros(budget)
	c.DailyLimit = domain.Micros(dailyLimit)
	c.Spend = domain.Micros(spend)
	c.Status = domain.CampaignStatus(status)
	if !c.Status.Valid() {
		return nil, fmt.Errorf("get campaign %s: %w: unknown status %q", id, domain.ErrStorageUnavailable, status)
	}
	c.EndDate = domain.DateOf(c.EndDate)

	rows, err := r.pool.Query(ctx, `
        SELECT listing_id, frame_id, creative FROM campaign_placements
        WHERE campaign_id = $1 ORDER BY listing_id, creative, frame_id`, id)
	if err != nil {
		return nil, storageErr("get placements", err)
	}
	type placementRow struct {
		ListingID, FrameID, Creative string
	}
	placed, err := pgx.CollectRows(rows, pgx.RowToStructByPos[placementRow])
	if err != nil {
		return nil, storageErr("get placements", err)
	}
	for _, p := range placed {
		n := len(c.Placements)
		if n > 0 && c.Placements[n-1].ListingID == p.ListingID && c.Placements[n-1].Creative == p.Creative {
			c.Placements[n-1].FrameIDs = append(c.Placements[n-1].FrameIDs, p.FrameID)
			continue
		}
		c.Placements = append(c.Placements, domain.Placement{
			ListingID: p.ListingID,
			FrameIDs:  []string{p.FrameID},
			Creative:  p.Creative,
		})
	}
	return &c, nil
}

// ApproveCampaign locks the campaign, occupies every placement frame that is
// still vacant and flips the status. Any frame already taken aborts the
// whole approval with domain.ErrConflict.
func (r *CampaignRepository) ApproveCampaign(ctx context.Context, id string) error {
	return inTx(ctx, r.pool, "approve campaign", func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
		}
		if err != nil {
			return storageErr("approve campaign", err)
		}
		if domain.CampaignStatus(status) != domain.StatusPending {
			return fmt.Errorf("campaign is %s: %w", status, domain.ErrConflict)
		}

		var wanted int64
		if err = tx.QueryRow(ctx, `SELECT count(*) FROM campaign_placements WHERE campaign_id = $1`, id).Scan(&wanted); err != nil {
			return storageErr("approve campaign", err)
		}
		tag, err := tx.Exec(ctx, `
            UPDATE frames f
            SET campaign_id = p.campaign_id, creative = p.creative, updated_at = now()
            FROM campaign_placements p
            WHERE p.campaign_id = $1 AND p.frame_id = f.id AND f.campaign_id IS NULL`, id)
		if err != nil {
			return storageErr("occupy frames", err)
		}
		if tag.RowsAffected() != wanted {
			return fmt.Errorf("frame already occupied: %w", domain.ErrConflict)
		}

		_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`,
			id, string(domain.StatusApproved))
		return storageErr("approve campaign", err)
	})
}

func (r *CampaignRepository) TransitionStatus(ctx context.Context, id string, from, to domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, string(from), string(to))
	if err != nil {
		return storageErr("transition campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s is not %s: %w", id, from, domain.ErrConflict)
	}
	return nil
}

// ArchiveCampaign archives the campaign and vacates its frames.
func (r *CampaignRepository) ArchiveCampaign(ctx context.Context, id string, from domain.CampaignStatus) error {
	return inTx(ctx, r.pool, "archive campaign", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
			id, string(from), string(domain.StatusArchived))
		if err != nil {
			return storageErr("archive campaign", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("campaign %s is not %s: %w", id, from, domain.ErrConflict)
		}
		return r.vacate(ctx, tx, id)
	})
}

// DeleteCampaign vacates the frames and deletes the campaign. Placements
// and events go with it through ON DELETE CASCADE.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	return inTx(ctx, r.pool, "delete campaign", func(tx pgx.Tx) error {
		if err := r.vacate(ctx, tx, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
		if err != nil {
			return storageErr("delete campaign", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func (r *CampaignRepository) SpendSince(ctx context.Context, id string, since time.Time) (domain.Micros, error) {
	var spend int64
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE((SELECT sum(cost) FROM impressions WHERE campaign_id = $1 AND created_at >= $2), 0)::BIGINT
             + COALESCE((SELECT sum(cost) FROM clicks WHERE campaign_id = $1 AND created_at >= $2), 0)::BIGINT`,
		id, since).Scan(&spend)
	if err != nil {
		return 0, storageErr("spend since", err)
	}
	return domain.Micros(spend), nil
}

func (r *CampaignRepository) vacate(ctx context.Context, tx pgx.Tx, id string) error {
	_, err := tx.Exec(ctx,
		`UPDATE frames SET campaign_id = NULL, creative = '', updated_at = now() WHERE campaign_id = $1`, id)
	return storageErr("vacate frames", err)
}
