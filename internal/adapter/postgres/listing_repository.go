package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adframe/internal/core/domain"
)

// ListingRepository implements port.ListingRepository on PostgreSQL.
type ListingRepository struct {
	pool *pgxpool.Pool
}

// NewListingRepository returns a repository backed by pool.
func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

func (r *ListingRepository) CreateListing(ctx context.Context, l domain.Listing) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO listings (id, publisher_id, website_url, category, created_at) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.PublisherID, l.WebsiteURL, l.Category, l.CreatedAt)
	return storageErr("create listing", err)
}

// GetListing returns the listing with its frames, or nil when it does not
// exist.
func (r *ListingRepository) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.pool.QueryRow(ctx,
		`SELECT id, publisher_id, website_url, category, created_at FROM listings WHERE id = $1`, id).
		Scan(&l.ID, &l.PublisherID, &l.WebsiteURL, &l.Category, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get listing", err)
	}

	rows, err := r.pool.Query(ctx, frameSelect+` WHERE listing_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, storageErr("get listing frames", err)
	}
	frames, err := pgx.CollectRows(rows, scanFrame)
	if err != nil {
		return nil, storageErr("get listing frames", err)
	}
	l.Frames = make(map[string]domain.Frame, len(frames))
	for _, f := range frames {
		l.Frames[f.ID] = f
	}
	return &l, nil
}

// UpsertFrame inserts the frame or updates size and pricing of an existing
// one. A frame id owned by another listing yields domain.ErrConflict.
func (r *ListingRepository) UpsertFrame(ctx context.Context, f domain.Frame) error {
	tag, err := r.pool.Exec(ctx, `
        INSERT INTO frames (id, listing_id, size, pricing_model, price, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE
            SET size          = EXCLUDED.size,
                pricing_model = EXCLUDED.pricing_model,
                price         = EXCLUDED.price,
                updated_at    = EXCLUDED.updated_at
        WHERE frames.listing_id = EXCLUDED.listing_id`,
		f.ID, f.ListingID, f.Size, string(f.PricingModel), int64(f.Price), f.UpdatedAt)
	if err != nil {
		return storageErr("upsert frame", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("frame %s belongs to another listing: %w", f.ID, domain.ErrConflict)
	}
	return nil
}

func (r *ListingRepository) GetFrame(ctx context.Context, listingID, frameID string) (*domain.Frame, error) {
	rows, err := r.pool.Query(ctx, frameSelect+` WHERE listing_id = $1 AND id = $2`, listingID, frameID)
	if err != nil {
		return nil, storageErr("get frame", err)
	}
	f, err := pgx.CollectExactlyOneRow(rows, scanFrame)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get frame", err)
	}
	return &f, nil
}

// ListingEarnings sums the recorded events of every frame of the listing.
// Frames without activity are reported with zeroes.
func (r *ListingRepository) ListingEarnings(ctx context.Context, listingID string) ([]domain.FrameEarnings, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT f.id,
               COALESCE(i.n, 0),
               COALESCE(c.n, 0),
               COALESCE(i.cost, 0) + COALESCE(c.cost, 0)
        FROM frames f
        LEFT JOIN (SELECT frame_id, count(*) AS n, sum(cost)::BIGINT AS cost
                   FROM impressions GROUP BY frame_id) i ON i.frame_id = f.id
        LEFT JOIN (SELECT frame_id, count(*) AS n, sum(cost)::BIGINT AS cost
                   FROM clicks GROUP BY frame_id) c ON c.frame_id = f.id
        WHERE f.listing_id = $1
        ORDER BY f.id`, listingID)
	if err != nil {
		return nil, storageErr("listing earnings", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FrameEarnings, error) {
		var (
			e        domain.FrameEarnings
			earnings int64
		)
		err := row.Scan(&e.FrameID, &e.Impressions, &e.Clicks, &earnings)
		e.Earnings = domain.Micros(earnings)
		return e, err
	})
	if err != nil {
		return nil, storageErr("listing earnings", err)
	}
	return out, nil
}

const frameSelect = `SELECT id, listing_id, COALESCE(campaign_id, ''), creative, size, pricing_model, price, updated_at FROM frames`

func scanFrame(row pgx.CollectableRow) (domain.Frame, error) {
	var (
		f     domain.Frame
		model string
		price int64
	)
	err := row.Scan(&f.ID, &f.ListingID, &f.CampaignID, &f.Creative, &f.Size, &model, &price, &f.UpdatedAt)
	f.PricingModel = domain.PricingModel(model)
	f.Price = domain.Micros(price)
	return f, err
}
