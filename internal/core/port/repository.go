package port

import (
	"context"
	"time"

	"adframe/internal/core/domain"
)

// ListingRepository persists listings and their frames. Lookups return
// nil, nil when the row does not exist.
type ListingRepository interface {
	// CreateListing stores a new listing without frames.
	CreateListing(ctx context.Context, l domain.Listing) error
	// GetListing returns a listing together with all of its frames.
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	// UpsertFrame creates the frame or updates its size and pricing. The
	// occupying campaign and creative are left untouched.
	UpsertFrame(ctx context.Context, f domain.Frame) error
	// GetFrame returns the frame with the given id inside the listing.
	GetFrame(ctx context.Context, listingID, frameID string) (*domain.Frame, error)
	// ListingEarnings sums the event log per frame of the listing.
	ListingEarnings(ctx context.Context, listingID string) ([]domain.FrameEarnings, error)
}

// CampaignRepository persists campaigns and frame occupation.
type CampaignRepository interface {
	// CreateCampaign stores a pending campaign with its placements.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns a campaign with placements and counters.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ApproveCampaign occupies every placement frame and marks the campaign
	// approved in one transaction. It returns domain.ErrConflict when a
	// frame is already occupied or the campaign is no longer pending.
	ApproveCampaign(ctx context.Context, id string) error
	// TransitionStatus moves the campaign from one status to another and
	// returns domain.ErrConflict when the current status is not from.
	TransitionStatus(ctx context.Context, id string, from, to domain.CampaignStatus) error
	// ArchiveCampaign archives the campaign and releases its frames.
	ArchiveCampaign(ctx context.Context, id string, from domain.CampaignStatus) error
	// DeleteCampaign releases frames and removes the campaign with its events.
	DeleteCampaign(ctx context.Context, id string) error
	// SpendSince sums event costs of the campaign recorded at or after since.
	SpendSince(ctx context.Context, id string, since time.Time) (domain.Micros, error)
}

// ActivityRepository appends impressions and clicks. Implementations must
// apply the counter increment atomically with the append and skip both when
// the idempotency key was already used.
type ActivityRepository interface {
	// RecordEvent prices the event against the frame, appends it and
	// increments the campaign counters. It reports whether a new event was
	// written; a reused key yields false, nil. domain.ErrNotFound is returned
	// when the frame is not occupied by the campaign.
	RecordEvent(ctx context.Context, ev *domain.Event) (bool, error)
	// CampaignTotals returns the campaign counters.
	CampaignTotals(ctx context.Context, campaignID string) (*domain.CampaignTotals, error)
}

// IdempotencyGuard is a fast pre-check for retried tracking calls. The
// storage unique key stays the source of truth.
type IdempotencyGuard interface {
	// Claim returns true the first time a key is seen within the TTL.
	Claim(ctx context.Context, key string) (bool, error)
	// Release forgets a claimed key so a retry can succeed after a failed write.
	Release(ctx context.Context, key string) error
}

// EventPublisher streams recorded events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// TaskRunner runs work off the request path. Go returns false when the task
// was dropped.
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context) error) bool
}
