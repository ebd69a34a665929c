package port

import (
	"context"
	"time"

	"adframe/internal/core/domain"
)

// AdUseCase is the public ad engine: serving decisions, activity tracking and
// campaign analytics. None of its operations require authentication.
type AdUseCase interface {
	// Decide resolves the creative for a slot. It returns nil, nil when the
	// slot has nothing to serve and domain.ErrNotFound when the frame or its
	// campaign does not exist. A served decision schedules one impression.
	Decide(ctx context.Context, req DecisionReq) (*Decision, error)

	// RecordImpression appends one impression. It reports whether a new event
	// was written; duplicates of an idempotency key report false.
	RecordImpression(ctx context.Context, req TrackReq) (bool, error)

	// RecordClick appends one click and charges CPC frames.
	RecordClick(ctx context.Context, req TrackReq) (bool, error)

	// ClickThrough records a click under a bounded timeout and returns the
	// campaign's target URL. Tracking failures are logged, not returned.
	ClickThrough(ctx context.Context, req TrackReq) (string, error)

	// Analytics returns the campaign counters with derived rates.
	Analytics(ctx context.Context, campaignID string) (*AnalyticsResp, error)
}

// MarketplaceUseCase holds the authenticated publisher and advertiser
// operations. Every method checks that the principal owns what it touches.
type MarketplaceUseCase interface {
	CreateListing(ctx context.Context, p domain.Principal, req CreateListingReq) (*domain.Listing, error)
	GetListing(ctx context.Context, p domain.Principal, listingID string) (*domain.Listing, error)
	UpsertFrame(ctx context.Context, p domain.Principal, req UpsertFrameReq) (*domain.Frame, error)
	ListingEarnings(ctx context.Context, p domain.Principal, listingID string) (*EarningsResp, error)

	CreateCampaign(ctx context.Context, p domain.Principal, req CreateCampaignReq) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, p domain.Principal, campaignID string) (*domain.Campaign, error)
	DecideCampaign(ctx context.Context, p domain.Principal, campaignID string, approve bool) (*domain.Campaign, error)
	ArchiveCampaign(ctx context.Context, p domain.Principal, campaignID string) (*domain.Campaign, error)
	RestoreCampaign(ctx context.Context, p domain.Principal, campaignID string) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, p domain.Principal, campaignID string) error
}

// DecisionReq identifies a slot. CampaignHint and RenderKey are optional.
type DecisionReq struct {
	ListingID    string
	FrameID      string
	CampaignHint string
	RenderKey    string
}

// Decision is what the embedding page renders.
type Decision struct {
	CampaignID  string `json:"campaignId"`
	FrameID     string `json:"frameId"`
	CreativeURL string `json:"creativeUrl"`
	TargetURL   string `json:"targetUrl"`
	ClickURL    string `json:"clickUrl"`
	RenderKey   string `json:"renderKey"`
}

// TrackReq identifies one impression or click. Key deduplicates retries.
type TrackReq struct {
	CampaignID string `json:"campaignId"`
	FrameID    string `json:"frameId"`
	Key        string `json:"key,omitempty"`
}

// AnalyticsResp reports a campaign's activity. Money is in currency units.
type AnalyticsResp struct {
	CampaignID  string  `json:"campaignId"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Spend       float64 `json:"spend"`
	CPM         float64 `json:"cpm"`
}

type CreateListingReq struct {
	WebsiteURL string `json:"websiteUrl"`
	Category   string `json:"category"`
}

type UpsertFrameReq struct {
	ListingID    string              `json:"-"`
	FrameID      string              `json:"-"`
	Size         string              `json:"size"`
	PricingModel domain.PricingModel `json:"pricingModel"`
	Price        float64             `json:"price"`
}

type CreateCampaignReq struct {
	Name       string         `json:"name"`
	Budget     float64        `json:"budget"`
	DailyLimit float64        `json:"dailyLimit"`
	EndDate    string         `json:"endDate"` // YYYY-MM-DD
	TargetURL  string         `json:"targetUrl"`
	Placements []PlacementReq `json:"placements"`
}

type PlacementReq struct {
	ListingID string   `json:"listingId"`
	FrameIDs  []string `json:"frameIds"`
	Creative  string   `json:"creative"`
}

// EarningsResp is a publisher's per-frame earnings for one listing.
type EarningsResp struct {
	ListingID    string          `json:"listingId"`
	Frames       []FrameEarnings `json:"frames"`
	Total        float64         `json:"total"`
	TotalDisplay string          `json:"totalDisplay"`
	GeneratedAt  time.Time       `json:"generatedAt"`
}

type FrameEarnings struct {
	FrameID     string  `json:"frameId"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Earnings    float64 `json:"earnings"`
}
