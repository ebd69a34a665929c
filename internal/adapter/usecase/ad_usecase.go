package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
	"adframe/internal/metrics"
)

// AdDependencies wires the ad engine. Guard and Publisher are optional.
type AdDependencies struct {
	Listings  port.ListingRepository
	Campaigns port.CampaignRepository
	Activity  port.ActivityRepository
	Guard     port.IdempotencyGuard
	Publisher port.EventPublisher
	Tasks     port.TaskRunner
	Logger    *slog.Logger

	// CreativeBaseURL prefixes relative creative references.
	CreativeBaseURL string
	// ClickBaseURL prefixes click-through links; empty yields relative links.
	ClickBaseURL string
	// TrackTimeout bounds the inline click write of ClickThrough.
	TrackTimeout time.Duration
}

// AdUseCase provides the public ad engine: it decides what a slot shows,
// records impressions and clicks, and reports campaign activity.
type AdUseCase struct {
	listings  port.ListingRepository
	campaigns port.CampaignRepository
	activity  port.ActivityRepository
	guard     port.IdempotencyGuard
	publisher port.EventPublisher
	tasks     port.TaskRunner
	logger    *slog.Logger

	creativeBaseURL string
	clickBaseURL    string
	trackTimeout    time.Duration

	now func() time.Time
}

// NewAdUseCase creates the ad engine. A missing logger discards output, a
// missing task runner runs tasks inline, and a zero TrackTimeout falls back
// to two seconds.
func NewAdUseCase(deps AdDependencies) *AdUseCase {
	u := &AdUseCase{
		listings:        deps.Listings,
		campaigns:       deps.Campaigns,
		activity:        deps.Activity,
		guard:           deps.Guard,
		publisher:       deps.Publisher,
		tasks:           deps.Tasks,
		logger:          deps.Logger,
		creativeBaseURL: deps.CreativeBaseURL,
		clickBaseURL:    strings.TrimRight(deps.ClickBaseURL, "/"),
		trackTimeout:    deps.TrackTimeout,
		now:             time.Now,
	}
	if u.logger == nil {
		u.logger = slog.New(slog.DiscardHandler)
	}
	if u.trackTimeout <= 0 {
		u.trackTimeout = 2 * time.Second
	}
	if u.tasks == nil {
		u.tasks = inlineRunner{logger: u.logger}
	}
	return u
}

// Decide resolves the creative occupying a slot. It returns nil, nil when the
// frame is vacant, the hint names another campaign, or the campaign is not
// active or has reached its daily limit. A missing frame or campaign yields
// domain.ErrNotFound. A served decision schedules exactly one impression off
// the request path, keyed by the render key.
func (u *AdUseCase) Decide(ctx context.Context, req port.DecisionReq) (*port.Decision, error) {
	d, err := u.decide(ctx, req)
	metrics.AdDecisions.WithLabelValues(decisionOutcome(d, err)).Inc()
	return d, err
}

func (u *AdUseCase) decide(ctx context.Context, req port.DecisionReq) (*port.Decision, error) {
	if req.ListingID == "" || req.FrameID == "" {
		return nil, fmt.Errorf("%w: listing and frame are required", domain.ErrInvalidInput)
	}

	frame, err := u.listings.GetFrame(ctx, req.ListingID, req.FrameID)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, fmt.Errorf("frame %s/%s: %w", req.ListingID, req.FrameID, domain.ErrNotFound)
	}
	if frame.Vacant() {
		return nil, nil
	}
	if req.CampaignHint != "" && req.CampaignHint != frame.CampaignID {
		return nil, nil
	}

	camp, err := u.campaigns.GetCampaign(ctx, frame.CampaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, fmt.Errorf("campaign %s: %w", frame.CampaignID, domain.ErrNotFound)
	}

	now := u.now()
	if !domain.IsActive(*camp, camp.Spend, now) {
		return nil, nil
	}
	if camp.DailyLimit > 0 {
		spentToday, err := u.campaigns.SpendSince(ctx, camp.ID, domain.DateOf(now))
		if err != nil {
			return nil, err
		}
		if !domain.WithinDailyLimit(*camp, spentToday) {
			return nil, nil
		}
	}

	key := req.RenderKey
	if key == "" {
		key = uuid.NewString()
	}
	track := port.TrackReq{CampaignID: camp.ID, FrameID: frame.ID, Key: key}
	if !u.tasks.Go("impression", func(ctx context.Context) error {
		_, err := u.RecordImpression(ctx, track)
		return err
	}) {
		u.logger.Warn("impression dropped", slog.String("campaign_id", camp.ID), slog.String("frame_id", frame.ID))
	}

	return &port.Decision{
		CampaignID:  camp.ID,
		FrameID:     frame.ID,
		CreativeURL: domain.ResolveCreativeURL(u.creativeBaseURL, frame.Creative),
		TargetURL:   camp.TargetURL,
		ClickURL:    u.clickURL(track),
		RenderKey:   key,
	}, nil
}

// Analytics returns the campaign's counters with CTR and effective CPM.
func (u *AdUseCase) Analytics(ctx context.Context, campaignID string) (*port.AnalyticsResp, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("%w: campaign is required", domain.ErrInvalidInput)
	}
	totals, err := u.activity.CampaignTotals(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		return nil, fmt.Errorf("campaign %s: %w", campaignID, domain.ErrNotFound)
	}
	return &port.AnalyticsResp{
		CampaignID:  totals.CampaignID,
		Impressions: totals.Impressions,
		Clicks:      totals.Clicks,
		CTR:         totals.CTR(),
		Spend:       totals.Spend.Units(),
		CPM:         totals.EffectiveCPM().Units(),
	}, nil
}

func (u *AdUseCase) clickURL(t port.TrackReq) string {
	return fmt.Sprintf("%s/r/%s/%s?key=%s",
		u.clickBaseURL, url.PathEscape(t.CampaignID), url.PathEscape(t.FrameID), url.QueryEscape(t.Key))
}

func decisionOutcome(d *port.Decision, err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case err != nil:
		return "error"
	case d == nil:
		return "blank"
	default:
		return "served"
	}
}
