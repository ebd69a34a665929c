package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
)

// MarketplaceUseCase implements the authenticated publisher and advertiser
// operations: listings and frames, campaign lifecycle and earnings.
type MarketplaceUseCase struct {
	listings  port.ListingRepository
	campaigns port.CampaignRepository
	logger    *slog.Logger

	unit    currency.Unit
	printer *message.Printer

	now func() time.Time
}

// NewMarketplaceUseCase creates the marketplace. currencyCode and locale
// control how earnings totals are displayed; invalid values fall back to
// USD and English.
func NewMarketplaceUseCase(listings port.ListingRepository, campaigns port.CampaignRepository, logger *slog.Logger, currencyCode, locale string) *MarketplaceUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.USD
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &MarketplaceUseCase{
		listings:  listings,
		campaigns: campaigns,
		logger:    logger,
		unit:      unit,
		printer:   message.NewPrinter(tag),
		now:       time.Now,
	}
}

// CreateListing registers a publisher website.
func (u *MarketplaceUseCase) CreateListing(ctx context.Context, p domain.Principal, req port.CreateListingReq) (*domain.Listing, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	if !domain.IsHTTPURL(req.WebsiteURL) {
		return nil, fmt.Errorf("%w: websiteUrl must be an absolute http(s) URL", domain.ErrInvalidInput)
	}
	l := domain.Listing{
		ID:          uuid.NewString(),
		PublisherID: p.UserID,
		WebsiteURL:  req.WebsiteURL,
		Category:    strings.TrimSpace(req.Category),
		Frames:      map[string]domain.Frame{},
		CreatedAt:   u.now().UTC(),
	}
	if err := u.listings.CreateListing(ctx, l); err != nil {
		return nil, err
	}
	u.logger.Info("listing created", slog.String("listing_id", l.ID), slog.String("publisher_id", p.UserID))
	return &l, nil
}

// GetListing returns a listing owned by the caller.
func (u *MarketplaceUseCase) GetListing(ctx context.Context, p domain.Principal, listingID string) (*domain.Listing, error) {
	return u.ownedListing(ctx, p, listingID)
}

// UpsertFrame adds a frame to the caller's listing or reprices an existing
// one. Repricing affects events recorded afterwards only.
func (u *MarketplaceUseCase) UpsertFrame(ctx context.Context, p domain.Principal, req port.UpsertFrameReq) (*domain.Frame, error) {
	if strings.TrimSpace(req.FrameID) == "" {
		return nil, fmt.Errorf("%w: frame id is required", domain.ErrInvalidInput)
	}
	if !req.PricingModel.Valid() {
		return nil, fmt.Errorf("%w: pricingModel must be cpc or cpm", domain.ErrInvalidInput)
	}
	price, err := domain.ParseUnits(req.Price)
	if err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be at least one micro", domain.ErrInvalidInput)
	}
	if _, err := u.ownedListing(ctx, p, req.ListingID); err != nil {
		return nil, err
	}

	f := domain.Frame{
		ID:           req.FrameID,
		ListingID:    req.ListingID,
		Size:         req.Size,
		PricingModel: req.PricingModel,
		Price:        price,
		UpdatedAt:    u.now().UTC(),
	}
	if err := u.listings.UpsertFrame(ctx, f); err != nil {
		return nil, err
	}
	stored, err := u.listings.GetFrame(ctx, req.ListingID, req.FrameID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("frame %s: %w", req.FrameID, domain.ErrNotFound)
	}
	return stored, nil
}

// ListingEarnings reports what each frame of the caller's listing earned.
func (u *MarketplaceUseCase) ListingEarnings(ctx context.Context, p domain.Principal, listingID string) (*port.EarningsResp, error) {
	if _, err := u.ownedListing(ctx, p, listingID); err != nil {
		return nil, err
	}
	rows, err := u.listings.ListingEarnings(ctx, listingID)
	if err != nil {
		return nil, err
	}

	resp := &port.EarningsResp{
		ListingID:   listingID,
		Frames:      make([]port.FrameEarnings, 0, len(rows)),
		GeneratedAt: u.now().UTC(),
	}
	var total domain.Micros
	for _, r := range rows {
		total += r.Earnings
		resp.Frames = append(resp.Frames, port.FrameEarnings{
			FrameID:     r.FrameID,
			Impressions: r.Impressions,
			Clicks:      r.Clicks,
			CTR:         domain.CampaignTotals{Impressions: r.Impressions, Clicks: r.Clicks}.CTR(),
			Earnings:    r.Earnings.Units(),
		})
	}
	resp.Total = total.Units()
	resp.TotalDisplay = u.printer.Sprint(currency.Symbol(u.unit.Amount(total.Units())))
	return resp, nil
}

// CreateCampaign stores a pending campaign for the caller. Every placement
// must name existing frames of an existing listing and no frame may appear
// twice.
func (u *MarketplaceUseCase) CreateCampaign(ctx context.Context, p domain.Principal, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	c, err := u.validateCampaign(ctx, req)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	c.ID = uuid.NewString()
	c.AdvertiserID = p.UserID
	c.Status = domain.StatusPending
	c.CreatedAt = now
	c.UpdatedAt = now

	if err = u.campaigns.CreateCampaign(ctx, *c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created", slog.String("campaign_id", c.ID), slog.String("advertiser_id", p.UserID))
	return c, nil
}

// GetCampaign returns a campaign visible to the caller: its advertiser or
// the publisher of any of its listings.
func (u *MarketplaceUseCase) GetCampaign(ctx context.Context, p domain.Principal, campaignID string) (*domain.Campaign, error) {
	c, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err = u.requireParty(ctx, p, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DecideCampaign approves or rejects a pending campaign. Only a publisher
// owning every listing of the campaign may decide. Approval occupies the
// purchased frames and fails with domain.ErrConflict if any is taken.
func (u *MarketplaceUseCase) DecideCampaign(ctx context.Context, p domain.Principal, campaignID string, approve bool) (*domain.Campaign, error) {
	c, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	for _, listingID := range c.ListingIDs() {
		if _, err = u.ownedListing(ctx, p, listingID); err != nil {
			return nil, err
		}
	}
	if c.Status != domain.StatusPending {
		return nil, fmt.Errorf("campaign is %s: %w", c.Status, domain.ErrConflict)
	}

	if approve {
		err = u.campaigns.ApproveCampaign(ctx, c.ID)
	} else {
		err = u.campaigns.TransitionStatus(ctx, c.ID, domain.StatusPending, domain.StatusRejected)
	}
	if err != nil {
		return nil, err
	}
	u.logger.Info("campaign decided",
		slog.String("campaign_id", c.ID),
		slog.Bool("approved", approve),
		slog.String("publisher_id", p.UserID))
	return u.campaign(ctx, c.ID)
}

// ArchiveCampaign archives a campaign and frees its frames. Either party may
// archive.
func (u *MarketplaceUseCase) ArchiveCampaign(ctx context.Context, p domain.Principal, campaignID string) (*domain.Campaign, error) {
	c, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err = u.requireParty(ctx, p, c); err != nil {
		return nil, err
	}
	if !domain.CanTransition(c.Status, domain.StatusArchived) {
		return nil, fmt.Errorf("cannot archive %s campaign: %w", c.Status, domain.ErrConflict)
	}
	if err = u.campaigns.ArchiveCampaign(ctx, c.ID, c.Status); err != nil {
		return nil, err
	}
	return u.campaign(ctx, c.ID)
}

// RestoreCampaign returns an archived campaign to pending so its publisher
// can approve it again.
func (u *MarketplaceUseCase) RestoreCampaign(ctx context.Context, p domain.Principal, campaignID string) (*domain.Campaign, error) {
	c, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err = u.requireParty(ctx, p, c); err != nil {
		return nil, err
	}
	if !domain.CanTransition(c.Status, domain.StatusPending) {
		return nil, fmt.Errorf("cannot restore %s campaign: %w", c.Status, domain.ErrConflict)
	}
	if err = u.campaigns.TransitionStatus(ctx, c.ID, c.Status, domain.StatusPending); err != nil {
		return nil, err
	}
	return u.campaign(ctx, c.ID)
}

// DeleteCampaign removes the caller's campaign together with its events.
func (u *MarketplaceUseCase) DeleteCampaign(ctx context.Context, p domain.Principal, campaignID string) error {
	c, err := u.campaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c.AdvertiserID != p.UserID {
		return fmt.Errorf("campaign %s: %w", c.ID, domain.ErrForbidden)
	}
	if err = u.campaigns.DeleteCampaign(ctx, c.ID); err != nil {
		return err
	}
	u.logger.Info("campaign deleted", slog.String("campaign_id", c.ID))
	return nil
}

func (u *MarketplaceUseCase) validateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	invalid := func(msg string) error { return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg) }

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	budget, err := domain.ParseUnits(req.Budget)
	if err != nil {
		return nil, err
	}
	dailyLimit, err := domain.ParseUnits(req.DailyLimit)
	if err != nil {
		return nil, err
	}
	if budget < 0 || dailyLimit < 0 {
		return nil, invalid("budget and dailyLimit must not be negative")
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return nil, invalid("endDate must be YYYY-MM-DD")
	}
	if end.Before(domain.DateOf(u.now())) {
		return nil, invalid("endDate is in the past")
	}
	if !domain.IsHTTPURL(req.TargetURL) {
		return nil, invalid("targetUrl must be an absolute http(s) URL")
	}
	if len(req.Placements) == 0 {
		return nil, invalid("at least one placement is required")
	}

	c := &domain.Campaign{
		Name:       name,
		Budget:     budget,
		DailyLimit: dailyLimit,
		EndDate:    end,
		TargetURL:  req.TargetURL,
		Placements: make([]domain.Placement, 0, len(req.Placements)),
	}
	var seen []string
	for _, pl := range req.Placements {
		if pl.ListingID == "" || len(pl.FrameIDs) == 0 || strings.TrimSpace(pl.Creative) == "" {
			return nil, invalid("each placement needs listingId, frameIds and creative")
		}
		if slices.ContainsFunc(c.Placements, func(p domain.Placement) bool { return p.ListingID == pl.ListingID }) {
			return nil, invalid("listing " + pl.ListingID + " appears in more than one placement")
		}
		listing, err := u.listings.GetListing(ctx, pl.ListingID)
		if err != nil {
			return nil, err
		}
		if listing == nil {
			return nil, invalid("unknown listing " + pl.ListingID)
		}
		for _, id := range pl.FrameIDs {
			if _, ok := listing.Frames[id]; !ok {
				return nil, invalid("unknown frame " + id + " on listing " + pl.ListingID)
			}
			if slices.Contains(seen, id) {
				return nil, invalid("frame " + id + " appears twice")
			}
			seen = append(seen, id)
		}
		c.Placements = append(c.Placements, domain.Placement{
			ListingID: pl.ListingID,
			FrameIDs:  slices.Clone(pl.FrameIDs),
			Creative:  strings.TrimSpace(pl.Creative),
		})
	}
	return c, nil
}

func (u *MarketplaceUseCase) campaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: campaign is required", domain.ErrInvalidInput)
	}
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func (u *MarketplaceUseCase) ownedListing(ctx context.Context, p domain.Principal, id string) (*domain.Listing, error) {
	if err := requirePrincipal(p); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: listing is required", domain.ErrInvalidInput)
	}
	l, err := u.listings.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	if l.PublisherID != p.UserID {
		return nil, fmt.Errorf("listing %s: %w", id, domain.ErrForbidden)
	}
	return l, nil
}

// requireParty allows the campaign's advertiser and the publisher of any
// listing the campaign runs on.
func (u *MarketplaceUseCase) requireParty(ctx context.Context, p domain.Principal, c *domain.Campaign) error {
	if err := requirePrincipal(p); err != nil {
		return err
	}
	if c.AdvertiserID == p.UserID {
		return nil
	}
	for _, listingID := range c.ListingIDs() {
		l, err := u.listings.GetListing(ctx, listingID)
		if err != nil {
			return err
		}
		if l != nil && l.PublisherID == p.UserID {
			return nil
		}
	}
	return fmt.Errorf("campaign %s: %w", c.ID, domain.ErrForbidden)
}

func requirePrincipal(p domain.Principal) error {
	if p.UserID == "" {
		return domain.ErrUnauthorized
	}
	return nil
}
