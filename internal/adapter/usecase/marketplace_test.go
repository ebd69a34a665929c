package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
	"adframe/internal/core/port/mocks"
)

var (
	publisher  = domain.Principal{UserID: "pub-1"}
	advertiser = domain.Principal{UserID: "adv-1"}
	stranger   = domain.Principal{UserID: "someone-else"}
)

type marketFixture struct {
	listings  *mocks.MockListingRepository
	campaigns *mocks.MockCampaignRepository
	uc        *MarketplaceUseCase
}

func newMarketFixture(t *testing.T) *marketFixture {
	f := &marketFixture{
		listings:  mocks.NewMockListingRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
	}
	f.uc = NewMarketplaceUseCase(f.listings, f.campaigns, nil, "USD", "en")
	f.uc.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }
	return f
}

func listingL1() *domain.Listing {
	return &domain.Listing{
		ID:          "L1",
		PublisherID: publisher.UserID,
		WebsiteURL:  "https://blog.example.com",
		Frames: map[string]domain.Frame{
			"F1": {ID: "F1", ListingID: "L1", PricingModel: domain.PricingCPC, Price: domain.FromUnits(0.5)},
			"F2": {ID: "F2", ListingID: "L1", PricingModel: domain.PricingCPM, Price: domain.FromUnits(2)},
		},
	}
}

func pendingCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:           "C1",
		AdvertiserID: advertiser.UserID,
		Status:       domain.StatusPending,
		Placements:   []domain.Placement{{ListingID: "L1", FrameIDs: []string{"F1"}, Creative: "c1.png"}},
	}
}

func validCampaignReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Name:      "Spring sale",
		Budget:    5,
		EndDate:   "2026-05-02",
		TargetURL: "https://shop.example.com/sale",
		Placements: []port.PlacementReq{
			{ListingID: "L1", FrameIDs: []string{"F1", "F2"}, Creative: "c1/banner.png"},
		},
	}
}

func TestCreateListing(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l domain.Listing) bool {
		return l.PublisherID == "pub-1" && l.WebsiteURL == "https://blog.example.com" && l.Category == "tech"
	})).Return(nil).Once()

	l, err := f.uc.CreateListing(context.Background(), publisher, port.CreateListingReq{
		WebsiteURL: "https://blog.example.com",
		Category:   " tech ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
}

func TestCreateListingValidation(t *testing.T) {
	f := newMarketFixture(t)

	_, err := f.uc.CreateListing(context.Background(), publisher, port.CreateListingReq{WebsiteURL: "blog"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateListing(context.Background(), domain.Principal{}, port.CreateListingReq{WebsiteURL: "https://x.io"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetListingOwnership(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)

	_, err := f.uc.GetListing(context.Background(), stranger, "L1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	l, err := f.uc.GetListing(context.Background(), publisher, "L1")
	require.NoError(t, err)
	assert.Len(t, l.Frames, 2)
}

func TestUpsertFrame(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)
	f.listings.EXPECT().UpsertFrame(mock.Anything, mock.MatchedBy(func(fr domain.Frame) bool {
		return fr.ID == "F3" && fr.ListingID == "L1" && fr.Price == domain.FromUnits(0.25) && fr.PricingModel == domain.PricingCPC
	})).Return(nil).Once()
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F3").Return(&domain.Frame{ID: "F3", ListingID: "L1"}, nil)

	fr, err := f.uc.UpsertFrame(context.Background(), publisher, port.UpsertFrameReq{
		ListingID: "L1", FrameID: "F3", Size: "300x250", PricingModel: domain.PricingCPC, Price: 0.25,
	})
	require.NoError(t, err)
	assert.Equal(t, "F3", fr.ID)
}

func TestUpsertFrameValidation(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()

	_, err := f.uc.UpsertFrame(ctx, publisher, port.UpsertFrameReq{ListingID: "L1", FrameID: "F3", PricingModel: "cpa", Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.UpsertFrame(ctx, publisher, port.UpsertFrameReq{ListingID: "L1", FrameID: "F3", PricingModel: domain.PricingCPM, Price: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.UpsertFrame(ctx, publisher, port.UpsertFrameReq{ListingID: "L1", PricingModel: domain.PricingCPM, Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Prices are checked after conversion to micros, so amounts that round to
// zero or overflow never reach storage.
func TestUpsertFrameRejectsUnrepresentablePrice(t *testing.T) {
	for _, price := range []float64{0.0000004, 1e13, -0.5} {
		f := newMarketFixture(t)
		_, err := f.uc.UpsertFrame(context.Background(), publisher, port.UpsertFrameReq{
			ListingID: "L1", FrameID: "F3", PricingModel: domain.PricingCPC, Price: price,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%g", price)
		f.listings.AssertNotCalled(t, "UpsertFrame", mock.Anything, mock.Anything)
	}
}

func TestListingEarnings(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)
	f.listings.EXPECT().ListingEarnings(mock.Anything, "L1").Return([]domain.FrameEarnings{
		{FrameID: "F1", Impressions: 200, Clicks: 10, Earnings: domain.FromUnits(5)},
		{FrameID: "F2", Impressions: 1000, Earnings: domain.FromUnits(2)},
	}, nil)

	resp, err := f.uc.ListingEarnings(context.Background(), publisher, "L1")
	require.NoError(t, err)
	require.Len(t, resp.Frames, 2)
	assert.InDelta(t, 0.05, resp.Frames[0].CTR, 1e-9)
	assert.InDelta(t, 7.0, resp.Total, 1e-9)
	assert.Contains(t, resp.TotalDisplay, "7")
}

func TestCreateCampaign(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)
	f.campaigns.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.AdvertiserID == "adv-1" &&
			c.Status == domain.StatusPending &&
			c.Budget == domain.FromUnits(5) &&
			c.EndDate.Equal(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)) &&
			len(c.Placements) == 1
	})).Return(nil).Once()

	c, err := f.uc.CreateCampaign(context.Background(), advertiser, validCampaignReq())
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.StatusPending, c.Status)
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *port.CreateCampaignReq)
	}{
		{name: "no name", mutate: func(r *port.CreateCampaignReq) { r.Name = " " }},
		{name: "negative budget", mutate: func(r *port.CreateCampaignReq) { r.Budget = -1 }},
		{name: "overflowing budget", mutate: func(r *port.CreateCampaignReq) { r.Budget = 1e13 }},
		{name: "overflowing daily limit", mutate: func(r *port.CreateCampaignReq) { r.DailyLimit = 1e13 }},
		{name: "bad date", mutate: func(r *port.CreateCampaignReq) { r.EndDate = "02/05/2026" }},
		{name: "past date", mutate: func(r *port.CreateCampaignReq) { r.EndDate = "2026-04-30" }},
		{name: "relative target", mutate: func(r *port.CreateCampaignReq) { r.TargetURL = "/sale" }},
		{name: "no placements", mutate: func(r *port.CreateCampaignReq) { r.Placements = nil }},
		{name: "no creative", mutate: func(r *port.CreateCampaignReq) { r.Placements[0].Creative = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMarketFixture(t)
			req := validCampaignReq()
			tt.mutate(&req)
			_, err := f.uc.CreateCampaign(context.Background(), advertiser, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateCampaignUnknownFrame(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)

	req := validCampaignReq()
	req.Placements[0].FrameIDs = []string{"F1", "F9"}
	_, err := f.uc.CreateCampaign(context.Background(), advertiser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCampaignDuplicateFrame(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)

	req := validCampaignReq()
	req.Placements[0].FrameIDs = []string{"F1", "F1"}
	_, err := f.uc.CreateCampaign(context.Background(), advertiser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCampaignRepeatedListing(t *testing.T) {
	f := newMarketFixture(t)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil).Once()

	req := validCampaignReq()
	req.Placements = append(req.Placements, port.PlacementReq{ListingID: "L1", FrameIDs: []string{"F2"}, Creative: "other.png"})
	_, err := f.uc.CreateCampaign(context.Background(), advertiser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.campaigns.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestDecideCampaignApprove(t *testing.T) {
	f := newMarketFixture(t)
	approved := pendingCampaign()
	approved.Status = domain.StatusApproved

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil).Once()
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)
	f.campaigns.EXPECT().ApproveCampaign(mock.Anything, "C1").Return(nil).Once()
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(approved, nil).Once()

	c, err := f.uc.DecideCampaign(context.Background(), publisher, "C1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, c.Status)
}

func TestDecideCampaignReject(t *testing.T) {
	f := newMarketFixture(t)
	rejected := pendingCampaign()
	rejected.Status = domain.StatusRejected

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil).Once()
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)
	f.campaigns.EXPECT().TransitionStatus(mock.Anything, "C1", domain.StatusPending, domain.StatusRejected).Return(nil).Once()
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(rejected, nil).Once()

	c, err := f.uc.DecideCampaign(context.Background(), publisher, "C1", false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, c.Status)
}

func TestDecideCampaignOccupiedFrame(t *testing.T) {
	f := newMarketFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil).Once()
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)
	f.campaigns.EXPECT().ApproveCampaign(mock.Anything, "C1").Return(domain.ErrConflict).Once()

	_, err := f.uc.DecideCampaign(context.Background(), publisher, "C1", true)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDecideCampaignRequiresListingOwner(t *testing.T) {
	f := newMarketFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)

	_, err := f.uc.DecideCampaign(context.Background(), advertiser, "C1", true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDecideCampaignNotPending(t *testing.T) {
	f := newMarketFixture(t)
	c := pendingCampaign()
	c.Status = domain.StatusArchived
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(c, nil)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)

	_, err := f.uc.DecideCampaign(context.Background(), publisher, "C1", true)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestArchiveAndRestoreCampaign(t *testing.T) {
	f := newMarketFixture(t)
	approved := pendingCampaign()
	approved.Status = domain.StatusApproved
	archived := pendingCampaign()
	archived.Status = domain.StatusArchived

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(approved, nil).Once()
	f.campaigns.EXPECT().ArchiveCampaign(mock.Anything, "C1", domain.StatusApproved).Return(nil).Once()
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(archived, nil).Once()

	c, err := f.uc.ArchiveCampaign(context.Background(), advertiser, "C1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, c.Status)

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(archived, nil).Once()
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)
	f.campaigns.EXPECT().TransitionStatus(mock.Anything, "C1", domain.StatusArchived, domain.StatusPending).Return(nil).Once()
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil).Once()

	c, err = f.uc.RestoreCampaign(context.Background(), publisher, "C1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, c.Status)
}

func TestArchiveCampaignForbiddenForStranger(t *testing.T) {
	f := newMarketFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil)
	f.listings.EXPECT().GetListing(mock.Anything, "L1").Return(listingL1(), nil)

	_, err := f.uc.ArchiveCampaign(context.Background(), stranger, "C1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRestoreRequiresArchived(t *testing.T) {
	f := newMarketFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil)

	_, err := f.uc.RestoreCampaign(context.Background(), advertiser, "C1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteCampaign(t *testing.T) {
	f := newMarketFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(pendingCampaign(), nil)
	f.campaigns.EXPECT().DeleteCampaign(mock.Anything, "C1").Return(nil).Once()

	require.NoError(t, f.uc.DeleteCampaign(context.Background(), advertiser, "C1"))
	assert.ErrorIs(t, f.uc.DeleteCampaign(context.Background(), publisher, "C1"), domain.ErrForbidden)
}

func TestGetCampaignNotFound(t *testing.T) {
	f := newMarketFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C404").Return(nil, nil)

	_, err := f.uc.GetCampaign(context.Background(), advertiser, "C404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
