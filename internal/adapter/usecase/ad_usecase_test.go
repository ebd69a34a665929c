package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
	"adframe/internal/core/port/mocks"
)

// syncRunner runs tasks immediately and remembers their names.
type syncRunner struct {
	mu    sync.Mutex
	names []string
	errs  []error
	drop  bool
}

func (r *syncRunner) Go(name string, fn func(ctx context.Context) error) bool {
	if r.drop {
		return false
	}
	err := fn(context.Background())
	r.mu.Lock()
	r.names = append(r.names, name)
	r.errs = append(r.errs, err)
	r.mu.Unlock()
	return true
}

type adFixture struct {
	listings  *mocks.MockListingRepository
	campaigns *mocks.MockCampaignRepository
	activity  *mocks.MockActivityRepository
	runner    *syncRunner
	uc        *AdUseCase
}

func newAdFixture(t *testing.T) *adFixture {
	f := &adFixture{
		listings:  mocks.NewMockListingRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		activity:  mocks.NewMockActivityRepository(t),
		runner:    &syncRunner{},
	}
	f.uc = NewAdUseCase(AdDependencies{
		Listings:        f.listings,
		Campaigns:       f.campaigns,
		Activity:        f.activity,
		Tasks:           f.runner,
		CreativeBaseURL: "https://cdn.example.com/creatives",
		ClickBaseURL:    "https://ads.example.com/",
	})
	f.uc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func occupiedFrame() *domain.Frame {
	return &domain.Frame{
		ID:           "F1",
		ListingID:    "L1",
		CampaignID:   "C1",
		Creative:     "c1/banner.png",
		PricingModel: domain.PricingCPC,
		Price:        domain.FromUnits(0.5),
	}
}

func approvedCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:        "C1",
		Status:    domain.StatusApproved,
		Budget:    domain.FromUnits(5),
		EndDate:   time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		TargetURL: "https://shop.example.com/sale",
	}
}

// TestDecideServesActiveCampaign ensures an active campaign's creative is
// served and exactly one impression is recorded under the render key.
func TestDecideServesActiveCampaign(t *testing.T) {
	f := newAdFixture(t)

	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(occupiedFrame(), nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(approvedCampaign(), nil)
	f.activity.EXPECT().
		RecordEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).
		Run(func(ctx context.Context, ev *domain.Event) {
			assert.Equal(t, domain.KindImpression, ev.Kind)
			assert.Equal(t, "render-1", ev.Key)
			assert.Equal(t, "C1", ev.CampaignID)
			assert.Equal(t, "F1", ev.FrameID)
		}).
		Return(true, nil).
		Once()

	d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1", RenderKey: "render-1"})
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Equal(t, "https://cdn.example.com/creatives/c1/banner.png", d.CreativeURL)
	assert.Equal(t, "https://shop.example.com/sale", d.TargetURL)
	assert.Equal(t, "https://ads.example.com/r/C1/F1?key=render-1", d.ClickURL)
	assert.Equal(t, "render-1", d.RenderKey)
	assert.Equal(t, []string{"impression"}, f.runner.names)
}

func TestDecideGeneratesRenderKey(t *testing.T) {
	f := newAdFixture(t)

	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(occupiedFrame(), nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(approvedCampaign(), nil)
	f.activity.EXPECT().RecordEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(true, nil).Once()

	d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1"})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Len(t, d.RenderKey, 36)
}

func TestDecideMissingFrame(t *testing.T) {
	f := newAdFixture(t)
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "nope").Return(nil, nil)

	d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "nope"})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// A frame nobody bought yields a blank result, not an error.
func TestDecideVacantFrame(t *testing.T) {
	f := newAdFixture(t)
	vacant := occupiedFrame()
	vacant.CampaignID = ""
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(vacant, nil)

	d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1"})
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Empty(t, f.runner.names)
}

func TestDecideMissingCampaign(t *testing.T) {
	f := newAdFixture(t)
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(occupiedFrame(), nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(nil, nil)

	_, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecideHintMismatch(t *testing.T) {
	f := newAdFixture(t)
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(occupiedFrame(), nil)

	d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1", CampaignHint: "C9"})
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDecideInactiveCampaign(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Campaign)
	}{
		{name: "pending", mutate: func(c *domain.Campaign) { c.Status = domain.StatusPending }},
		{name: "expired", mutate: func(c *domain.Campaign) { c.EndDate = time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC) }},
		{name: "budget spent", mutate: func(c *domain.Campaign) { c.Spend = domain.FromUnits(5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdFixture(t)
			c := approvedCampaign()
			tt.mutate(c)
			f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(occupiedFrame(), nil)
			f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(c, nil)

			d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1"})
			require.NoError(t, err)
			assert.Nil(t, d)
			assert.Empty(t, f.runner.names)
		})
	}
}

func TestDecideDailyLimit(t *testing.T) {
	f := newAdFixture(t)
	c := approvedCampaign()
	c.DailyLimit = domain.FromUnits(1)
	midnight := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(occupiedFrame(), nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(c, nil)
	f.campaigns.EXPECT().SpendSince(mock.Anything, "C1", midnight).Return(domain.FromUnits(1), nil)

	d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1"})
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDecideStorageError(t *testing.T) {
	f := newAdFixture(t)
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(nil, domain.ErrStorageUnavailable)

	_, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1"})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// A dropped impression task must not stop the creative from being served.
func TestDecideServesWhenImpressionDropped(t *testing.T) {
	f := newAdFixture(t)
	f.runner.drop = true
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(occupiedFrame(), nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").Return(approvedCampaign(), nil)

	d, err := f.uc.Decide(context.Background(), port.DecisionReq{ListingID: "L1", FrameID: "F1"})
	require.NoError(t, err)
	require.NotNil(t, d)
}

// TestBudgetExhaustionScenario walks a $5 campaign on a $0.50 CPC frame:
// after nine clicks the slot still serves, after the tenth it goes blank.
func TestBudgetExhaustionScenario(t *testing.T) {
	f := newAdFixture(t)

	var (
		mu    sync.Mutex
		state = approvedCampaign()
		frame = occupiedFrame()
	)
	f.listings.EXPECT().GetFrame(mock.Anything, "L1", "F1").Return(frame, nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "C1").
		RunAndReturn(func(context.Context, string) (*domain.Campaign, error) {
			mu.Lock()
			defer mu.Unlock()
			c := *state
			return &c, nil
		})
	f.activity.EXPECT().RecordEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).
		RunAndReturn(func(_ context.Context, ev *domain.Event) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			ev.Cost = domain.EventCost(ev.Kind, frame.PricingModel, frame.Price)
			if ev.Kind == domain.KindClick {
				state.Clicks++
			} else {
				state.Impressions++
			}
			state.Spend += ev.Cost
			return true, nil
		})

	ctx := context.Background()
	req := port.DecisionReq{ListingID: "L1", FrameID: "F1"}

	for i := 0; i < 9; i++ {
		_, err := f.uc.RecordClick(ctx, port.TrackReq{CampaignID: "C1", FrameID: "F1"})
		require.NoError(t, err)
	}
	d, err := f.uc.Decide(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, d, "spend 4.50 < 5.00 must still serve")

	_, err = f.uc.RecordClick(ctx, port.TrackReq{CampaignID: "C1", FrameID: "F1"})
	require.NoError(t, err)
	d, err = f.uc.Decide(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, d, "spend 5.00 is not below the budget")
	assert.Equal(t, domain.FromUnits(5), state.Spend)
}

func TestAnalytics(t *testing.T) {
	f := newAdFixture(t)
	f.activity.EXPECT().CampaignTotals(mock.Anything, "C1").Return(&domain.CampaignTotals{
		CampaignID:  "C1",
		Impressions: 100,
		Clicks:      4,
		Spend:       domain.FromUnits(2),
	}, nil)

	resp, err := f.uc.Analytics(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Impressions)
	assert.Equal(t, int64(4), resp.Clicks)
	assert.Equal(t, 0.04, resp.CTR)
	assert.InDelta(t, 2.0, resp.Spend, 1e-9)
	assert.InDelta(t, 20.0, resp.CPM, 1e-9)
}

func TestAnalyticsUnknownCampaign(t *testing.T) {
	f := newAdFixture(t)
	f.activity.EXPECT().CampaignTotals(mock.Anything, "C404").Return(nil, nil)

	_, err := f.uc.Analytics(context.Background(), "C404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalyticsPropagatesStorageError(t *testing.T) {
	f := newAdFixture(t)
	boom := errors.New("connection reset")
	f.activity.EXPECT().CampaignTotals(mock.Anything, "C1").Return(nil, boom)

	_, err := f.uc.Analytics(context.Background(), "C1")
	assert.ErrorIs(t, err, boom)
}
