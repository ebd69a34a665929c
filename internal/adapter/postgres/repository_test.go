package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adframe/internal/config/configs"
	"adframe/internal/core/domain"
	"adframe/internal/db"
)

// testAddrEnv names the database the repository tests run against. The
// schema is migrated up; rows are keyed by random ids so runs do not collide.
const testAddrEnv = "ADFRAME_TEST_POSTGRES"

type repos struct {
	pool      *pgxpool.Pool
	listings  *ListingRepository
	campaigns *CampaignRepository
	activity  *ActivityRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()
	addr := os.Getenv(testAddrEnv)
	if addr == "" {
		t.Skipf("%s is not set", testAddrEnv)
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u, MaxConns: 16})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repos{
		pool:      pool,
		listings:  NewListingRepository(pool),
		campaigns: NewCampaignRepository(pool),
		activity:  NewActivityRepository(pool),
	}
}

func uniq(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

type market struct {
	listingID string
	cpcFrame  string
	cpmFrame  string
}

// newMarket stores a listing with one CPC frame priced 0.5 and one CPM frame
// priced 2.
func newMarket(t *testing.T, r repos) market {
	t.Helper()
	ctx := context.Background()
	m := market{listingID: uniq("L"), cpcFrame: uniq("F"), cpmFrame: uniq("F")}

	require.NoError(t, r.listings.CreateListing(ctx, domain.Listing{
		ID: m.listingID, PublisherID: "pub-1", WebsiteURL: "https://news.example.com", CreatedAt: time.Now(),
	}))
	require.NoError(t, r.listings.UpsertFrame(ctx, domain.Frame{
		ID: m.cpcFrame, ListingID: m.listingID, PricingModel: domain.PricingCPC, Price: domain.FromUnits(0.5), UpdatedAt: time.Now(),
	}))
	require.NoError(t, r.listings.UpsertFrame(ctx, domain.Frame{
		ID: m.cpmFrame, ListingID: m.listingID, PricingModel: domain.PricingCPM, Price: domain.FromUnits(2), UpdatedAt: time.Now(),
	}))
	return m
}

func createCampaign(t *testing.T, r repos, placements ...domain.Placement) string {
	t.Helper()
	id := uniq("C")
	now := time.Now()
	require.NoError(t, r.campaigns.CreateCampaign(context.Background(), domain.Campaign{
		ID:           id,
		AdvertiserID: "adv-1",
		Name:         "Spring sale",
		Budget:       domain.FromUnits(100),
		EndDate:      domain.DateOf(now.AddDate(0, 1, 0)),
		TargetURL:    "https://shop.example.com/sale",
		Status:       domain.StatusPending,
		Placements:   placements,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
	return id
}

func totals(t *testing.T, r repos, campaignID string) domain.CampaignTotals {
	t.Helper()
	got, err := r.activity.CampaignTotals(context.Background(), campaignID)
	require.NoError(t, err)
	require.NotNil(t, got)
	return *got
}

func TestRecordEventDuplicateKeyLeavesCountersUnchanged(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)
	ctx := context.Background()
	campaignID := createCampaign(t, r, domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpcFrame}, Creative: "c.png"})
	require.NoError(t, r.campaigns.ApproveCampaign(ctx, campaignID))

	key := uniq("k")
	first := &domain.Event{Kind: domain.KindClick, Key: key, CampaignID: campaignID, FrameID: m.cpcFrame}
	written, err := r.activity.RecordEvent(ctx, first)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, domain.FromUnits(0.5), first.Cost)
	assert.NotZero(t, first.ID)

	again := &domain.Event{Kind: domain.KindClick, Key: key, CampaignID: campaignID, FrameID: m.cpcFrame}
	written, err = r.activity.RecordEvent(ctx, again)
	require.NoError(t, err)
	assert.False(t, written)

	got := totals(t, r, campaignID)
	assert.Equal(t, int64(1), got.Clicks)
	assert.Equal(t, domain.FromUnits(0.5), got.Spend)
}

func TestRecordEventConcurrentCountsExactly(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)
	ctx := context.Background()
	campaignID := createCampaign(t, r, domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpmFrame}, Creative: "c.png"})
	require.NoError(t, r.campaigns.ApproveCampaign(ctx, campaignID))

	const distinct = 40
	shared := uniq("shared")
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		sharedWrote int
	)
	for i := 0; i < distinct; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := r.activity.RecordEvent(ctx, &domain.Event{
				Kind: domain.KindImpression, Key: uniq("k"), CampaignID: campaignID, FrameID: m.cpmFrame,
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			written, err := r.activity.RecordEvent(ctx, &domain.Event{
				Kind: domain.KindImpression, Key: shared, CampaignID: campaignID, FrameID: m.cpmFrame,
			})
			assert.NoError(t, err)
			if written {
				mu.Lock()
				sharedWrote++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, sharedWrote)
	got := totals(t, r, campaignID)
	assert.Equal(t, int64(distinct+1), got.Impressions)
	assert.Equal(t, domain.Micros((distinct+1)*2000), got.Spend)
}

func TestRecordEventRequiresOccupiedFrame(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)
	campaignID := createCampaign(t, r, domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpcFrame}, Creative: "c.png"})

	// still pending, so the frame is vacant
	_, err := r.activity.RecordEvent(context.Background(), &domain.Event{
		Kind: domain.KindClick, Key: uniq("k"), CampaignID: campaignID, FrameID: m.cpcFrame,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, totals(t, r, campaignID).Clicks)
}

func TestApproveCampaignConflictsOnOccupiedFrame(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)
	ctx := context.Background()

	holder := createCampaign(t, r, domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpcFrame}, Creative: "a.png"})
	require.NoError(t, r.campaigns.ApproveCampaign(ctx, holder))

	late := createCampaign(t, r, domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpcFrame, m.cpmFrame}, Creative: "b.png"})
	err := r.campaigns.ApproveCampaign(ctx, late)
	assert.ErrorIs(t, err, domain.ErrConflict)

	c, err := r.campaigns.GetCampaign(ctx, late)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, c.Status)

	l, err := r.listings.GetListing(ctx, m.listingID)
	require.NoError(t, err)
	assert.Equal(t, holder, l.Frames[m.cpcFrame].CampaignID)
	assert.Empty(t, l.Frames[m.cpmFrame].CampaignID, "rolled back approval must not occupy the vacant frame")
}

func TestArchiveVacatesFrames(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)
	ctx := context.Background()

	first := createCampaign(t, r, domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpcFrame}, Creative: "a.png"})
	require.NoError(t, r.campaigns.ApproveCampaign(ctx, first))
	require.NoError(t, r.campaigns.ArchiveCampaign(ctx, first, domain.StatusApproved))

	second := createCampaign(t, r, domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpcFrame}, Creative: "b.png"})
	require.NoError(t, r.campaigns.ApproveCampaign(ctx, second))

	err := r.campaigns.ArchiveCampaign(ctx, first, domain.StatusApproved)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSpendSince(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)
	ctx := context.Background()
	campaignID := createCampaign(t, r, domain.Placement{
		ListingID: m.listingID, FrameIDs: []string{m.cpcFrame, m.cpmFrame}, Creative: "c.png",
	})
	require.NoError(t, r.campaigns.ApproveCampaign(ctx, campaignID))

	for _, ev := range []*domain.Event{
		{Kind: domain.KindClick, Key: uniq("k"), CampaignID: campaignID, FrameID: m.cpcFrame},
		{Kind: domain.KindImpression, Key: uniq("k"), CampaignID: campaignID, FrameID: m.cpmFrame},
		{Kind: domain.KindImpression, Key: uniq("k"), CampaignID: campaignID, FrameID: m.cpcFrame},
	} {
		_, err := r.activity.RecordEvent(ctx, ev)
		require.NoError(t, err)
	}

	spend, err := r.campaigns.SpendSince(ctx, campaignID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.FromUnits(0.5)+2000, spend)

	spend, err = r.campaigns.SpendSince(ctx, campaignID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, spend)
}

func TestGetCampaignKeepsCreativesApart(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)
	campaignID := createCampaign(t, r,
		domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpcFrame}, Creative: "a.png"},
		domain.Placement{ListingID: m.listingID, FrameIDs: []string{m.cpmFrame}, Creative: "b.png"},
	)

	c, err := r.campaigns.GetCampaign(context.Background(), campaignID)
	require.NoError(t, err)
	require.Len(t, c.Placements, 2)
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, []string{c.Placements[0].Creative, c.Placements[1].Creative})
}

func TestCheckViolationIsInvalidInput(t *testing.T) {
	r := newRepos(t)
	m := newMarket(t, r)

	err := r.listings.UpsertFrame(context.Background(), domain.Frame{
		ID: uniq("F"), ListingID: m.listingID, PricingModel: domain.PricingCPC, Price: 0, UpdatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
