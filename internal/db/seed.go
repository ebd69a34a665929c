package db

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
)

// Fixture is a YAML description of listings and campaigns to insert.
type Fixture struct {
	Listings  []ListingFixture  `yaml:"listings"`
	Campaigns []CampaignFixture `yaml:"campaigns"`
}

type ListingFixture struct {
	ID          string         `yaml:"id"`
	PublisherID string         `yaml:"publisherId"`
	WebsiteURL  string         `yaml:"websiteUrl"`
	Category    string         `yaml:"category"`
	Frames      []FrameFixture `yaml:"frames"`
}

type FrameFixture struct {
	ID           string  `yaml:"id"`
	Size         string  `yaml:"size"`
	PricingModel string  `yaml:"pricingModel"`
	Price        float64 `yaml:"price"`
}

type CampaignFixture struct {
	ID           string             `yaml:"id"`
	AdvertiserID string             `yaml:"advertiserId"`
	Name         string             `yaml:"name"`
	Budget       float64            `yaml:"budget"`
	DailyLimit   float64            `yaml:"dailyLimit"`
	EndDate      string             `yaml:"endDate"`
	TargetURL    string             `yaml:"targetUrl"`
	Approve      bool               `yaml:"approve"`
	Placements   []PlacementFixture `yaml:"placements"`
}

type PlacementFixture struct {
	ListingID string   `yaml:"listingId"`
	FrameIDs  []string `yaml:"frameIds"`
	Creative  string   `yaml:"creative"`
}

// SeedResult counts what Seed inserted. Rows that already existed are not
// counted.
type SeedResult struct {
	Listings  int
	Frames    int
	Campaigns int
}

// LoadFixture decodes a fixture, rejecting unknown keys.
func LoadFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// Seed inserts the fixture through the repositories. Listings and
// campaigns that already exist are skipped so seeding can be rerun; frames
// are always upserted.
func Seed(ctx context.Context, listings port.ListingRepository, campaigns port.CampaignRepository, f *Fixture, now time.Time) (SeedResult, error) {
	var res SeedResult
	now = now.UTC()

	for _, lf := range f.Listings {
		existing, err := listings.GetListing(ctx, lf.ID)
		if err != nil {
			return res, err
		}
		if existing == nil {
			err = listings.CreateListing(ctx, domain.Listing{
				ID:          lf.ID,
				PublisherID: lf.PublisherID,
				WebsiteURL:  lf.WebsiteURL,
				Category:    lf.Category,
				CreatedAt:   now,
			})
			if err != nil {
				return res, fmt.Errorf("listing %s: %w", lf.ID, err)
			}
			res.Listings++
		}
		for _, ff := range lf.Frames {
			model := domain.PricingModel(ff.PricingModel)
			price, err := domain.ParseUnits(ff.Price)
			if err != nil || !model.Valid() || price <= 0 {
				return res, fmt.Errorf("frame %s: %w: bad pricing", ff.ID, domain.ErrInvalidInput)
			}
			err = listings.UpsertFrame(ctx, domain.Frame{
				ID:           ff.ID,
				ListingID:    lf.ID,
				Size:         ff.Size,
				PricingModel: model,
				Price:        price,
				UpdatedAt:    now,
			})
			if err != nil {
				return res, fmt.Errorf("frame %s: %w", ff.ID, err)
			}
			res.Frames++
		}
	}

	for _, cf := range f.Campaigns {
		existing, err := campaigns.GetCampaign(ctx, cf.ID)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		end, err := time.Parse(time.DateOnly, cf.EndDate)
		if err != nil {
			return res, fmt.Errorf("campaign %s: %w: endDate must be YYYY-MM-DD", cf.ID, domain.ErrInvalidInput)
		}
		budget, err := domain.ParseUnits(cf.Budget)
		if err != nil || budget < 0 {
			return res, fmt.Errorf("campaign %s: %w: bad budget", cf.ID, domain.ErrInvalidInput)
		}
		dailyLimit, err := domain.ParseUnits(cf.DailyLimit)
		if err != nil || dailyLimit < 0 {
			return res, fmt.Errorf("campaign %s: %w: bad dailyLimit", cf.ID, domain.ErrInvalidInput)
		}
		c := domain.Campaign{
			ID:           cf.ID,
			AdvertiserID: cf.AdvertiserID,
			Name:         cf.Name,
			Budget:       budget,
			DailyLimit:   dailyLimit,
			EndDate:      end,
			TargetURL:    cf.TargetURL,
			Status:       domain.StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		for _, p := range cf.Placements {
			c.Placements = append(c.Placements, domain.Placement{
				ListingID: p.ListingID,
				FrameIDs:  p.FrameIDs,
				Creative:  p.Creative,
			})
		}
		if err = campaigns.CreateCampaign(ctx, c); err != nil {
			return res, fmt.Errorf("campaign %s: %w", cf.ID, err)
		}
		if cf.Approve {
			if err = campaigns.ApproveCampaign(ctx, cf.ID); err != nil {
				return res, fmt.Errorf("approve campaign %s: %w", cf.ID, err)
			}
		}
		res.Campaigns++
	}
	return res, nil
}
