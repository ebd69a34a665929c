package httpadapter

import (
	"slices"
	"strings"
	"time"

	"adframe/internal/core/domain"
)

type listingView struct {
	ID          string      `json:"id"`
	PublisherID string      `json:"publisherId"`
	WebsiteURL  string      `json:"websiteUrl"`
	Category    string      `json:"category"`
	Frames      []frameView `json:"frames"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type frameView struct {
	ID           string    `json:"id"`
	ListingID    string    `json:"listingId"`
	CampaignID   string    `json:"campaignId,omitempty"`
	Creative     string    `json:"creative,omitempty"`
	Size         string    `json:"size"`
	PricingModel string    `json:"pricingModel"`
	Price        float64   `json:"price"`
	Vacant       bool      `json:"vacant"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type campaignView struct {
	ID           string          `json:"id"`
	AdvertiserID string          `json:"advertiserId"`
	Name         string          `json:"name"`
	Budget       float64         `json:"budget"`
	DailyLimit   float64         `json:"dailyLimit"`
	EndDate      string          `json:"endDate"`
	TargetURL    string          `json:"targetUrl"`
	Status       string          `json:"status"`
	Placements   []placementView `json:"placements"`
	Impressions  int64           `json:"impressions"`
	Clicks       int64           `json:"clicks"`
	Spend        float64         `json:"spend"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type placementView struct {
	ListingID string   `json:"listingId"`
	FrameIDs  []string `json:"frameIds"`
	Creative  string   `json:"creative"`
}

func newListingView(l *domain.Listing) listingView {
	v := listingView{
		ID:          l.ID,
		PublisherID: l.PublisherID,
		WebsiteURL:  l.WebsiteURL,
		Category:    l.Category,
		Frames:      make([]frameView, 0, len(l.Frames)),
		CreatedAt:   l.CreatedAt,
	}
	for _, f := range l.Frames {
		v.Frames = append(v.Frames, newFrameView(f))
	}
	slices.SortFunc(v.Frames, func(a, b frameView) int { return strings.Compare(a.ID, b.ID) })
	return v
}

func newFrameView(f domain.Frame) frameView {
	return frameView{
		ID:           f.ID,
		ListingID:    f.ListingID,
		CampaignID:   f.CampaignID,
		Creative:     f.Creative,
		Size:         f.Size,
		PricingModel: string(f.PricingModel),
		Price:        f.Price.Units(),
		Vacant:       f.Vacant(),
		UpdatedAt:    f.UpdatedAt,
	}
}

func newCampaignView(c *domain.Campaign) campaignView {
	v := campaignView{
		ID:           c.ID,
		AdvertiserID: c.AdvertiserID,
		Name:         c.Name,
		Budget:       c.Budget.Units(),
		DailyLimit:   c.DailyLimit.Units(),
		EndDate:      c.EndDate.Format(time.DateOnly),
		TargetURL:    c.TargetURL,
		Status:       string(c.Status),
		Placements:   make([]placementView, 0, len(c.Placements)),
		Impressions:  c.Impressions,
		Clicks:       c.Clicks,
		Spend:        c.Spend.Units(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, p := range c.Placements {
		v.Placements = append(v.Placements, placementView{
			ListingID: p.ListingID,
			FrameIDs:  p.FrameIDs,
			Creative:  p.Creative,
		})
	}
	return v
}
