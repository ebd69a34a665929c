package domain

import "time"

// PricingModel is how a frame charges its occupying campaign.
type PricingModel string

const (
	PricingCPC PricingModel = "cpc"
	PricingCPM PricingModel = "cpm"
)

// Valid reports whether m is a known pricing model.
func (m PricingModel) Valid() bool {
	return m == PricingCPC || m == PricingCPM
}

// Listing is a publisher's website and the ad slots it exposes.
type Listing struct {
	ID          string
	PublisherID string
	WebsiteURL  string
	Category    string
	Frames      map[string]Frame
	CreatedAt   time.Time
}

// Frame is one ad slot. CampaignID is empty while the frame is vacant.
// Price is per click for CPC frames and per thousand impressions for CPM.
type Frame struct {
	ID           string
	ListingID    string
	CampaignID   string
	Creative     string
	Size         string
	PricingModel PricingModel
	Price        Micros
	UpdatedAt    time.Time
}

// Vacant reports whether no campaign occupies the frame.
func (f *Frame) Vacant() bool {
	return f.CampaignID == ""
}

// FrameEarnings is what a frame earned its publisher.
type FrameEarnings struct {
	FrameID     string
	Impressions int64
	Clicks      int64
	Earnings    Micros
}
