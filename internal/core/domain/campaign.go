package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusPending  CampaignStatus = "pending"
	StatusApproved CampaignStatus = "approved"
	StatusRejected CampaignStatus = "rejected"
	StatusArchived CampaignStatus = "archived"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// Campaign is an advertiser's purchase of one or more frames.
// Budget and DailyLimit of zero mean unlimited.
type Campaign struct {
	ID           string
	AdvertiserID string
	Name         string
	Budget       Micros
	DailyLimit   Micros
	EndDate      time.Time // calendar date, UTC midnight
	TargetURL    string
	Status       CampaignStatus
	Placements   []Placement

	// Impressions, Clicks and Spend are the authoritative aggregate
	// counters. They only ever move through atomic increments in the
	// same transaction that appends the matching event.
	Impressions int64
	Clicks      int64
	Spend       Micros

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Placement is the set of frames a campaign bought on one listing together
// with the creative shown in them.
type Placement struct {
	ListingID string
	FrameIDs  []string
	Creative  string
}

// ListingIDs returns the distinct listing ids of the campaign's placements.
func (c *Campaign) ListingIDs() []string {
	seen := make(map[string]struct{}, len(c.Placements))
	out := make([]string, 0, len(c.Placements))
	for _, p := range c.Placements {
		if _, ok := seen[p.ListingID]; ok {
			continue
		}
		seen[p.ListingID] = struct{}{}
		out = append(out, p.ListingID)
	}
	return out
}

// CanTransition reports whether a campaign may move from one status to
// another. Archived campaigns are restored to pending and must be approved
// again before they serve.
func CanTransition(from, to CampaignStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected || to == StatusArchived
	case StatusApproved, StatusRejected:
		return to == StatusArchived
	case StatusArchived:
		return to == StatusPending
	}
	return false
}
