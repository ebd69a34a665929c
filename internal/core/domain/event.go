package domain

import (
	"time"
)

// EventKind distinguishes impressions from clicks.
type EventKind string

const (
	KindImpression EventKind = "impression"
	KindClick      EventKind = "click"
)

// Event is one append-only activity record. Key is the client supplied (or
// generated) idempotency key; a second event with the same key is ignored.
type Event struct {
	ID         int64
	Kind       EventKind
	Key        string
	CampaignID string
	FrameID    string
	Cost       Micros
	CreatedAt  time.Time
}

// EventCost returns what one event of the given kind costs on a frame with
// the given pricing. Clicks are charged on CPC frames, impressions on CPM
// frames, and nothing else is charged.
func EventCost(kind EventKind, model PricingModel, price Micros) Micros {
	switch {
	case kind == KindClick && model == PricingCPC:
		return price
	case kind == KindImpression && model == PricingCPM:
		return price / 1000
	default:
		return 0
	}
}

// CampaignTotals is the aggregate activity of a campaign.
type CampaignTotals struct {
	CampaignID  string
	Impressions int64
	Clicks      int64
	Spend       Micros
}

// CTR returns the click-through rate, zero when nothing was shown.
func (t CampaignTotals) CTR() float64 {
	if t.Impressions == 0 {
		return 0
	}
	return float64(t.Clicks) / float64(t.Impressions)
}

// EffectiveCPM returns spend per thousand impressions.
func (t CampaignTotals) EffectiveCPM() Micros {
	if t.Impressions == 0 {
		return 0
	}
	return Micros(int64(t.Spend) * 1000 / t.Impressions)
}
