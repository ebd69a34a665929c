package domain

import "time"

// IsActive reports whether a campaign may serve. A campaign is active iff it
// is approved, its end date has not passed (compared at day precision) and,
// when it has a budget, spend to date is strictly below it.
func IsActive(c Campaign, spendToDate Micros, today time.Time) bool {
	if c.Status != StatusApproved {
		return false
	}
	if DateOf(c.EndDate).Before(DateOf(today)) {
		return false
	}
	return c.Budget == 0 || spendToDate < c.Budget
}

// WithinDailyLimit reports whether today's spend still leaves room under the
// campaign's daily limit.
func WithinDailyLimit(c Campaign, spentToday Micros) bool {
	return c.DailyLimit == 0 || spentToday < c.DailyLimit
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
