package model

import "time"

// NoData labels a Best that was computed from an empty record set.
const NoData = "No data"

// Best is a calendar key (a date "2006-01-02" or an ISO week "2026-W09")
// together with the minutes tracked in it.
type Best struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// Empty returns the sentinel Best used when there is nothing to report.
func Empty() Best {
	return Best{Label: NoData}
}

// IsEmpty reports whether b is the "no data" sentinel.
func (b Best) IsEmpty() bool {
	return b.Label == "" || b.Label == NoData
}

// MetricsSnapshot is the aggregated view handed to the renderer. It is built
// fresh on every run and never modified afterwards.
type MetricsSnapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Today       int       `json:"today"`
	Yesterday   int       `json:"yesterday"`
	ThisWeek    int       `json:"this_week"`
	LastWeek    int       `json:"last_week"`
	BestDay     Best      `json:"best_day"`
	BestWeek    Best      `json:"best_week"`
	// Debt is nil unless debt tracking is enabled. Positive means behind goal.
	Debt *int `json:"debt_minutes,omitempty"`
}

// DailyDeficit is the number of minutes still missing to reach goal today,
// floored at zero.
func (s MetricsSnapshot) DailyDeficit(goal int) int {
	if d := goal - s.Today; d > 0 {
		return d
	}
	return 0
}
