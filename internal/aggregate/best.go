package aggregate

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// Best windows.
const (
	// WindowSinceStart scans from the tracking start date up to now.
	WindowSinceStart = "since_start"
	// WindowTrailingYear scans the 365 days before now.
	WindowTrailingYear = "trailing_365"
)

// Tally accumulates minutes per local calendar day and per ISO week.
type Tally struct {
	Days  map[string]int
	Weeks map[string]int
}

// Scan groups the completed records by the local day and ISO week of their
// start instant.
func Scan(recs []model.IntervalRecord, loc *time.Location, r Reducer) Tally {
	t := Tally{Days: map[string]int{}, Weeks: map[string]int{}}
	for _, rec := range recs {
		start, m, ok := r.Measure(rec)
		if !ok {
			continue
		}
		local := start.In(loc)
		t.Days[timecalc.DayLabel(local)] += m
		t.Weeks[timecalc.ISOWeekLabel(local)] += m
	}
	return t
}

// BestDay is the day with the most minutes; ties go to the earliest day.
func (t Tally) BestDay() model.Best {
	return maxBucket(t.Days)
}

// BestWeek is the week with the most minutes; ties go to the earliest week.
func (t Tally) BestWeek() model.Best {
	return maxBucket(t.Weeks)
}

// TopWeeks returns up to n weeks ordered by minutes, most first.
func (t Tally) TopWeeks(n int) []model.Best {
	weeks := make([]model.Best, 0, len(t.Weeks))
	for k, m := range t.Weeks {
		weeks = append(weeks, model.Best{Label: k, Minutes: m})
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Minutes != weeks[j].Minutes {
			return weeks[i].Minutes > weeks[j].Minutes
		}
		return weeks[i].Label < weeks[j].Label
	})
	if len(weeks) > n {
		weeks = weeks[:n]
	}
	return weeks
}

// Keys are ISO dates or ISO weeks, so lexical order is chronological.
func maxBucket(buckets map[string]int) model.Best {
	if len(buckets) == 0 {
		return model.Empty()
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := model.Best{Label: keys[0], Minutes: buckets[keys[0]]}
	for _, k := range keys[1:] {
		if buckets[k] > best.Minutes {
			best = model.Best{Label: k, Minutes: buckets[k]}
		}
	}
	return best
}

func logTopWeeks(logger *log.Logger, t Tally) {
	for _, w := range t.TopWeeks(5) {
		logger.Debug("top week", "week", w.Label, "tracked", timecalc.FormatMinutes(w.Minutes))
	}
}
