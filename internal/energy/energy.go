// Package energy summarises electricity meter readings per calendar month.
package energy

import (
	"io"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// Reading is a cumulative meter value taken on a date ("2006-01-02").
type Reading struct {
	Date string
	KWh  float64
}

// Month is the usage and cost attributed to one calendar month ("2006-01").
type Month struct {
	Key      string
	UsageKWh float64
	// Cost is in the tariff's major currency unit, rounded to cents.
	Cost float64
}

// Report is what the energy dashboard shows. Missing months are nil.
type Report struct {
	ThisMonth *Month
	LastMonth *Month
	// BestMonth is the cheapest month on record.
	BestMonth *Month
}

// Monthly turns readings into per-month usage. Each reading's difference to
// the previous one (startKWh before the first) belongs to the reading's
// month. Readings with an unparsable date are logged and skipped.
func Monthly(readings []Reading, startKWh, priceCentsPerKWh float64, logger *log.Logger) []Month {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	type dated struct {
		at  time.Time
		kwh float64
	}
	var valid []dated
	for _, r := range readings {
		t, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			logger.Warn("skipping meter reading", "date", r.Date, "err", err)
			continue
		}
		valid = append(valid, dated{at: t, kwh: r.KWh})
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].at.Before(valid[j].at) })

	usage := map[string]float64{}
	previous := startKWh
	for _, d := range valid {
		usage[timecalc.MonthLabel(d.at)] += d.kwh - previous
		previous = d.kwh
	}

	months := make([]Month, 0, len(usage))
	for k, u := range usage {
		months = append(months, Month{Key: k, UsageKWh: u, Cost: roundCents(u * priceCentsPerKWh / 100)})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Key < months[j].Key })
	return months
}

// Summarize picks the months shown for now. Ties for the cheapest month go
// to the earliest.
func Summarize(months []Month, now time.Time) Report {
	thisKey := timecalc.MonthLabel(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastKey := timecalc.MonthLabel(firstOfMonth.AddDate(0, 0, -1))

	var rep Report
	for i := range months {
		m := &months[i]
		switch m.Key {
		case thisKey:
			rep.ThisMonth = m
		case lastKey:
			rep.LastMonth = m
		}
		if rep.BestMonth == nil || m.Cost < rep.BestMonth.Cost {
			rep.BestMonth = m
		}
	}
	return rep
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
