package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/paperdash/internal/model"
)

// Settings parameterises an Engine.
type Settings struct {
	// Location defines calendar days and weeks.
	Location         *time.Location
	DailyGoalMinutes int
	// TrackingStart is the first day that counts towards the debt and, with
	// WindowSinceStart, the start of the best-of scan.
	TrackingStart time.Time
	BestWindow    string
	TrackDebt     bool
}

// Engine computes a MetricsSnapshot from a Fetcher.
type Engine struct {
	fetch    *Fetcher
	reduce   Reducer
	settings Settings
	log      *log.Logger
}

// NewEngine returns an Engine. A nil Location means UTC.
func NewEngine(f *Fetcher, s Settings, logger *log.Logger) *Engine {
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.BestWindow == "" {
		s.BestWindow = WindowSinceStart
	}
	logger = orDiscard(logger)
	return &Engine{fetch: f, reduce: NewReducer(logger), settings: s, log: logger}
}

// Snapshot computes every metric for now. It always returns a snapshot: a
// metric that cannot be computed is logged and left at its zero value.
func (e *Engine) Snapshot(ctx context.Context, now time.Time) model.MetricsSnapshot {
	now = now.In(e.settings.Location)
	snap := model.MetricsSnapshot{
		GeneratedAt: now,
		BestDay:     model.Empty(),
		BestWeek:    model.Empty(),
	}

	b, err := e.Buckets(ctx, now)
	if err != nil {
		e.log.Warn("calendar totals incomplete", "err", err)
	}
	snap.Today, snap.Yesterday, snap.ThisWeek, snap.LastWeek = b.Today, b.Yesterday, b.ThisWeek, b.LastWeek

	if day, week, err := e.Best(ctx, e.BestRange(now)); err != nil {
		e.log.Warn("best day and week unavailable", "err", err)
	} else {
		snap.BestDay, snap.BestWeek = day, week
	}

	if e.settings.TrackDebt {
		if debt, err := e.Debt(ctx, now); err != nil {
			e.log.Warn("productivity debt unavailable", "err", err)
		} else {
			snap.Debt = &debt
		}
	}
	return snap
}

// Buckets fetches and totals today, yesterday, this week and last week.
// Totals computed before an error are kept in the result.
func (e *Engine) Buckets(ctx context.Context, now time.Time) (Buckets, error) {
	rs := CalendarRanges(now.In(e.settings.Location))
	var b Buckets
	var err error
	for _, bucket := range []struct {
		name string
		r    model.DateRange
		dst  *int
	}{
		{"today", rs.Today, &b.Today},
		{"yesterday", rs.Yesterday, &b.Yesterday},
		{"this week", rs.ThisWeek, &b.ThisWeek},
		{"last week", rs.LastWeek, &b.LastWeek},
	} {
		if *bucket.dst, err = e.Total(ctx, bucket.r); err != nil {
			return b, fmt.Errorf("%s: %w", bucket.name, err)
		}
	}
	return b, nil
}

// Total fetches r and returns the tracked minutes in it.
func (e *Engine) Total(ctx context.Context, r model.DateRange) (int, error) {
	recs, err := e.fetch.Fetch(ctx, r)
	if err != nil {
		return 0, err
	}
	return e.reduce.TotalMinutes(recs), nil
}

// BestRange is the window scanned for the best day and week.
func (e *Engine) BestRange(now time.Time) model.DateRange {
	now = now.In(e.settings.Location)
	if e.settings.BestWindow == WindowTrailingYear {
		return model.DateRange{Start: now.AddDate(0, 0, -365), End: now}
	}
	return model.DateRange{Start: e.trackingStart(), End: now}
}

// Best returns the best day and week within window.
func (e *Engine) Best(ctx context.Context, window model.DateRange) (day, week model.Best, err error) {
	recs, err := e.fetch.Fetch(ctx, window)
	if err != nil {
		return model.Empty(), model.Empty(), err
	}
	t := Scan(recs, e.settings.Location, e.reduce)
	logTopWeeks(e.log, t)
	return t.BestDay(), t.BestWeek(), nil
}

// Debt returns the required minutes since the tracking start minus the
// minutes actually tracked since then.
func (e *Engine) Debt(ctx context.Context, now time.Time) (int, error) {
	now = now.In(e.settings.Location)
	start := e.trackingStart()
	actual, err := e.Total(ctx, model.DateRange{Start: start, End: now})
	if err != nil {
		return 0, err
	}
	return Debt(RequiredMinutes(start, now, e.settings.DailyGoalMinutes), actual), nil
}

func (e *Engine) trackingStart() time.Time {
	ts := e.settings.TrackingStart
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, e.settings.Location)
}
