package aggregate

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// Reducer converts interval records into whole minutes.
type Reducer struct {
	log *log.Logger
}

// NewReducer returns a Reducer that reports skipped records to logger.
func NewReducer(logger *log.Logger) Reducer {
	return Reducer{log: orDiscard(logger)}
}

// Measure returns the start instant and the duration in whole minutes of a
// completed record. ok is false for running records and for records whose
// timestamps do not parse. Negative durations are clamped to zero.
func (r Reducer) Measure(rec model.IntervalRecord) (start time.Time, minutes int, ok bool) {
	if rec.Start == nil || *rec.Start == "" || rec.Running() {
		return time.Time{}, 0, false
	}
	start, err := timecalc.ParseInstant(*rec.Start)
	if err != nil {
		r.log.Warn("skipping time entry", "id", rec.ID, "err", err)
		return time.Time{}, 0, false
	}
	stop, err := timecalc.ParseInstant(*rec.Stop)
	if err != nil {
		r.log.Warn("skipping time entry", "id", rec.ID, "err", err)
		return time.Time{}, 0, false
	}

	// Integer division truncates toward zero.
	minutes = int(stop.Sub(start) / time.Minute)
	if minutes < 0 {
		r.log.Warn("time entry stops before it starts, counting as zero",
			"id", rec.ID, "start", *rec.Start, "stop", *rec.Stop)
		minutes = 0
	}
	return start, minutes, true
}

// TotalMinutes sums the durations of all completed, well-formed records.
func (r Reducer) TotalMinutes(recs []model.IntervalRecord) int {
	total := 0
	for _, rec := range recs {
		if _, m, ok := r.Measure(rec); ok {
			total += m
		}
	}
	return total
}
