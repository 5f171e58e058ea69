// Package aggregate turns raw time entries into the calendar rollups shown on
// the dashboard.
package aggregate

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// DefaultChunkGap separates consecutive chunks of a split range.
const DefaultChunkGap = time.Second

// Source returns the interval records between two instants.
type Source interface {
	FetchRange(ctx context.Context, from, to time.Time) ([]model.IntervalRecord, error)
}

// Fetcher queries a Source, splitting ranges longer than MaxSpanDays into
// sequential chunks. A chunk that fails is logged and contributes nothing.
type Fetcher struct {
	src         Source
	maxSpanDays int
	gap         time.Duration
	log         *log.Logger
}

// NewFetcher returns a Fetcher. maxSpanDays below 1 is treated as 1 and a
// negative gap as zero.
func NewFetcher(src Source, maxSpanDays int, gap time.Duration, logger *log.Logger) *Fetcher {
	if maxSpanDays < 1 {
		maxSpanDays = 1
	}
	if gap < 0 {
		gap = 0
	}
	return &Fetcher{src: src, maxSpanDays: maxSpanDays, gap: gap, log: orDiscard(logger)}
}

// Chunks splits r (converted to UTC) into the sub-ranges Fetch will request.
// A range whose span in whole days does not exceed the limit is returned as is.
func (f *Fetcher) Chunks(r model.DateRange) []model.DateRange {
	r = r.UTC()
	if spanDays(r) <= f.maxSpanDays {
		return []model.DateRange{r}
	}

	step := time.Duration(f.maxSpanDays) * timecalc.Day
	var chunks []model.DateRange
	for cur := r.Start; cur.Before(r.End); {
		end := cur.Add(step)
		if end.After(r.End) {
			end = r.End
		}
		chunks = append(chunks, model.DateRange{Start: cur, End: end})
		cur = end.Add(f.gap)
	}
	return chunks
}

// Fetch returns all records in r, concatenated in chunk order. Failing
// chunks are skipped with a warning. The only error returned is the
// context's, in which case the records gathered so far are returned too.
func (f *Fetcher) Fetch(ctx context.Context, r model.DateRange) ([]model.IntervalRecord, error) {
	var out []model.IntervalRecord
	for _, c := range f.Chunks(r) {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		recs, err := f.src.FetchRange(ctx, c.Start, c.End)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return out, ctxErr
			}
			f.log.Warn("fetching time entries failed, skipping range",
				"from", timecalc.FormatInstant(c.Start),
				"to", timecalc.FormatInstant(c.End),
				"err", err)
			continue
		}
		out = append(out, recs...)
	}
	return out, nil
}

func spanDays(r model.DateRange) int {
	return int(r.End.Sub(r.Start) / timecalc.Day)
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
