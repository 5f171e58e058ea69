package aggregate_test

import (
	"context"
	"time"

	"github.com/Tiliavir/paperdash/internal/model"
)

// fakeSource serves records whose start lies in [from, to).
type fakeSource struct {
	records []model.IntervalRecord
	fail    func(from, to time.Time) error
	calls   []model.DateRange
}

func (f *fakeSource) FetchRange(_ context.Context, from, to time.Time) ([]model.IntervalRecord, error) {
	f.calls = append(f.calls, model.DateRange{Start: from, End: to})
	if f.fail != nil {
		if err := f.fail(from, to); err != nil {
			return nil, err
		}
	}
	var out []model.IntervalRecord
	for _, r := range f.records {
		if r.Start == nil {
			continue
		}
		s, err := time.Parse(time.RFC3339, *r.Start)
		if err != nil {
			continue
		}
		if !s.Before(from) && s.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func rec(start, stop string) model.IntervalRecord {
	return model.IntervalRecord{Start: &start, Stop: &stop}
}

// span builds a completed record starting at start and lasting d.
func span(id int64, start time.Time, d time.Duration) model.IntervalRecord {
	r := rec(start.UTC().Format(time.RFC3339), start.Add(d).UTC().Format(time.RFC3339))
	r.ID = id
	return r
}

func ids(recs []model.IntervalRecord) []int64 {
	out := []int64{}
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
