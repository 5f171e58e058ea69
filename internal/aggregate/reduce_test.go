package aggregate_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/paperdash/internal/aggregate"
	"github.com/Tiliavir/paperdash/internal/model"
)

func TestTotalMinutesEmpty(t *testing.T) {
	r := aggregate.NewReducer(nil)
	assert.Equal(t, 0, r.TotalMinutes(nil))
	assert.Equal(t, 0, r.TotalMinutes([]model.IntervalRecord{}))
}

func TestTotalMinutesSameDay(t *testing.T) {
	recs := []model.IntervalRecord{
		rec("2026-02-27T09:00:00+01:00", "2026-02-27T10:30:00+01:00"),
		rec("2026-02-27T10:30:00+01:00", "2026-02-27T11:00:00+01:00"),
		rec("2026-02-27T14:00:00+01:00", "2026-02-27T14:00:00+01:00"),
	}
	assert.Equal(t, 120, aggregate.NewReducer(nil).TotalMinutes(recs))
}

func TestTotalMinutesIsOrderIndependent(t *testing.T) {
	recs := []model.IntervalRecord{
		rec("2026-02-27T09:00:00Z", "2026-02-27T09:59:59Z"),
		rec("2026-02-27T11:00:00Z", "2026-02-27T11:45:30Z"),
		rec("2026-02-28T22:00:00Z", "2026-03-01T01:07:00Z"),
		rec("2026-03-02T08:00:00Z", "2026-03-02T08:00:59Z"),
	}
	r := aggregate.NewReducer(nil)
	want := r.TotalMinutes(recs)
	assert.Equal(t, 59+45+187+0, want)

	reversed := make([]model.IntervalRecord, len(recs))
	for i, rc := range recs {
		reversed[len(recs)-1-i] = rc
	}
	assert.Equal(t, want, r.TotalMinutes(reversed))

	rotated := append(append([]model.IntervalRecord{}, recs[2:]...), recs[:2]...)
	assert.Equal(t, want, r.TotalMinutes(rotated))
}

func TestTotalMinutesSkipsRunningRecord(t *testing.T) {
	start := "2026-02-27T09:00:00Z"
	empty := ""
	recs := []model.IntervalRecord{
		{Start: &start},
		{Start: &start, Stop: &empty},
		{Stop: &start},
		rec("2026-02-27T10:00:00Z", "2026-02-27T10:20:00Z"),
	}
	assert.Equal(t, 20, aggregate.NewReducer(nil).TotalMinutes(recs))
}

func TestTotalMinutesSkipsMalformedRecord(t *testing.T) {
	var buf bytes.Buffer
	recs := []model.IntervalRecord{
		rec("not a timestamp", "2026-02-27T10:00:00Z"),
		rec("2026-02-27T10:00:00Z", "2026-02-27 11:00"),
		rec("2026-02-27T12:00:00Z", "2026-02-27T12:40:00Z"),
	}
	assert.Equal(t, 40, aggregate.NewReducer(log.New(&buf)).TotalMinutes(recs))
	assert.Contains(t, buf.String(), "skipping time entry")
}

func TestTotalMinutesClampsNegativeDuration(t *testing.T) {
	var buf bytes.Buffer
	recs := []model.IntervalRecord{
		rec("2026-02-27T10:00:00Z", "2026-02-27T09:00:00Z"),
		rec("2026-02-27T12:00:00Z", "2026-02-27T12:30:00Z"),
	}
	assert.Equal(t, 30, aggregate.NewReducer(log.New(&buf)).TotalMinutes(recs))
	assert.Contains(t, buf.String(), "stops before it starts")
}

func TestMeasureTruncates(t *testing.T) {
	_, m, ok := aggregate.NewReducer(nil).Measure(rec("2026-02-27T10:00:00Z", "2026-02-27T10:01:59.999Z"))
	assert.True(t, ok)
	assert.Equal(t, 1, m)
}
