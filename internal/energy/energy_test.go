package energy_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/paperdash/internal/energy"
)

func TestMonthly(t *testing.T) {
	readings := []energy.Reading{
		{Date: "2026-02-28", KWh: 1300},
		{Date: "2026-01-15", KWh: 1100},
		{Date: "2026-01-31", KWh: 1150},
		{Date: "2026-03-10", KWh: 1360},
	}
	months := energy.Monthly(readings, 1000, 30, nil)
	require.Len(t, months, 3)

	assert.Equal(t, "2026-01", months[0].Key)
	assert.InDelta(t, 150, months[0].UsageKWh, 1e-9)
	assert.InDelta(t, 45.0, months[0].Cost, 1e-9)

	assert.Equal(t, "2026-02", months[1].Key)
	assert.InDelta(t, 150, months[1].UsageKWh, 1e-9)

	assert.Equal(t, "2026-03", months[2].Key)
	assert.InDelta(t, 60, months[2].UsageKWh, 1e-9)
	assert.InDelta(t, 18.0, months[2].Cost, 1e-9)
}

func TestMonthlyRoundsToCents(t *testing.T) {
	months := energy.Monthly([]energy.Reading{{Date: "2026-01-31", KWh: 10.333}}, 0, 29.9, nil)
	require.Len(t, months, 1)
	assert.InDelta(t, 3.09, months[0].Cost, 1e-9)
}

func TestMonthlySkipsBadDates(t *testing.T) {
	var buf bytes.Buffer
	readings := []energy.Reading{
		{Date: "31.01.2026", KWh: 5000},
		{Date: "2026-01-31", KWh: 100},
	}
	months := energy.Monthly(readings, 0, 10, log.New(&buf))
	require.Len(t, months, 1)
	assert.InDelta(t, 100, months[0].UsageKWh, 1e-9)
	assert.Contains(t, buf.String(), "skipping meter reading")
}

func TestSummarize(t *testing.T) {
	months := []energy.Month{
		{Key: "2025-12", UsageKWh: 200, Cost: 60},
		{Key: "2026-01", UsageKWh: 150, Cost: 45},
		{Key: "2026-02", UsageKWh: 150, Cost: 45},
		{Key: "2026-03", UsageKWh: 60, Cost: 18},
	}
	rep := energy.Summarize(months, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NotNil(t, rep.ThisMonth)
	require.NotNil(t, rep.LastMonth)
	require.NotNil(t, rep.BestMonth)
	assert.Equal(t, "2026-03", rep.ThisMonth.Key)
	assert.Equal(t, "2026-02", rep.LastMonth.Key)
	assert.Equal(t, "2026-03", rep.BestMonth.Key)

	rep = energy.Summarize(months[:3], time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-01", rep.ThisMonth.Key)
	assert.Equal(t, "2025-12", rep.LastMonth.Key)
	assert.Equal(t, "2026-01", rep.BestMonth.Key, "ties go to the earliest month")
}

func TestSummarizeEmpty(t *testing.T) {
	rep := energy.Summarize(nil, time.Now())
	assert.Nil(t, rep.ThisMonth)
	assert.Nil(t, rep.LastMonth)
	assert.Nil(t, rep.BestMonth)
}
