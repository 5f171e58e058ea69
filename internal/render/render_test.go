package render_test

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/paperdash/internal/energy"
	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/render"
)

func blackPixels(img *image.Paletted, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.ColorIndexAt(x, y) == 1 {
				n++
			}
		}
	}
	return n
}

func sampleSnapshot() model.MetricsSnapshot {
	debt := 1500
	return model.MetricsSnapshot{
		GeneratedAt: time.Date(2025, 4, 15, 18, 0, 0, 0, time.UTC),
		Today:       90,
		Yesterday:   120,
		ThisWeek:    210,
		LastWeek:    240,
		BestDay:     model.Best{Label: "2025-04-10", Minutes: 240},
		BestWeek:    model.Best{Label: "2025-W15", Minutes: 240},
		Debt:        &debt,
	}
}

func TestProductivity(t *testing.T) {
	img, err := render.Productivity(sampleSnapshot(), 390)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, render.Width, render.Height), img.Bounds())

	// Header text.
	assert.Positive(t, blackPixels(img, image.Rect(0, 30, render.Width, 60)))
	// Today's bar frame is drawn but mostly empty at 90 of 390 minutes.
	assert.Equal(t, uint8(1), img.ColorIndexAt(160, 100))
	assert.Equal(t, uint8(1), img.ColorIndexAt(180, 100))
	assert.Equal(t, uint8(0), img.ColorIndexAt(400, 100))
	// Nothing drawn below the debt section.
	assert.Zero(t, blackPixels(img, image.Rect(0, 760, render.Width, render.Height)))
}

func TestProductivityFullBar(t *testing.T) {
	snap := sampleSnapshot()
	snap.Today = 500
	img, err := render.Productivity(snap, 390)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), img.ColorIndexAt(400, 100))
}

func TestEnergy(t *testing.T) {
	m := energy.Month{Key: "2026-03", UsageKWh: 33.3, Cost: 10}
	img, err := render.Energy(energy.Report{ThisMonth: &m, BestMonth: &m})
	require.NoError(t, err)

	// A cost of 10 gives a 50 pixel bar on the line below the label.
	assert.Equal(t, uint8(1), img.ColorIndexAt(40, 95))
	assert.Equal(t, uint8(1), img.ColorIndexAt(69, 95))
	assert.Equal(t, uint8(0), img.ColorIndexAt(75, 95))
}

func TestText(t *testing.T) {
	out := render.Text(sampleSnapshot(), 390, false)

	assert.Contains(t, out, "DAILY OVERVIEW")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "2025-04-10 (4h 0m)")
	assert.Contains(t, out, "2025-W15 (4h 0m)")
	assert.Contains(t, out, "You owe: 5h 0m today")
	assert.Contains(t, out, "Total debt: 25h 0m")
	assert.NotContains(t, out, "\x1b[")
}

func TestTextGoalReached(t *testing.T) {
	snap := sampleSnapshot()
	snap.Today = 400
	snap.Debt = nil
	snap.BestDay = model.Empty()
	out := render.Text(snap, 390, false)

	assert.Contains(t, out, "Daily goal reached!")
	assert.Contains(t, out, "Best Day:    No data")
	assert.NotContains(t, out, "debt:")
}

func TestCSV(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(render.CSV(sampleSnapshot())), "\n")
	assert.Equal(t, []string{
		"metric,label,minutes",
		"today,2025-04-15,90",
		"yesterday,2025-04-14,120",
		"this_week,2025-W16,210",
		"last_week,2025-W15,240",
		"best_day,2025-04-10,240",
		"best_week,2025-W15,240",
		"debt,,1500",
	}, lines)
}

func TestJSON(t *testing.T) {
	data, err := render.JSON(sampleSnapshot())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"best_week": {`)
	assert.Contains(t, string(data), `"debt_minutes": 1500`)
}

func TestDebtText(t *testing.T) {
	assert.Equal(t, "Total debt: 1h 0m", render.DebtText(60))
	assert.Equal(t, "Ahead by: 0h 0m", render.DebtText(0))
	assert.Equal(t, "Ahead by: 2h 5m", render.DebtText(-125))
}

func TestEnergyText(t *testing.T) {
	m := energy.Month{Key: "2026-03", UsageKWh: 60, Cost: 18}
	out := render.EnergyText(energy.Report{ThisMonth: &m}, false)
	assert.Contains(t, out, "This Month (2026-03): €18.00, 60.0 kWh")
	assert.NotContains(t, out, "Last Month")
}
