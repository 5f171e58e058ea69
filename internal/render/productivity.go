package render

import (
	"image"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// Productivity dashboard layout.
const (
	barWidth    = 280
	barHeight   = 16
	lineHeight  = 26
	lineSpacing = 12
	xMargin     = 20
	xBar        = 160
	yStart      = 30
	fontSize    = 22
	headerSize  = 26
)

// Productivity draws the daily, weekly and debt overview for snap. Bars
// compare today with dailyGoal and this week with five times dailyGoal.
func Productivity(snap model.MetricsSnapshot, dailyGoal int) (*image.Paletted, error) {
	c, err := NewCanvas(Width, Height, fontSize, headerSize)
	if err != nil {
		return nil, err
	}
	weeklyGoal := dailyGoal * 5

	y := yStart
	y = header(c, "DAILY OVERVIEW", y)
	y = labelBar(c, "Today", timecalc.FormatMinutes(snap.Today), snap.Today, dailyGoal, y)
	y = labelValue(c, "Yesterday", timecalc.FormatMinutes(snap.Yesterday), y)
	y = labelValue(c, "Best Day", formatBest(snap.BestDay), y)

	y += lineHeight
	y = header(c, "WEEKLY OVERVIEW", y)
	y = labelBar(c, "This Week", timecalc.FormatMinutes(snap.ThisWeek), snap.ThisWeek, weeklyGoal, y)
	y = labelValue(c, "Last Week", timecalc.FormatMinutes(snap.LastWeek), y)
	y = labelValue(c, "Best Week", formatBest(snap.BestWeek), y)

	y += lineHeight
	y = header(c, "PRODUCTIVITY DEBT", y)
	if deficit := snap.DailyDeficit(dailyGoal); deficit > 0 {
		y = line(c, "You owe: "+timecalc.FormatMinutes(deficit)+" today", y)
	} else {
		y = line(c, "Daily goal reached!", y)
	}
	if snap.Debt != nil {
		line(c, DebtText(*snap.Debt), y)
	}
	return c.Image(), nil
}

// DebtText describes the cumulative debt.
func DebtText(debt int) string {
	if debt > 0 {
		return "Total debt: " + timecalc.FormatMinutes(debt)
	}
	return "Ahead by: " + timecalc.FormatMinutes(-debt)
}

func formatBest(b model.Best) string {
	if b.IsEmpty() {
		return model.NoData
	}
	return b.Label + " (" + timecalc.FormatMinutes(b.Minutes) + ")"
}

func header(c *Canvas, title string, y int) int {
	c.Text(xMargin, y, title, true)
	return y + lineHeight + lineSpacing
}

func line(c *Canvas, s string, y int) int {
	c.Text(xMargin, y, s, false)
	return y + lineHeight + lineSpacing
}

func labelValue(c *Canvas, label, value string, y int) int {
	return line(c, label+": "+value, y)
}

func labelBar(c *Canvas, label, value string, minutes, goal, y int) int {
	c.Text(xMargin, y, label+": "+value, false)
	y += lineHeight
	frame := image.Rect(xBar, y, xBar+barWidth, y+barHeight)
	c.Outline(frame)
	if w := barFill(minutes, goal, barWidth); w > 0 {
		c.Fill(image.Rect(xBar, y, xBar+w, y+barHeight))
	}
	return y + barHeight + lineSpacing
}

// barFill scales minutes against goal onto width pixels, capped at width.
func barFill(minutes, goal, width int) int {
	if goal <= 0 || minutes <= 0 {
		return 0
	}
	if minutes >= goal {
		return width
	}
	return width * minutes / goal
}
