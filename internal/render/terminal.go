package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/paperdash/internal/energy"
	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

const textBarWidth = 28

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#64b5f6")).Bold(true)
	styleLabel  = lipgloss.NewStyle().Width(12)
	styleValue  = lipgloss.NewStyle().Bold(true)
	styleGood   = lipgloss.NewStyle().Foreground(lipgloss.Color("#66bb6a"))
	styleBad    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef5350"))
	styleMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// styler applies lipgloss styles only when output goes to a terminal.
type styler bool

func (s styler) apply(st lipgloss.Style, text string) string {
	if !s {
		return text
	}
	return st.Render(text)
}

// Text renders snap as the terminal equivalent of the panel layout.
func Text(snap model.MetricsSnapshot, dailyGoal int, styled bool) string {
	s := styler(styled)
	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", s.apply(styleLabel, fmt.Sprintf("%-12s", label+":")), s.apply(styleValue, value))
	}
	bar := func(minutes, goal int) {
		n := barFill(minutes, goal, textBarWidth)
		fmt.Fprintf(&b, "%-13s[%s%s]\n", "", strings.Repeat("#", n), s.apply(styleMuted, strings.Repeat(".", textBarWidth-n)))
	}

	fmt.Fprintln(&b, s.apply(styleHeader, "DAILY OVERVIEW"))
	row("Today", timecalc.FormatMinutes(snap.Today))
	bar(snap.Today, dailyGoal)
	row("Yesterday", timecalc.FormatMinutes(snap.Yesterday))
	row("Best Day", formatBest(snap.BestDay))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, s.apply(styleHeader, "WEEKLY OVERVIEW"))
	row("This Week", timecalc.FormatMinutes(snap.ThisWeek))
	bar(snap.ThisWeek, dailyGoal*5)
	row("Last Week", timecalc.FormatMinutes(snap.LastWeek))
	row("Best Week", formatBest(snap.BestWeek))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, s.apply(styleHeader, "PRODUCTIVITY DEBT"))
	if deficit := snap.DailyDeficit(dailyGoal); deficit > 0 {
		fmt.Fprintln(&b, s.apply(styleBad, "You owe: "+timecalc.FormatMinutes(deficit)+" today"))
	} else {
		fmt.Fprintln(&b, s.apply(styleGood, "Daily goal reached!"))
	}
	if snap.Debt != nil {
		st := styleGood
		if *snap.Debt > 0 {
			st = styleBad
		}
		fmt.Fprintln(&b, s.apply(st, DebtText(*snap.Debt)))
	}
	return b.String()
}

// CSV renders snap as metric,label,minutes rows.
func CSV(snap model.MetricsSnapshot) string {
	var b strings.Builder
	b.WriteString("metric,label,minutes\n")
	write := func(metric, label string, minutes int) {
		fmt.Fprintf(&b, "%s,%s,%d\n", metric, csvEscape(label), minutes)
	}
	write("today", timecalc.DayLabel(snap.GeneratedAt), snap.Today)
	write("yesterday", timecalc.DayLabel(snap.GeneratedAt.AddDate(0, 0, -1)), snap.Yesterday)
	write("this_week", timecalc.ISOWeekLabel(snap.GeneratedAt), snap.ThisWeek)
	write("last_week", timecalc.ISOWeekLabel(snap.GeneratedAt.AddDate(0, 0, -7)), snap.LastWeek)
	write("best_day", snap.BestDay.Label, snap.BestDay.Minutes)
	write("best_week", snap.BestWeek.Label, snap.BestWeek.Minutes)
	if snap.Debt != nil {
		write("debt", "", *snap.Debt)
	}
	return b.String()
}

// JSON renders snap as indented JSON.
func JSON(snap model.MetricsSnapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// EnergyText renders rep for the terminal.
func EnergyText(rep energy.Report, styled bool) string {
	s := styler(styled)
	var b strings.Builder
	fmt.Fprintln(&b, s.apply(styleHeader, "Monthly Electricity Summary"))
	for _, m := range []struct {
		label string
		month *energy.Month
	}{
		{"This Month", rep.ThisMonth},
		{"Last Month", rep.LastMonth},
		{"Best Month", rep.BestMonth},
	} {
		if m.month == nil {
			continue
		}
		fmt.Fprintf(&b, "%s (%s): %s, %s kWh\n", m.label, m.month.Key,
			s.apply(styleValue, fmt.Sprintf("€%.2f", m.month.Cost)),
			strconv.FormatFloat(m.month.UsageKWh, 'f', 1, 64))
	}
	return b.String()
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
