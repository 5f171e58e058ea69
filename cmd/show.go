package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/render"
)

var (
	showFormat string
	showNotify bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the productivity metrics",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "md", "Output format: md, csv, json")
	showCmd.Flags().BoolVar(&showNotify, "notify", false, "Also send a desktop notification with today's status")
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := checkFormat(showFormat); err != nil {
		return err
	}
	logger := newLogger()
	cfg, snap, err := snapshot(cmd.Context(), logger, time.Now())
	if err != nil {
		return err
	}
	if showNotify {
		if err := notify(snap, cfg.Settings.DailyGoalMinutes); err != nil {
			logger.Warn("desktop notification failed", "err", err)
		}
	}
	return writeSnapshot(cmd.OutOrStdout(), snap, cfg.Settings.DailyGoalMinutes, showFormat, isTerminal(cmd.OutOrStdout()))
}

func checkFormat(format string) error {
	switch format {
	case "md", "csv", "json":
		return nil
	}
	return fmt.Errorf("unknown format %q (want md, csv or json)", format)
}

func writeSnapshot(w io.Writer, snap model.MetricsSnapshot, dailyGoal int, format string, styled bool) error {
	var out string
	switch format {
	case "csv":
		out = render.CSV(snap)
	case "json":
		data, err := render.JSON(snap)
		if err != nil {
			return err
		}
		out = string(data) + "\n"
	default: // md
		out = render.Text(snap, dailyGoal, styled)
	}
	_, err := io.WriteString(w, out)
	return err
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
