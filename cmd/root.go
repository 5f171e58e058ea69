package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "paperdash",
	Short: "paperdash – productivity and energy dashboards for e-paper panels",
	Long: `paperdash fetches your Toggl Track time entries, rolls them up into daily
and weekly totals, and renders them as a 1-bit bitmap for a 480x800 e-paper
panel. Configuration lives in ~/.paperdash/config.yaml.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
// An interrupt cancels in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.paperdash/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(energyCmd)
}

// newLogger writes to stderr so stdout stays clean for show output.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Stamp,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
