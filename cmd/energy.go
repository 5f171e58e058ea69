package cmd

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/paperdash/internal/config"
	"github.com/Tiliavir/paperdash/internal/energy"
	"github.com/Tiliavir/paperdash/internal/render"
)

var (
	energyShow bool
	energyOut  string
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Render the monthly electricity summary",
	Args:  cobra.NoArgs,
	RunE:  runEnergy,
}

func init() {
	energyCmd.Flags().BoolVar(&energyShow, "show", false, "Print the summary instead of rendering it")
	energyCmd.Flags().StringVar(&energyOut, "out", "", "Write a PNG to this path instead of the configured display")
}

func runEnergy(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	months := energy.Monthly(energyReadings(cfg), cfg.Energy.StartReadingKWh, cfg.Energy.PriceCentsPerKWh, logger)
	rep := energy.Summarize(months, time.Now().In(loc))
	logger.Debug("energy summary", "months", len(months))

	if energyShow {
		_, err := io.WriteString(cmd.OutOrStdout(), render.EnergyText(rep, isTerminal(cmd.OutOrStdout())))
		return err
	}

	img, err := render.Energy(rep)
	if err != nil {
		return err
	}
	return showOn(displayFor(cfg, energyOut), img, logger)
}

func energyReadings(cfg *config.Config) []energy.Reading {
	readings := make([]energy.Reading, 0, len(cfg.Energy.Readings))
	for _, r := range cfg.Energy.Readings {
		readings = append(readings, energy.Reading{Date: r.Date, KWh: r.KWh})
	}
	return readings
}
