package cmd

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/paperdash/internal/config"
	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/panel"
	"github.com/Tiliavir/paperdash/internal/publish"
	"github.com/Tiliavir/paperdash/internal/render"
)

var (
	renderOut       string
	renderNoPublish bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the productivity dashboard to the panel",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Write a PNG to this path instead of the configured display")
	renderCmd.Flags().BoolVar(&renderNoPublish, "no-publish", false, "Skip the MQTT publish even when a broker is configured")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, snap, err := snapshot(cmd.Context(), logger, time.Now())
	if err != nil {
		return err
	}

	img, err := render.Productivity(snap, cfg.Settings.DailyGoalMinutes)
	if err != nil {
		return err
	}
	if err := showOn(displayFor(cfg, renderOut), img, logger); err != nil {
		return err
	}

	if renderNoPublish || cfg.Publish.MQTT.Broker == "" {
		return nil
	}
	return publishSnapshot(cfg, snap, logger)
}

// displayFor selects the panel sink. A non-empty out always means a PNG file.
func displayFor(cfg *config.Config, out string) panel.Panel {
	if out != "" {
		return &panel.FileSink{Path: out}
	}
	if cfg.Display.Sink == "raw" {
		return &panel.RawSink{Path: cfg.Display.Path, Width: cfg.Display.Width, Height: cfg.Display.Height}
	}
	return &panel.FileSink{Path: cfg.Display.Path}
}

func showOn(p panel.Panel, img image.Image, logger *log.Logger) error {
	if err := panel.Show(p, img); err != nil {
		return err
	}
	switch s := p.(type) {
	case *panel.FileSink:
		logger.Info("dashboard written", "path", s.Path)
	case *panel.RawSink:
		logger.Info("panel buffer written", "path", s.Path)
	}
	return nil
}

func publishSnapshot(cfg *config.Config, snap model.MetricsSnapshot, logger *log.Logger) error {
	m := cfg.Publish.MQTT
	pub, err := publish.Connect(publish.Options{
		Broker:   m.Broker,
		Topic:    m.Topic,
		ClientID: m.ClientID,
		Username: m.Username,
		Password: m.Password,
	})
	if err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	defer pub.Close()

	if err := pub.Publish(snap); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	logger.Info("snapshot published", "broker", m.Broker)
	return nil
}
