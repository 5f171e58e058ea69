package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/paperdash/internal/aggregate"
	"github.com/Tiliavir/paperdash/internal/config"
	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/toggl"
)

var errNoToken = errors.New("no API token configured: set api.token in the config file or TOGGL_API_TOKEN")

// newEngine wires the Toggl client, fetcher and engine from cfg.
func newEngine(ctx context.Context, cfg *config.Config, src aggregate.Source, logger *log.Logger) (*aggregate.Engine, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	start, err := cfg.TrackingStart()
	if err != nil {
		return nil, err
	}
	if src == nil {
		if cfg.API.Token == "" {
			return nil, errNoToken
		}
		src = toggl.NewClient(ctx, toggl.Options{
			BaseURL: cfg.API.BaseURL,
			Token:   cfg.API.Token,
			Auth:    cfg.API.Auth,
			Timeout: cfg.API.Timeout,
			Logger:  logger,
		})
	}

	fetcher := aggregate.NewFetcher(src, cfg.Settings.MaxDateRangeDays, cfg.Settings.ChunkGap, logger)
	return aggregate.NewEngine(fetcher, aggregate.Settings{
		Location:         loc,
		DailyGoalMinutes: cfg.Settings.DailyGoalMinutes,
		TrackingStart:    start,
		BestWindow:       cfg.Settings.BestWindow,
		TrackDebt:        cfg.Settings.TrackDebt,
	}, logger), nil
}

// snapshot loads the config and computes the metrics for now.
func snapshot(ctx context.Context, logger *log.Logger, now time.Time) (*config.Config, model.MetricsSnapshot, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, model.MetricsSnapshot{}, err
	}
	engine, err := newEngine(ctx, cfg, nil, logger)
	if err != nil {
		return nil, model.MetricsSnapshot{}, err
	}

	logger.Debug("computing snapshot", "now", now.Format(time.RFC3339), "timezone", cfg.Settings.Timezone)
	snap := engine.Snapshot(ctx, now)
	logger.Info("snapshot ready",
		"today", snap.Today,
		"this_week", snap.ThisWeek,
		"best_day", snap.BestDay.Label,
		"best_week", snap.BestWeek.Label)
	return cfg, snap, nil
}
