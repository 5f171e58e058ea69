package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the root configuration for paperdash, stored in
// ~/.paperdash/config.yaml.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Settings SettingsConfig `mapstructure:"settings"`
	Display  DisplayConfig  `mapstructure:"display"`
	Publish  PublishConfig  `mapstructure:"publish"`
	Energy   EnergyConfig   `mapstructure:"energy"`
}

// APIConfig holds the time-tracking service connection.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Token is the static credential. TOGGL_API_TOKEN overrides it.
	Token string `mapstructure:"token"`
	// Auth is "basic" (Toggl API token) or "bearer".
	Auth    string        `mapstructure:"auth"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SettingsConfig holds the aggregation parameters.
type SettingsConfig struct {
	// Timezone is the IANA zone that defines days and weeks.
	Timezone         string `mapstructure:"timezone"`
	DailyGoalMinutes int    `mapstructure:"daily_goal_minutes"`
	MaxDateRangeDays int    `mapstructure:"max_date_range_days"`
	// ChunkGap separates consecutive chunks of a long query.
	ChunkGap          time.Duration `mapstructure:"chunk_gap"`
	TrackingStartDate string        `mapstructure:"tracking_start_date"`
	// BestWindow is "since_start" or "trailing_365".
	BestWindow string `mapstructure:"best_window"`
	TrackDebt  bool   `mapstructure:"track_debt"`
}

// DisplayConfig selects where rendered frames go.
type DisplayConfig struct {
	// Sink is "png" or "raw".
	Sink   string `mapstructure:"sink"`
	Path   string `mapstructure:"path"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// PublishConfig holds optional outputs besides the panel.
type PublishConfig struct {
	MQTT MQTTConfig `mapstructure:"mqtt"`
}

// MQTTConfig is disabled while Broker is empty.
type MQTTConfig struct {
	Broker   string `mapstructure:"broker"`
	Topic    string `mapstructure:"topic"`
	ClientID string `mapstructure:"client_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// EnergyConfig holds the electricity tariff and meter readings.
type EnergyConfig struct {
	PriceCentsPerKWh float64         `mapstructure:"price_cents_per_kwh"`
	StartReadingKWh  float64         `mapstructure:"start_reading_kwh"`
	Readings         []ReadingConfig `mapstructure:"readings"`
}

// ReadingConfig is one meter reading.
type ReadingConfig struct {
	Date string  `mapstructure:"date"`
	KWh  float64 `mapstructure:"reading_kwh"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads the configuration from cfgFile, or from the default location
// when cfgFile is empty. A missing file is created from the annotated
// template first. Variables from a .env file in the working directory or next
// to the config file are applied before environment overrides are read.
func Load(cfgFile string) (*Config, error) {
	path := cfgFile
	if path == "" {
		path = filepath.Join(DefaultConfigDir, DefaultConfigFile)
	}
	path = expandPath(path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	}

	for _, env := range []string{".env", filepath.Join(filepath.Dir(path), ".env")} {
		if err := godotenv.Load(env); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", env, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PAPERDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.token", "TOGGL_API_TOKEN", "PAPERDASH_API_TOKEN"); err != nil {
		return nil, err
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	cfg.Display.Path = expandPath(cfg.Display.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.token", "")
	v.SetDefault("api.auth", DefaultAuth)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("settings.timezone", DefaultTimezone)
	v.SetDefault("settings.daily_goal_minutes", DefaultDailyGoalMinutes)
	v.SetDefault("settings.max_date_range_days", DefaultMaxDateRangeDays)
	v.SetDefault("settings.chunk_gap", DefaultChunkGap)
	v.SetDefault("settings.tracking_start_date", DefaultTrackingStartDate)
	v.SetDefault("settings.best_window", DefaultBestWindow)
	v.SetDefault("settings.track_debt", true)
	v.SetDefault("display.sink", DefaultSink)
	v.SetDefault("display.path", DefaultDisplayPath)
	v.SetDefault("display.width", DefaultPanelWidth)
	v.SetDefault("display.height", DefaultPanelHeight)
	v.SetDefault("publish.mqtt.broker", "")
	v.SetDefault("publish.mqtt.topic", "")
	v.SetDefault("publish.mqtt.client_id", "")
	v.SetDefault("publish.mqtt.username", "")
	v.SetDefault("publish.mqtt.password", "")
	v.SetDefault("energy.price_cents_per_kwh", 0.0)
	v.SetDefault("energy.start_reading_kwh", 0.0)
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.TrackingStart(); err != nil {
		return err
	}
	switch {
	case c.Settings.DailyGoalMinutes < 0:
		return fmt.Errorf("settings.daily_goal_minutes must not be negative, got %d", c.Settings.DailyGoalMinutes)
	case c.Settings.MaxDateRangeDays < 1:
		return fmt.Errorf("settings.max_date_range_days must be at least 1, got %d", c.Settings.MaxDateRangeDays)
	case c.Settings.ChunkGap < 0:
		return fmt.Errorf("settings.chunk_gap must not be negative, got %s", c.Settings.ChunkGap)
	}
	if !oneOf(c.Settings.BestWindow, "since_start", "trailing_365") {
		return fmt.Errorf("settings.best_window must be since_start or trailing_365, got %q", c.Settings.BestWindow)
	}
	if !oneOf(c.API.Auth, "basic", "bearer") {
		return fmt.Errorf("api.auth must be basic or bearer, got %q", c.API.Auth)
	}
	if !oneOf(c.Display.Sink, "png", "raw") {
		return fmt.Errorf("display.sink must be png or raw, got %q", c.Display.Sink)
	}
	return nil
}

// Location loads the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("settings.timezone: %w", err)
	}
	return loc, nil
}

// TrackingStart parses the tracking start date as a calendar date.
func (c *Config) TrackingStart() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Settings.TrackingStartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("settings.tracking_start_date: %w", err)
	}
	return t, nil
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
