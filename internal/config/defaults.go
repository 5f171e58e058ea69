package config

import "time"

const (
	// DefaultConfigDir is the default location for paperdash configuration.
	DefaultConfigDir = "~/.paperdash"
	// DefaultConfigFile is the filename for the YAML config.
	DefaultConfigFile = "config.yaml"

	DefaultBaseURL = "https://api.track.toggl.com/api/v9"
	DefaultAuth    = "basic"
	DefaultTimeout = 30 * time.Second

	DefaultTimezone          = "Europe/Vienna"
	DefaultDailyGoalMinutes  = 390
	DefaultMaxDateRangeDays  = 90
	DefaultChunkGap          = time.Second
	DefaultTrackingStartDate = "2025-04-09"
	DefaultBestWindow        = "since_start"

	DefaultSink        = "png"
	DefaultDisplayPath = "~/.paperdash/dashboard.png"
	// The 7.5 inch panel is landscape; frames are drawn in portrait.
	DefaultPanelWidth  = 800
	DefaultPanelHeight = 480
)

// configTemplate is the annotated config written on first run.
const configTemplate = `# paperdash configuration – ~/.paperdash/config.yaml
#
# Every setting is optional; the values below are the built-in defaults.
# Secrets can live in ~/.paperdash/.env instead, e.g. TOGGL_API_TOKEN=...

api:
  # Toggl Track API root.
  base_url: "https://api.track.toggl.com/api/v9"
  # API token (Profile settings → API Token). TOGGL_API_TOKEN overrides this.
  token: ""
  # "basic" sends the token as a Toggl API token, "bearer" as an access token.
  auth: "basic"
  # Per-request timeout.
  timeout: "30s"

settings:
  # IANA timezone that defines "today" and "this week".
  timezone: "Europe/Vienna"
  daily_goal_minutes: 390
  # Longer queries are split into chunks of at most this many days.
  max_date_range_days: 90
  # Gap between consecutive chunks ("1s" or "24h").
  chunk_gap: "1s"
  # First day that counts towards the productivity debt.
  tracking_start_date: "2025-04-09"
  # Best day/week window: "since_start" or "trailing_365".
  best_window: "since_start"
  track_debt: true

display:
  # "png" writes an image file, "raw" writes the packed 1-bit panel buffer.
  sink: "png"
  path: "~/.paperdash/dashboard.png"
  # Native panel resolution, used by the raw sink.
  width: 800
  height: 480

publish:
  mqtt:
    # Leave empty to disable, e.g. "tcp://homeassistant.local:1883".
    broker: ""
    topic: "paperdash/productivity"
    client_id: ""
    username: ""
    password: ""

energy:
  price_cents_per_kwh: 0
  start_reading_kwh: 0
  # Cumulative meter readings:
  #   - date: "2026-01-31"
  #     reading_kwh: 1234.5
  readings: []
`
