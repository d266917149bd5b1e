package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for an aeon session.
// Values are populated from .aeon.yaml, AEON_* env vars, and CLI flags.
type Config struct {
	// CatalogPath is the SQLite database holding the figure catalog.
	CatalogPath string `mapstructure:"catalog_path"`

	// TelemetryPath is the JSONL event stream file. Empty disables telemetry.
	TelemetryPath string `mapstructure:"telemetry_path"`

	// YearHeight and LaneWidth are the SVG scale factors, in pixels.
	YearHeight float64 `mapstructure:"year_height"`
	LaneWidth  float64 `mapstructure:"lane_width"`

	// BaseOffset is the axis gutter width, in pixels.
	BaseOffset float64 `mapstructure:"base_offset"`

	// ReferenceYear overrides the chart anchor. 0 derives it from the
	// current decade; pin it for reproducible exports.
	ReferenceYear int `mapstructure:"reference_year"`

	// LaneCellWidth and YearsPerRow are the text renderer's scale factors.
	LaneCellWidth int `mapstructure:"lane_cell_width"`
	YearsPerRow   int `mapstructure:"years_per_row"`

	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("catalog_path", ".aeon/catalog.db")
	viper.SetDefault("telemetry_path", ".aeon/telemetry.jsonl")
	viper.SetDefault("year_height", 2.0)
	viper.SetDefault("lane_width", 120.0)
	viper.SetDefault("base_offset", 60.0)
	viper.SetDefault("reference_year", 0)
	viper.SetDefault("lane_cell_width", 16)
	viper.SetDefault("years_per_row", 5)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
