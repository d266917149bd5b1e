package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/papapumpkin/aeon/internal/catalog"
	"github.com/papapumpkin/aeon/internal/chart"
	"github.com/papapumpkin/aeon/internal/config"
	"github.com/papapumpkin/aeon/internal/telemetry"
)

// loadConfig reads viper-backed configuration and applies the
// persistent --verbose flag.
func loadConfig() config.Config {
	cfg := config.Load()
	if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	return cfg
}

// openStore opens the catalog database, creating its directory on first use.
func openStore(ctx context.Context, cfg config.Config) (*catalog.Store, error) {
	dir := filepath.Dir(cfg.CatalogPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory %s: %w", dir, err)
		}
	}
	return catalog.OpenStore(ctx, cfg.CatalogPath)
}

// chartConfig maps runtime configuration to chart scale factors.
// Zero-valued reference and now years are derived at construction time.
func chartConfig(cfg config.Config) chart.Config {
	return chart.Config{
		YearHeight:    cfg.YearHeight,
		LaneWidth:     cfg.LaneWidth,
		BaseOffset:    cfg.BaseOffset,
		ReferenceYear: cfg.ReferenceYear,
	}
}

// buildChart constructs a chart from catalog figures. Figures are added
// in the given order; the chart reallocates lanes after each addition,
// so the final state reflects the complete set.
func buildChart(figures []catalog.Figure, cfg config.Config) (*chart.Chart, error) {
	c := chart.New(chartConfig(cfg), nil)
	for _, f := range figures {
		if _, err := c.AddSpan(chart.Spec{
			ID:        f.ID,
			Label:     f.Label,
			StartYear: f.Start,
			EndYear:   f.End,
			Category:  f.Category,
		}); err != nil {
			return nil, fmt.Errorf("figure %q: %w", f.ID, err)
		}
	}
	return c, nil
}

// storeChart loads every figure from the store and builds the chart.
func storeChart(ctx context.Context, store *catalog.Store, cfg config.Config) (*chart.Chart, error) {
	figures, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildChart(figures, cfg)
}

// newEmitter opens the telemetry stream, or returns a nil (no-op)
// emitter when telemetry is disabled or the file cannot be opened.
func newEmitter(cfg config.Config) *telemetry.Emitter {
	if cfg.TelemetryPath == "" {
		return nil
	}
	if dir := filepath.Dir(cfg.TelemetryPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil
		}
	}
	e, err := telemetry.NewEmitter(cfg.TelemetryPath)
	if err != nil {
		return nil
	}
	return e
}

// emitReallocate records the outcome of a chart rebuild.
func emitReallocate(e *telemetry.Emitter, c *chart.Chart) {
	_ = e.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindReallocate,
		Data:      map[string]any{"bars": c.Len(), "lanes": c.LaneCount()},
	})
}

// nowYear is the evaluation year for open spans at the CLI boundary.
func nowYear() int {
	return time.Now().Year()
}
