package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/catalog"
	"github.com/papapumpkin/aeon/internal/chart"
	"github.com/papapumpkin/aeon/internal/config"
	"github.com/papapumpkin/aeon/internal/tui"
	"github.com/papapumpkin/aeon/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the timeline chart interactively",
	Long: `Launch the interactive chart: scroll through time, move the selection
across bars, and watch the legend track categories. With --file, the
chart is built from a TOML file and reloads live when the file changes.`,
	Args: cobra.NoArgs,
}

func init() {
	tuiCmd.RunE = runTUI
	tuiCmd.Flags().String("file", "", "build the chart from a TOML file and watch it for edits")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := loadConfig()

	if !isStderrTTY() {
		return fmt.Errorf("aeon tui requires a TTY (terminal)")
	}

	file, _ := cmd.Flags().GetString("file")

	var (
		c     *chart.Chart
		title string
		err   error
	)
	if file != "" {
		c, err = fileChart(file, cfg)
		title = filepath.Base(file)
	} else {
		title = "catalog"
		store, openErr := openStore(cmd.Context(), cfg)
		if openErr != nil {
			return openErr
		}
		c, err = storeChart(cmd.Context(), store, cfg)
		store.Close()
	}
	if err != nil {
		return err
	}

	renderer := &ui.ChartRenderer{
		LaneWidth:   cfg.LaneCellWidth,
		YearsPerRow: cfg.YearsPerRow,
		UseColor:    true,
	}
	colors := make(map[string]string)
	for _, entry := range c.Legend() {
		colors[entry.Category] = entry.Color
	}
	renderer.ColorFor = func(category string) string {
		if color, ok := colors[category]; ok {
			return color
		}
		return "#EEEEEE"
	}

	prog := tui.NewProgram(tui.NewModel(title, c, renderer))

	// Live reload: rebuild the chart whenever the TOML source changes.
	if file != "" {
		w, watchErr := catalog.NewWatcher(file)
		if watchErr != nil {
			printer.Warn(fmt.Sprintf("watcher unavailable: %v", watchErr))
		} else if startErr := w.Start(); startErr != nil {
			printer.Warn(fmt.Sprintf("watcher start failed: %v", startErr))
		} else {
			defer w.Stop()
			go func() {
				for range w.Changes {
					next, reloadErr := fileChart(file, cfg)
					if reloadErr != nil {
						prog.Send(tui.MsgReloadFailed{Err: reloadErr})
						continue
					}
					prog.Send(tui.MsgChartReloaded{Chart: next})
				}
			}()
		}
	}

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// fileChart loads, validates, and charts a TOML figure file.
func fileChart(path string, cfg config.Config) (*chart.Chart, error) {
	figures, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if errs := catalog.ValidateAll(figures, nowYear()); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %d invalid figure(s), first: %v", path, len(errs), errs[0])
	}
	return buildChart(figures, cfg)
}

func isStderrTTY() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
