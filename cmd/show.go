package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the timeline chart to stdout",
	Long: `Render the catalog's timeline chart as text. The window starts at the
chart's reference year (one decade past the current decade) and runs
back through --years years; use --top to start lower.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().Int("top", 0, "year at the top of the window (default: reference year)")
	showCmd.Flags().Int("years", 200, "years of history to render")
	showCmd.Flags().Bool("color", false, "force ANSI colors on")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	c, err := storeChart(ctx, store, cfg)
	if err != nil {
		return err
	}

	if top, _ := cmd.Flags().GetInt("top"); top != 0 {
		c.ScrollBy(c.ReferenceYear() - top)
	}
	years, _ := cmd.Flags().GetInt("years")
	useColor, _ := cmd.Flags().GetBool("color")

	renderer := &ui.ChartRenderer{
		LaneWidth:   cfg.LaneCellWidth,
		YearsPerRow: cfg.YearsPerRow,
		UseColor:    useColor,
	}
	if useColor {
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
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(c.Bars(), c.TopYear(), years, c.LaneCount()))
	return nil
}
