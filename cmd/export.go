package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/svg"
	"github.com/papapumpkin/aeon/internal/telemetry"
	"github.com/papapumpkin/aeon/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the timeline chart as a standalone SVG document",
	Long: `Export renders the catalog's chart to an SVG file with all styling
inlined, so the document is self-contained.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "timeline.svg", "output file")
	exportCmd.Flags().String("title", "", "chart title")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	printer := ui.New()
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

	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")

	doc := svg.Render(c, svg.Options{Title: title})
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return err
	}

	emitter := newEmitter(cfg)
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindExport,
		Data:      map[string]any{"path": out, "bars": c.Len(), "lanes": c.LaneCount()},
	})

	printer.ExportDone(out, c.Len(), c.LaneCount())
	return nil
}
