package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/catalog"
	"github.com/papapumpkin/aeon/internal/telemetry"
	"github.com/papapumpkin/aeon/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <file.toml>",
	Short: "Import figures from a TOML file into the catalog",
	Long: `Import reads [[figure]] tables from a TOML file and upserts them into
the catalog database. The whole file is validated first; nothing is
written if any figure is malformed.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportTomlCmd = &cobra.Command{
	Use:   "dump <file.toml>",
	Short: "Write the catalog back out as a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(importCmd, exportTomlCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := loadConfig()
	ctx := cmd.Context()
	path := args[0]

	figures, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	if len(figures) == 0 {
		return fmt.Errorf("no figures found in %s", path)
	}
	if errs := catalog.ValidateAll(figures, nowYear()); len(errs) > 0 {
		printer.ValidateResult(path, len(figures), errs)
		return fmt.Errorf("validation failed")
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(ctx, figures); err != nil {
		return err
	}

	emitter := newEmitter(cfg)
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindImport,
		Data:      map[string]any{"path": path, "count": len(figures)},
	})

	c, err := storeChart(ctx, store, cfg)
	if err != nil {
		return err
	}
	emitReallocate(emitter, c)

	printer.ImportResult(path, len(figures))
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	figures, err := store.List(ctx)
	if err != nil {
		return err
	}
	return catalog.SaveFile(args[0], figures)
}
