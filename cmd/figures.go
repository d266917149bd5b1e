package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/catalog"
	"github.com/papapumpkin/aeon/internal/telemetry"
	"github.com/papapumpkin/aeon/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a figure to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var setCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update an existing figure",
	Args:  cobra.ExactArgs(1),
	RunE:  runSet,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a figure from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all figures in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runLs,
}

func init() {
	for _, c := range []*cobra.Command{addCmd, setCmd} {
		c.Flags().String("label", "", "display name")
		c.Flags().Int("start", 0, "start year")
		c.Flags().String("end", "", "end year, or empty for an ongoing span")
		c.Flags().String("category", "", "category for color grouping")
	}
	rootCmd.AddCommand(addCmd, setCmd, rmCmd, lsCmd)
}

// figureFromFlags builds a validated figure from the id argument and
// the shared add/set flag set.
func figureFromFlags(cmd *cobra.Command, id string) (catalog.Figure, error) {
	label, _ := cmd.Flags().GetString("label")
	start, _ := cmd.Flags().GetInt("start")
	endStr, _ := cmd.Flags().GetString("end")
	category, _ := cmd.Flags().GetString("category")

	f := catalog.Figure{
		ID:       id,
		Label:    label,
		Start:    start,
		Category: category,
	}
	if endStr != "" {
		end, err := strconv.Atoi(endStr)
		if err != nil {
			return catalog.Figure{}, fmt.Errorf("invalid --end %q: %w", endStr, err)
		}
		f.End = &end
	}
	if err := f.Validate(nowYear()); err != nil {
		return catalog.Figure{}, err
	}
	return f, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	return saveFigure(cmd, args[0], false)
}

func runSet(cmd *cobra.Command, args []string) error {
	return saveFigure(cmd, args[0], true)
}

// saveFigure handles both add and set: the only difference is whether
// the figure must already exist.
func saveFigure(cmd *cobra.Command, id string, mustExist bool) error {
	printer := ui.New()
	cfg := loadConfig()
	ctx := cmd.Context()

	f, err := figureFromFlags(cmd, id)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if mustExist {
		if _, err := store.Get(ctx, id); err != nil {
			return err
		}
	}
	if err := store.Put(ctx, f); err != nil {
		return err
	}

	emitter := newEmitter(cfg)
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindFigureSaved,
		FigureID:  f.ID,
	})

	// Rebuild so the user sees lane impact immediately, and record it.
	c, err := storeChart(ctx, store, cfg)
	if err != nil {
		return err
	}
	emitReallocate(emitter, c)

	end := "present"
	if f.End != nil {
		end = strconv.Itoa(*f.End)
	}
	printer.FigureSaved(f.ID, f.Start, end)
	if cfg.Verbose {
		printer.Info(fmt.Sprintf("chart now has %d bars in %d lanes", c.Len(), c.LaneCount()))
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := loadConfig()
	ctx := cmd.Context()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(ctx, args[0]); err != nil {
		return err
	}

	emitter := newEmitter(cfg)
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindFigureRemoved,
		FigureID:  args[0],
	})

	c, err := storeChart(ctx, store, cfg)
	if err != nil {
		return err
	}
	emitReallocate(emitter, c)

	printer.FigureRemoved(args[0])
	return nil
}

func runLs(cmd *cobra.Command, _ []string) error {
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

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tSPAN\tCATEGORY")
	for _, f := range figures {
		end := "present"
		if f.End != nil {
			end = strconv.Itoa(*f.End)
		}
		fmt.Fprintf(w, "%s\t%s\t%d – %s\t%s\n", f.ID, f.Label, f.Start, end, f.Category)
	}
	return w.Flush()
}
