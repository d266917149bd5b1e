package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/catalog"
	"github.com/papapumpkin/aeon/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.toml>",
	Short: "Check a figure TOML file without importing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	printer := ui.New()
	path := args[0]

	figures, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	errs := catalog.ValidateAll(figures, nowYear())
	printer.ValidateResult(path, len(figures), errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}
