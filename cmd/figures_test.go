package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/catalog"
)

// newFigureFlagsCmd mirrors the flag set shared by add and set.
func newFigureFlagsCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("label", "", "")
	c.Flags().Int("start", 0, "")
	c.Flags().String("end", "", "")
	c.Flags().String("category", "", "")
	for name, value := range flags {
		if err := c.Flags().Set(name, value); err != nil {
			t.Fatalf("Set(%s): %v", name, err)
		}
	}
	return c
}

func TestFigureFromFlags_Closed(t *testing.T) {
	t.Parallel()
	c := newFigureFlagsCmd(t, map[string]string{
		"label":    "Ada Lovelace",
		"start":    "1815",
		"end":      "1852",
		"category": "mathematics",
	})
	f, err := figureFromFlags(c, "ada")
	if err != nil {
		t.Fatalf("figureFromFlags: %v", err)
	}
	if f.ID != "ada" || f.Label != "Ada Lovelace" || f.Start != 1815 {
		t.Errorf("figure = %+v", f)
	}
	if f.End == nil || *f.End != 1852 {
		t.Errorf("End = %v, want 1852", f.End)
	}
	if f.Category != "mathematics" {
		t.Errorf("Category = %q", f.Category)
	}
}

func TestFigureFromFlags_OpenEnd(t *testing.T) {
	t.Parallel()
	c := newFigureFlagsCmd(t, map[string]string{
		"label": "Still Running",
		"start": "1950",
	})
	f, err := figureFromFlags(c, "ongoing")
	if err != nil {
		t.Fatalf("figureFromFlags: %v", err)
	}
	if f.End != nil {
		t.Errorf("End = %v, want nil for an ongoing span", *f.End)
	}
}

func TestFigureFromFlags_BadEnd(t *testing.T) {
	t.Parallel()
	c := newFigureFlagsCmd(t, map[string]string{
		"label": "X",
		"start": "1950",
		"end":   "next year",
	})
	if _, err := figureFromFlags(c, "x"); err == nil {
		t.Error("non-numeric --end accepted")
	}
}

func TestFigureFromFlags_ValidatesFigure(t *testing.T) {
	t.Parallel()
	c := newFigureFlagsCmd(t, map[string]string{
		"label": "Backwards",
		"start": "1950",
		"end":   "1900",
	})
	if _, err := figureFromFlags(c, "bad"); !errors.Is(err, catalog.ErrInvalidFigure) {
		t.Errorf("figureFromFlags(inverted) = %v, want ErrInvalidFigure", err)
	}
}
