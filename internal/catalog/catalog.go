// Package catalog stores the entities plotted on the timeline: named
// figures with a lifespan and a category. The canonical store is a local
// SQLite database; TOML files serve as the import/seed format.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNotFound is returned when a figure ID does not exist in the store.
	ErrNotFound = errors.New("figure not found")

	// ErrInvalidFigure is returned when a figure fails boundary validation.
	ErrInvalidFigure = errors.New("invalid figure")
)

// Figure is one catalog entry: an entity with a lifespan.
type Figure struct {
	// ID is a stable slug, unique within the catalog.
	ID string `toml:"id"`

	// Label is the display name, e.g. "Ada Lovelace".
	Label string `toml:"label"`

	// Start is the first year of the figure's span.
	Start int `toml:"start"`

	// End is the last year, or nil while the span is ongoing.
	End *int `toml:"end,omitempty"`

	// Category groups figures for coloring, e.g. "mathematics".
	Category string `toml:"category,omitempty"`
}

// Open reports whether the figure's span is ongoing.
func (f Figure) Open() bool {
	return f.End == nil
}

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Validate rejects malformed figures before they reach the chart or the
// store. nowYear resolves open spans for the start-before-end check.
func (f Figure) Validate(nowYear int) error {
	if f.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidFigure)
	}
	if !idPattern.MatchString(f.ID) {
		return fmt.Errorf("%w: id %q must be a lowercase slug", ErrInvalidFigure, f.ID)
	}
	if f.Label == "" {
		return fmt.Errorf("%w: %q missing label", ErrInvalidFigure, f.ID)
	}
	end := nowYear
	if f.End != nil {
		end = *f.End
	}
	if f.Start > end {
		return fmt.Errorf("%w: %q starts %d after end %d", ErrInvalidFigure, f.ID, f.Start, end)
	}
	return nil
}

// ValidateAll validates every figure and checks ID uniqueness, returning
// one error per problem found.
func ValidateAll(figures []Figure, nowYear int) []error {
	var errs []error
	seen := make(map[string]bool, len(figures))
	for _, f := range figures {
		if err := f.Validate(nowYear); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[f.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalidFigure, f.ID))
		}
		seen[f.ID] = true
	}
	return errs
}
