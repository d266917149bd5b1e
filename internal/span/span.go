// Package span defines the lifespan interval model for the timeline chart.
// A Span covers a closed range of whole years, or an open range that is
// still ongoing; the lane allocator and coordinate mapper operate on the
// resolved (effective) end year.
package span

import (
	"errors"
	"fmt"
)

// ErrInvalidSpan is returned when a span's start year is after its
// effective end year. Validation happens at the mutation boundary so
// the allocator never sees an inverted span.
var ErrInvalidSpan = errors.New("span start year after end year")

// Span is one bar on the chart: a labeled, categorized interval of years.
type Span struct {
	// ID uniquely identifies the span within one chart.
	ID string

	// Label is the display name shown next to the bar.
	Label string

	// StartYear is the interval's beginning, inclusive.
	StartYear int

	// EndYear is the interval's end, inclusive. Nil means the span is
	// ongoing and resolves to the current year at evaluation time.
	EndYear *int

	// Category groups spans for color assignment. It has no effect on
	// lane packing.
	Category string

	// Lane is the column index assigned by the lane allocator. Callers
	// never set it; UnassignedLane until the first allocation pass.
	Lane int
}

// UnassignedLane marks a span that has not been through lane allocation.
const UnassignedLane = -1

// Open reports whether the span is ongoing (no closed end year).
func (s Span) Open() bool {
	return s.EndYear == nil
}

// EffectiveEnd resolves the span's end year: the closed end year if set,
// otherwise nowYear.
func (s Span) EffectiveEnd(nowYear int) int {
	if s.EndYear != nil {
		return *s.EndYear
	}
	return nowYear
}

// Duration returns the span's extent in years at the given evaluation
// year. Zero for an instantaneous span.
func (s Span) Duration(nowYear int) int {
	return s.EffectiveEnd(nowYear) - s.StartYear
}

// Validate checks the start-before-end invariant against the given
// evaluation year. A zero-duration span is valid.
func (s Span) Validate(nowYear int) error {
	if end := s.EffectiveEnd(nowYear); s.StartYear > end {
		return fmt.Errorf("%w: %q starts %d, ends %d", ErrInvalidSpan, s.ID, s.StartYear, end)
	}
	return nil
}

// Year returns a pointer to y, for building closed-end spans inline.
func Year(y int) *int {
	return &y
}
