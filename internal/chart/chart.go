// Package chart implements the timeline chart surface: it owns the span
// set, re-runs lane allocation on every mutation, and pushes refreshed
// geometry and styling into a rendering-agnostic visual sink.
package chart

import (
	"errors"
	"fmt"
	"time"

	"github.com/papapumpkin/aeon/internal/lane"
	"github.com/papapumpkin/aeon/internal/palette"
	"github.com/papapumpkin/aeon/internal/span"
)

var (
	// ErrDuplicateID is returned by AddSpan for an ID already on the chart.
	ErrDuplicateID = errors.New("span id already on chart")

	// ErrNotFound is returned when no span with the given ID exists.
	ErrNotFound = errors.New("span not found")
)

// Config holds the chart's fixed scale factors. Zero values fall back
// to defaults; ReferenceYear and NowYear default to wall-clock-derived
// values fixed at construction time.
type Config struct {
	// YearHeight is the vertical extent of one year.
	YearHeight float64

	// LaneWidth is the horizontal extent of one lane.
	LaneWidth float64

	// BaseOffset is the left gutter reserved for the time axis.
	BaseOffset float64

	// ReferenceYear anchors the chart top. 0 means one decade past the
	// current decade.
	ReferenceYear int

	// NowYear resolves open spans. 0 means the current year.
	NowYear int
}

// BarStyle carries the non-geometric attributes pushed to the sink.
type BarStyle struct {
	Label    string
	Category string
	Color    string
	Selected bool
}

// Sink receives visual updates from the chart. Implementations own the
// actual drawing technology; the chart only hands over plain geometry
// and style values.
type Sink interface {
	// UpsertBar creates or repositions the bar for a span.
	UpsertBar(id string, r lane.Rect, style BarStyle)

	// RemoveBar drops a span's bar.
	RemoveBar(id string)

	// Resize announces the chart's new required outer width.
	Resize(width float64)
}

// Spec is the caller-facing description of a span for add and update
// operations. Callers never supply a lane; the allocator owns that.
type Spec struct {
	ID        string
	Label     string
	StartYear int
	EndYear   *int // nil = ongoing
	Category  string
}

// Chart is the mutable timeline surface. Single-threaded by design:
// every mutation runs one full reallocation to completion before the
// next event is processed.
type Chart struct {
	geom       lane.Geometry
	baseOffset float64
	nowYear    int

	sink   Sink
	colors *palette.Assigner

	spans []*span.Span // insertion order; the allocator's final tie-break
	byID  map[string]*span.Span

	laneCount int
	scroll    int // years scrolled down (back in time) from the reference
	selected  string
}

// New creates an empty chart. A nil sink is valid and turns all visual
// pushes into no-ops, which keeps the model testable headless.
func New(cfg Config, sink Sink) *Chart {
	if cfg.YearHeight == 0 {
		cfg.YearHeight = 2
	}
	if cfg.LaneWidth == 0 {
		cfg.LaneWidth = 120
	}
	if cfg.NowYear == 0 {
		cfg.NowYear = time.Now().Year()
	}
	if cfg.ReferenceYear == 0 {
		cfg.ReferenceYear = lane.ReferenceYear(time.Now())
	}
	return &Chart{
		geom: lane.Geometry{
			YearHeight:    cfg.YearHeight,
			LaneWidth:     cfg.LaneWidth,
			ReferenceYear: cfg.ReferenceYear,
		},
		baseOffset: cfg.BaseOffset,
		nowYear:    cfg.NowYear,
		sink:       sink,
		colors:     palette.New(),
		byID:       make(map[string]*span.Span),
	}
}

// AddSpan validates and adds a span, then reallocates the whole chart.
func (c *Chart) AddSpan(sp Spec) (*span.Span, error) {
	if sp.ID == "" {
		return nil, fmt.Errorf("chart: empty span id")
	}
	if _, ok := c.byID[sp.ID]; ok {
		return nil, fmt.Errorf("chart: %w: %q", ErrDuplicateID, sp.ID)
	}
	s := &span.Span{
		ID:        sp.ID,
		Label:     sp.Label,
		StartYear: sp.StartYear,
		EndYear:   sp.EndYear,
		Category:  sp.Category,
		Lane:      span.UnassignedLane,
	}
	if err := s.Validate(c.nowYear); err != nil {
		return nil, fmt.Errorf("chart: add: %w", err)
	}
	c.spans = append(c.spans, s)
	c.byID[s.ID] = s
	c.Reallocate()
	return s, nil
}

// UpdateSpan replaces a span's label, years, and category in place, then
// reallocates. The span keeps its position in insertion order, so an
// update that leaves years untouched cannot shuffle tie-broken lanes.
func (c *Chart) UpdateSpan(id string, sp Spec) error {
	s, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("chart: update: %w: %q", ErrNotFound, id)
	}
	next := *s
	next.Label = sp.Label
	next.StartYear = sp.StartYear
	next.EndYear = sp.EndYear
	next.Category = sp.Category
	if err := next.Validate(c.nowYear); err != nil {
		return fmt.Errorf("chart: update: %w", err)
	}
	*s = next
	c.Reallocate()
	return nil
}

// RemoveSpan deletes a span and reallocates the remaining set.
func (c *Chart) RemoveSpan(id string) error {
	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("chart: remove: %w: %q", ErrNotFound, id)
	}
	delete(c.byID, id)
	for i, s := range c.spans {
		if s.ID == id {
			c.spans = append(c.spans[:i], c.spans[i+1:]...)
			break
		}
	}
	if c.selected == id {
		c.selected = ""
	}
	if c.sink != nil {
		c.sink.RemoveBar(id)
	}
	c.Reallocate()
	return nil
}

// Reallocate runs lane assignment over the entire current span set,
// recomputes every bar's geometry, and pushes the results to the sink.
// Safe to call at any time; mutations call it exactly once each.
func (c *Chart) Reallocate() {
	values := make([]span.Span, 0, len(c.spans))
	for _, s := range c.spans {
		values = append(values, *s)
	}
	// Spans are validated on the way in, so the only Assign failure is a
	// programming error.
	a, err := lane.Assign(values, c.nowYear)
	if err != nil {
		panic(fmt.Sprintf("chart: reallocate over validated spans: %v", err))
	}
	lane.Apply(a, c.spans)
	c.laneCount = a.Count

	if c.sink == nil {
		return
	}
	for _, s := range c.spans {
		r := c.geom.Position(s.Lane, s.StartYear, s.EffectiveEnd(c.nowYear))
		r.X += c.baseOffset
		c.sink.UpsertBar(s.ID, r, BarStyle{
			Label:    s.Label,
			Category: s.Category,
			Color:    c.colors.ColorFor(s.Category),
			Selected: s.ID == c.selected,
		})
	}
	c.sink.Resize(c.RequiredWidth())
}

// LaneCount returns the number of lanes from the last allocation.
func (c *Chart) LaneCount() int {
	return c.laneCount
}

// RequiredWidth is the outer width implied by the current lane count:
// the axis gutter plus one lane width of breathing room past the lanes.
func (c *Chart) RequiredWidth() float64 {
	return c.baseOffset + c.geom.LaneWidth*float64(c.laneCount+1)
}

// Geometry returns the chart's coordinate mapper.
func (c *Chart) Geometry() lane.Geometry {
	return c.geom
}

// BaseOffset returns the left gutter reserved for the time axis.
func (c *Chart) BaseOffset() float64 {
	return c.baseOffset
}

// ReferenceYear returns the fixed chart anchor year.
func (c *Chart) ReferenceYear() int {
	return c.geom.ReferenceYear
}

// NowYear returns the year open spans resolve to.
func (c *Chart) NowYear() int {
	return c.nowYear
}

// TopYear is the year currently at the top edge of the viewport.
func (c *Chart) TopYear() int {
	return c.geom.ReferenceYear - c.scroll
}

// ScrollBy moves the viewport by the given number of years; positive
// scrolls back in time. Clamped so the top never passes the reference
// year or the earliest span start.
func (c *Chart) ScrollBy(years int) {
	c.scroll += years
	if c.scroll < 0 {
		c.scroll = 0
	}
	if maxScroll := c.geom.ReferenceYear - c.earliestStart(); c.scroll > maxScroll {
		c.scroll = maxScroll
	}
}

// ScrollToTop resets the viewport to the reference year.
func (c *Chart) ScrollToTop() {
	c.scroll = 0
}

// ScrollToBottom moves the viewport so the earliest span start is at the top.
func (c *Chart) ScrollToBottom() {
	c.scroll = c.geom.ReferenceYear - c.earliestStart()
}

func (c *Chart) earliestStart() int {
	earliest := c.geom.ReferenceYear
	for _, s := range c.spans {
		if s.StartYear < earliest {
			earliest = s.StartYear
		}
	}
	return earliest
}

// Select marks a span as selected and refreshes the sink so the style
// change is visible. Selecting the empty ID clears the selection.
func (c *Chart) Select(id string) error {
	if id != "" {
		if _, ok := c.byID[id]; !ok {
			return fmt.Errorf("chart: select: %w: %q", ErrNotFound, id)
		}
	}
	c.selected = id
	c.Reallocate()
	return nil
}

// Selected returns the selected span ID, or empty string.
func (c *Chart) Selected() string {
	return c.selected
}

// Len returns the number of spans on the chart.
func (c *Chart) Len() int {
	return len(c.spans)
}

// Bar is a read-only view of one positioned span, for renderers.
type Bar struct {
	ID        string
	Label     string
	Category  string
	Color     string
	Lane      int
	StartYear int
	EndYear   int // effective
	Open      bool
	Rect      lane.Rect
	Selected  bool
}

// Bars returns positioned views of every span in insertion order.
func (c *Chart) Bars() []Bar {
	out := make([]Bar, 0, len(c.spans))
	for _, s := range c.spans {
		end := s.EffectiveEnd(c.nowYear)
		r := c.geom.Position(s.Lane, s.StartYear, end)
		r.X += c.baseOffset
		out = append(out, Bar{
			ID:        s.ID,
			Label:     s.Label,
			Category:  s.Category,
			Color:     c.colors.ColorFor(s.Category),
			Lane:      s.Lane,
			StartYear: s.StartYear,
			EndYear:   end,
			Open:      s.Open(),
			Rect:      r,
			Selected:  s.ID == c.selected,
		})
	}
	return out
}

// Legend returns the category colors assigned so far.
func (c *Chart) Legend() []palette.Entry {
	return c.colors.Legend()
}
