package ui

import (
	"strings"
	"testing"

	"github.com/papapumpkin/aeon/internal/chart"
)

func renderLines(t *testing.T, r *ChartRenderer, bars []chart.Bar, topYear, viewYears, laneCount int) []string {
	t.Helper()
	out := r.Render(bars, topYear, viewYears, laneCount)
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestRender_BarsAndAxis(t *testing.T) {
	t.Parallel()
	r := &ChartRenderer{LaneWidth: 12, YearsPerRow: 10}
	bars := []chart.Bar{
		{ID: "a", Label: "Alpha", Lane: 0, StartYear: 2005, EndYear: 2025},
		{ID: "b", Label: "Beta", Lane: 1, StartYear: 1990, EndYear: 2024, Open: true},
	}

	lines := renderLines(t, r, bars, 2030, 30, 2)
	if len(lines) != 4 {
		t.Fatalf("got %d rows, want 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	// Top row: both bars end here; the closed one gets the end glyph,
	// the ongoing one the open glyph. Lane 0 renders left of lane 1.
	top := lines[0]
	if !strings.Contains(top, "2030") {
		t.Errorf("top row missing decade label: %q", top)
	}
	if !strings.Contains(top, glyphEnd+" Alpha") {
		t.Errorf("top row missing closed bar end: %q", top)
	}
	if !strings.Contains(top, glyphOpen+" Beta") {
		t.Errorf("top row missing open bar head: %q", top)
	}
	if strings.Index(top, "Alpha") > strings.Index(top, "Beta") {
		t.Errorf("lane 0 rendered right of lane 1: %q", top)
	}

	// Alpha starts in the 2010 row; Beta is still body there.
	if !strings.Contains(lines[2], glyphStart) {
		t.Errorf("start glyph missing in row 2010: %q", lines[2])
	}
	if strings.Count(lines[2], glyphBody) != 1 {
		t.Errorf("want exactly one body glyph in row 2010: %q", lines[2])
	}

	// Bottom row: Alpha is out of range, only Beta's body remains, and
	// the century tick is emphasized.
	if !strings.Contains(lines[3], "2000") || !strings.Contains(lines[3], "╢") {
		t.Errorf("century row not emphasized: %q", lines[3])
	}
	if strings.Contains(lines[3], glyphStart) || strings.Contains(lines[3], "Alpha") {
		t.Errorf("clipped bar leaked into bottom row: %q", lines[3])
	}
}

func TestRender_SingleRowBar(t *testing.T) {
	t.Parallel()
	r := &ChartRenderer{LaneWidth: 14, YearsPerRow: 10}
	bars := []chart.Bar{
		{ID: "x", Label: "Brief", Lane: 0, StartYear: 1924, EndYear: 1926},
	}
	lines := renderLines(t, r, bars, 1930, 10, 1)
	if !strings.Contains(lines[0], glyphSingle+" Brief") {
		t.Errorf("single-row bar not collapsed: %q", lines[0])
	}
}

func TestRender_SelectionMarker(t *testing.T) {
	t.Parallel()
	r := &ChartRenderer{LaneWidth: 14, YearsPerRow: 10}
	bars := []chart.Bar{
		{ID: "x", Label: "Picked", Lane: 0, StartYear: 1900, EndYear: 1950, Selected: true},
	}
	lines := renderLines(t, r, bars, 1950, 10, 1)
	if !strings.Contains(lines[0], "▸") {
		t.Errorf("selected bar missing marker: %q", lines[0])
	}
}

func TestRender_EmptyChartStillDrawsAxis(t *testing.T) {
	t.Parallel()
	r := &ChartRenderer{LaneWidth: 10, YearsPerRow: 10}
	lines := renderLines(t, r, nil, 2030, 20, 0)
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "┤") {
			t.Errorf("axis missing from row %q", line)
		}
	}
}

func TestRender_LongLabelTruncated(t *testing.T) {
	t.Parallel()
	r := &ChartRenderer{LaneWidth: 10, YearsPerRow: 10}
	bars := []chart.Bar{
		{ID: "x", Label: "An Extremely Long Name", Lane: 0, StartYear: 1900, EndYear: 1950},
	}
	lines := renderLines(t, r, bars, 1950, 0, 1)
	if strings.Contains(lines[0], "Extremely") {
		t.Errorf("label not truncated: %q", lines[0])
	}
	if !strings.Contains(lines[0], "…") {
		t.Errorf("truncation marker missing: %q", lines[0])
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("hello", 3); got != "he…" {
		t.Errorf("truncate = %q, want he…", got)
	}
	if got := truncate("hello", 0); got != "" {
		t.Errorf("truncate(0) = %q, want empty", got)
	}
}
