// This file implements the text timeline renderer: a vertical time axis
// with decade labels and one fixed-width column per lane.
package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/aeon/internal/chart"
)

// Bar glyphs. A bar reads top-down from its end year back to its start.
const (
	glyphEnd    = "┳" // most recent year of a closed bar
	glyphOpen   = "▲" // bar still ongoing at the top
	glyphBody   = "┃"
	glyphStart  = "┻"
	glyphSingle = "━" // start and end fall in the same row
)

// ChartRenderer produces the chart as plain text, one row per time
// step. It performs no terminal I/O, so it can back both the TUI
// viewport and piped stdout output.
type ChartRenderer struct {
	// LaneWidth is the column width per lane, in cells.
	LaneWidth int

	// YearsPerRow is the time covered by one text row.
	YearsPerRow int

	// UseColor controls whether ANSI styling is applied.
	UseColor bool

	// ColorFor maps a category to a hex color. Nil disables category
	// coloring even when UseColor is set.
	ColorFor func(category string) string
}

const (
	defaultLaneWidth   = 16
	defaultYearsPerRow = 5
	gutterWidth        = 5 // "2030 " before the axis line
)

// Render draws the bars between topYear and topYear-viewYears. Bars
// outside the window are clipped; laneCount fixes the grid width so the
// layout doesn't jump while scrolling.
func (r *ChartRenderer) Render(bars []chart.Bar, topYear, viewYears, laneCount int) string {
	laneWidth := r.LaneWidth
	if laneWidth <= 0 {
		laneWidth = defaultLaneWidth
	}
	yearsPerRow := r.YearsPerRow
	if yearsPerRow <= 0 {
		yearsPerRow = defaultYearsPerRow
	}
	if laneCount < 1 {
		laneCount = 1
	}

	rows := viewYears/yearsPerRow + 1
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		rowTop := topYear - i*yearsPerRow
		rowBottom := rowTop - yearsPerRow // exclusive

		sb.WriteString(r.gutter(rowTop, rowBottom))
		for k := 0; k < laneCount; k++ {
			sb.WriteString(r.cell(bars, k, rowTop, rowBottom, laneWidth, yearsPerRow))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// gutter renders the year label (on decade rows) and the axis line.
func (r *ChartRenderer) gutter(rowTop, rowBottom int) string {
	label := strings.Repeat(" ", gutterWidth)
	axis := "│"

	if d, ok := decadeIn(rowTop, rowBottom); ok {
		label = padLeft(strconv.Itoa(d), gutterWidth)
		axis = "┤"
		if d%100 == 0 {
			axis = "╢"
		}
	}

	if r.UseColor {
		style := lipgloss.NewStyle().Faint(true)
		return style.Render(label+" ") + axis + " "
	}
	return label + " " + axis + " "
}

// cell renders one lane's slice of one row.
func (r *ChartRenderer) cell(bars []chart.Bar, laneIdx, rowTop, rowBottom, laneWidth, yearsPerRow int) string {
	var hit *chart.Bar
	for i := range bars {
		b := &bars[i]
		if b.Lane != laneIdx {
			continue
		}
		if b.StartYear <= rowTop && b.EndYear > rowBottom {
			hit = b
			break
		}
	}
	if hit == nil {
		return strings.Repeat(" ", laneWidth)
	}

	endRow := hit.EndYear <= rowTop && hit.EndYear > rowBottom
	startRow := hit.StartYear <= rowTop && hit.StartYear > rowBottom

	var content string
	switch {
	case endRow && startRow:
		content = glyphSingle + " " + truncate(hit.Label, laneWidth-3)
	case endRow && hit.Open:
		content = glyphOpen + " " + truncate(hit.Label, laneWidth-3)
	case endRow:
		content = glyphEnd + " " + truncate(hit.Label, laneWidth-3)
	case startRow:
		content = glyphStart
	default:
		content = glyphBody
	}
	if hit.Selected {
		content = "▸" + content
	}
	content = padRight(content, laneWidth)

	if r.UseColor && r.ColorFor != nil {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.ColorFor(hit.Category)))
		if hit.Selected {
			style = style.Bold(true)
		}
		return style.Render(content)
	}
	return content
}

// decadeIn returns the decade boundary inside (rowBottom, rowTop], if any.
func decadeIn(rowTop, rowBottom int) (int, bool) {
	d := rowTop - (((rowTop % 10) + 10) % 10)
	if d > rowBottom {
		return d, true
	}
	return 0, false
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
