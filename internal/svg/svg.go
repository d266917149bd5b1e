// Package svg exports a timeline chart as a standalone SVG document.
// All styling is inlined on the elements, so the output renders
// identically when saved to disk, embedded, or mailed around with no
// external stylesheet.
package svg

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/aeon/internal/chart"
)

// Options control the exported document's framing.
type Options struct {
	// Title is rendered above the chart and set as the SVG title.
	Title string

	// Margin is the padding around the chart area, in pixels.
	Margin float64

	// Background is the document background color.
	Background string
}

const (
	defaultMargin     = 40.0
	defaultBackground = "#1E1E2E"
	axisColor         = "#8C8C8C"
	textColor         = "#EEEEEE"
	barInsetRatio     = 0.15 // horizontal inset of a bar within its lane
	minBarLength      = 3.0  // floor so zero-duration spans stay visible
)

// Render produces the complete SVG document for the chart's current
// state. Bars are emitted in the chart's insertion order, so unchanged
// charts export byte-identical documents.
func Render(c *chart.Chart, opts Options) string {
	margin := opts.Margin
	if margin <= 0 {
		margin = defaultMargin
	}
	bg := opts.Background
	if bg == "" {
		bg = defaultBackground
	}

	geom := c.Geometry()
	bars := c.Bars()

	// Vertical extent: reference year down to the earliest start.
	minStart := geom.ReferenceYear
	for _, b := range bars {
		if b.StartYear < minStart {
			minStart = b.StartYear
		}
	}
	chartHeight := float64(geom.ReferenceYear-minStart) * geom.YearHeight
	width := c.RequiredWidth() + 2*margin
	height := chartHeight + 2*margin

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n", width, height, width, height)
	if opts.Title != "" {
		fmt.Fprintf(&sb, "  <title>%s</title>\n", escape(opts.Title))
	}
	fmt.Fprintf(&sb, `  <rect x="0" y="0" width="%.0f" height="%.0f" style="fill:%s"/>`+"\n", width, height, bg)

	if opts.Title != "" {
		fmt.Fprintf(&sb, `  <text x="%.1f" y="%.1f" style="fill:%s;font-family:sans-serif;font-size:16px;font-weight:bold">%s</text>`+"\n",
			margin, margin-14, textColor, escape(opts.Title))
	}

	renderAxis(&sb, c, margin, chartHeight)
	renderBars(&sb, c, bars, margin)
	renderLegend(&sb, c, width, margin)

	sb.WriteString("</svg>\n")
	return sb.String()
}

// renderAxis draws the vertical time axis with decade tick labels.
func renderAxis(sb *strings.Builder, c *chart.Chart, margin, chartHeight float64) {
	geom := c.Geometry()
	axisX := margin + c.BaseOffset()

	fmt.Fprintf(sb, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" style="stroke:%s;stroke-width:1"/>`+"\n",
		axisX, margin, axisX, margin+chartHeight, axisColor)

	viewYears := int(chartHeight / geom.YearHeight)
	for _, tick := range chart.Ticks(geom.ReferenceYear, viewYears) {
		y := margin + float64(geom.ReferenceYear-tick.Year)*geom.YearHeight
		tickLen := 4.0
		weight := "normal"
		if tick.Century {
			tickLen = 8
			weight = "bold"
		}
		fmt.Fprintf(sb, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" style="stroke:%s;stroke-width:1"/>`+"\n",
			axisX-tickLen, y, axisX, y, axisColor)
		fmt.Fprintf(sb, `  <text x="%.1f" y="%.1f" text-anchor="end" style="fill:%s;font-family:sans-serif;font-size:10px;font-weight:%s">%s</text>`+"\n",
			axisX-tickLen-4, y+3, axisColor, weight, tick.Label)
	}
}

// renderBars draws one rect plus label per span.
func renderBars(sb *strings.Builder, c *chart.Chart, bars []chart.Bar, margin float64) {
	geom := c.Geometry()
	inset := geom.LaneWidth * barInsetRatio
	barWidth := geom.LaneWidth - 2*inset

	for _, b := range bars {
		x := margin + b.Rect.X + inset
		y := margin + b.Rect.Y
		length := b.Rect.Length
		if length < minBarLength {
			length = minBarLength
		}

		style := fmt.Sprintf("fill:%s;fill-opacity:0.85", b.Color)
		if b.Selected {
			style += fmt.Sprintf(";stroke:%s;stroke-width:2", textColor)
		}
		if b.Open {
			// Dashed top edge marks a span that is still running.
			style += ";stroke-dasharray:4 2"
		}
		fmt.Fprintf(sb, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" style="%s">`+"\n", x, y, barWidth, length, style)
		fmt.Fprintf(sb, "    <title>%s (%s)</title>\n", escape(b.Label), rangeLabel(b))
		sb.WriteString("  </rect>\n")

		fmt.Fprintf(sb, `  <text x="%.1f" y="%.1f" style="fill:%s;font-family:sans-serif;font-size:11px">%s</text>`+"\n",
			x+barWidth+4, y+10, textColor, escape(b.Label))
	}
}

// renderLegend draws the category color swatches in the top-right corner.
func renderLegend(sb *strings.Builder, c *chart.Chart, width, margin float64) {
	legend := c.Legend()
	if len(legend) == 0 {
		return
	}

	x := width - margin - 120
	y := margin
	for _, entry := range legend {
		label := entry.Category
		if label == "" {
			label = "uncategorized"
		}
		fmt.Fprintf(sb, `  <rect x="%.1f" y="%.1f" width="10" height="10" style="fill:%s"/>`+"\n", x, y, entry.Color)
		fmt.Fprintf(sb, `  <text x="%.1f" y="%.1f" style="fill:%s;font-family:sans-serif;font-size:10px">%s</text>`+"\n",
			x+14, y+9, textColor, escape(label))
		y += 16
	}
}

func rangeLabel(b chart.Bar) string {
	if b.Open {
		return fmt.Sprintf("%d – present", b.StartYear)
	}
	return fmt.Sprintf("%d – %d", b.StartYear, b.EndYear)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
