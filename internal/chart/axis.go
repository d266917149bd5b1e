package chart

import "strconv"

// Tick is one labeled year on the vertical time axis.
type Tick struct {
	Year    int
	Label   string
	Century bool // emphasized tick on century boundaries
}

// Ticks returns decade ticks from topYear down through viewYears years,
// newest first. Only years on decade boundaries produce ticks.
func Ticks(topYear, viewYears int) []Tick {
	if viewYears < 0 {
		return nil
	}
	bottom := topYear - viewYears

	// First decade at or below the top edge.
	first := topYear
	if rem := ((first % 10) + 10) % 10; rem != 0 {
		first -= rem
	}

	var out []Tick
	for y := first; y >= bottom; y -= 10 {
		out = append(out, Tick{
			Year:    y,
			Label:   strconv.Itoa(y),
			Century: y%100 == 0,
		})
	}
	return out
}

// VisibleTicks returns the axis ticks for the chart's current viewport.
func (c *Chart) VisibleTicks(viewYears int) []Tick {
	return Ticks(c.TopYear(), viewYears)
}
