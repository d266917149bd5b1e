package lane

import "time"

// Geometry converts lane and year coordinates into chart positions.
// The zero value is unusable; construct with explicit scale factors.
type Geometry struct {
	// YearHeight is the vertical extent of one year, in output units.
	YearHeight float64

	// LaneWidth is the horizontal extent of one lane.
	LaneWidth float64

	// ReferenceYear anchors the top of the chart. Fixed at construction
	// so coordinates stay stable for the life of a session.
	ReferenceYear int
}

// Rect is the position and time-axis extent of one bar.
type Rect struct {
	X      float64
	Y      float64
	Length float64
}

// Position maps a span's lane and resolved years to a bar rectangle.
// Y grows downward from the reference year, so more recent end years
// sit closer to the top and the bar extends backward in time.
func (g Geometry) Position(laneIndex, startYear, effectiveEnd int) Rect {
	return Rect{
		X:      float64(laneIndex) * g.LaneWidth,
		Y:      float64(g.ReferenceYear-effectiveEnd) * g.YearHeight,
		Length: float64(effectiveEnd-startYear) * g.YearHeight,
	}
}

// ReferenceYear returns the chart anchor for the given wall-clock time:
// one decade past the current decade. 2024 → 2030.
func ReferenceYear(now time.Time) int {
	return now.Year()/10*10 + 10
}
