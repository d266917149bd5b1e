// Package palette assigns distinct display colors to span categories.
// Assignment is lazy: a category receives the first unused color from a
// fixed palette the first time it is looked up, and keeps it for the
// life of the assigner.
package palette

// defaultColors is the built-in palette, ordered by assignment
// preference. Wraps around when more categories exist than colors.
var defaultColors = []string{
	"#00BFFF", // cyan
	"#FFD700", // gold
	"#00E676", // green
	"#FF5252", // red
	"#5B8DEF", // blue
	"#BA68C8", // purple
	"#FF8A3D", // orange
	"#4DD0E1", // teal
	"#F06292", // pink
	"#AED581", // lime
}

// Entry pairs a category with its assigned color, in assignment order.
type Entry struct {
	Category string
	Color    string
}

// Assigner hands out palette colors per category. Not safe for
// concurrent use; the chart model is single-threaded.
type Assigner struct {
	colors []string
	byCat  map[string]string
	order  []string
}

// New creates an Assigner over the built-in palette.
func New() *Assigner {
	return NewWithColors(defaultColors)
}

// NewWithColors creates an Assigner over a caller-supplied palette.
// An empty palette falls back to the built-in one.
func NewWithColors(colors []string) *Assigner {
	if len(colors) == 0 {
		colors = defaultColors
	}
	return &Assigner{
		colors: colors,
		byCat:  make(map[string]string),
	}
}

// ColorFor returns the color for a category, assigning the next unused
// palette color on first sight. The empty category is a valid key.
func (a *Assigner) ColorFor(category string) string {
	if c, ok := a.byCat[category]; ok {
		return c
	}
	c := a.colors[len(a.order)%len(a.colors)]
	a.byCat[category] = c
	a.order = append(a.order, category)
	return c
}

// Legend returns all assigned categories and colors in assignment order.
func (a *Assigner) Legend() []Entry {
	out := make([]Entry, 0, len(a.order))
	for _, cat := range a.order {
		out = append(out, Entry{Category: cat, Color: a.byCat[cat]})
	}
	return out
}
