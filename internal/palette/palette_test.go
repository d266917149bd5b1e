package palette

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorFor_LazyAndStable(t *testing.T) {
	t.Parallel()
	a := New()

	first := a.ColorFor("artists")
	second := a.ColorFor("scientists")
	if first == second {
		t.Errorf("two categories got the same color %q", first)
	}
	if again := a.ColorFor("artists"); again != first {
		t.Errorf("repeated lookup changed color: %q then %q", first, again)
	}
}

func TestColorFor_AssignmentOrderNotAlphabetical(t *testing.T) {
	t.Parallel()
	a := NewWithColors([]string{"#111111", "#222222", "#333333"})

	// First-seen category takes the first color, regardless of name.
	if got := a.ColorFor("zebras"); got != "#111111" {
		t.Errorf("first category color = %q, want #111111", got)
	}
	if got := a.ColorFor("aardvarks"); got != "#222222" {
		t.Errorf("second category color = %q, want #222222", got)
	}
}

func TestColorFor_WrapsWhenExhausted(t *testing.T) {
	t.Parallel()
	a := NewWithColors([]string{"#111111", "#222222"})
	a.ColorFor("one")
	a.ColorFor("two")
	if got := a.ColorFor("three"); got != "#111111" {
		t.Errorf("wrapped color = %q, want #111111", got)
	}
}

func TestLegend(t *testing.T) {
	t.Parallel()
	a := NewWithColors([]string{"#111111", "#222222"})
	a.ColorFor("b")
	a.ColorFor("a")
	a.ColorFor("b") // repeat must not duplicate the legend entry

	want := []Entry{
		{Category: "b", Color: "#111111"},
		{Category: "a", Color: "#222222"},
	}
	if diff := cmp.Diff(want, a.Legend()); diff != "" {
		t.Errorf("Legend mismatch (-want +got):\n%s", diff)
	}
}
