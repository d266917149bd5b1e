package lane

import (
	"testing"
	"time"
)

func TestPosition(t *testing.T) {
	t.Parallel()
	g := Geometry{YearHeight: 3, LaneWidth: 30, ReferenceYear: 2030}

	got := g.Position(2, 1900, 1950)
	if got.X != 60 {
		t.Errorf("X = %v, want 60", got.X)
	}
	if got.Y != 240 {
		t.Errorf("Y = %v, want 240", got.Y)
	}
	if got.Length != 150 {
		t.Errorf("Length = %v, want 150", got.Length)
	}
}

func TestPosition_ZeroDuration(t *testing.T) {
	t.Parallel()
	g := Geometry{YearHeight: 3, LaneWidth: 30, ReferenceYear: 2030}
	got := g.Position(0, 1920, 1920)
	if got.Length != 0 {
		t.Errorf("Length = %v, want 0", got.Length)
	}
	if got.X != 0 {
		t.Errorf("X = %v, want 0", got.X)
	}
}

func TestPosition_EndAtReference(t *testing.T) {
	t.Parallel()
	g := Geometry{YearHeight: 2, LaneWidth: 10, ReferenceYear: 2030}
	got := g.Position(1, 2000, 2030)
	if got.Y != 0 {
		t.Errorf("Y = %v, want 0 (bar ending at the reference year touches the top)", got.Y)
	}
}

func TestReferenceYear(t *testing.T) {
	t.Parallel()
	cases := []struct {
		year int
		want int
	}{
		{2024, 2030},
		{2020, 2030},
		{2029, 2030},
		{1999, 2000},
		{2000, 2010},
	}
	for _, tc := range cases {
		now := time.Date(tc.year, time.June, 1, 0, 0, 0, 0, time.UTC)
		if got := ReferenceYear(now); got != tc.want {
			t.Errorf("ReferenceYear(%d) = %d, want %d", tc.year, got, tc.want)
		}
	}
}
