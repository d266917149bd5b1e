package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTicks_DecadesNewestFirst(t *testing.T) {
	t.Parallel()
	got := Ticks(2030, 35)
	want := []Tick{
		{Year: 2030, Label: "2030"},
		{Year: 2020, Label: "2020"},
		{Year: 2010, Label: "2010"},
		{Year: 2000, Label: "2000", Century: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestTicks_TopNotOnDecade(t *testing.T) {
	t.Parallel()
	got := Ticks(1987, 20)
	want := []Tick{
		{Year: 1980, Label: "1980"},
		{Year: 1970, Label: "1970"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestTicks_NegativeYears(t *testing.T) {
	t.Parallel()
	got := Ticks(-95, 20)
	want := []Tick{
		{Year: -100, Label: "-100", Century: true},
		{Year: -110, Label: "-110"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestTicks_EmptyWindow(t *testing.T) {
	t.Parallel()
	if got := Ticks(2030, -1); got != nil {
		t.Errorf("Ticks(negative window) = %v, want nil", got)
	}
}
