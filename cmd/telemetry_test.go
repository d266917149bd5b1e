package cmd

import (
	"strings"
	"testing"
)

func TestPrintEvent_FigureEvent(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	printEvent(&sb, `{"ts":"2026-08-24T10:30:00Z","kind":"figure_saved","figure":"ada"}`)

	out := sb.String()
	if !strings.Contains(out, "figure_saved") || !strings.Contains(out, "ada") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "10:30:00") {
		t.Errorf("timestamp missing from %q", out)
	}
}

func TestPrintEvent_DataEvent(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	printEvent(&sb, `{"ts":"2026-08-24T10:30:00Z","kind":"reallocate","data":{"bars":5,"lanes":2}}`)

	out := sb.String()
	if !strings.Contains(out, "reallocate") || !strings.Contains(out, `"lanes":2`) {
		t.Errorf("output = %q", out)
	}
}

func TestPrintEvent_MalformedLinePassedThrough(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	printEvent(&sb, "not json at all")
	if got := sb.String(); got != "not json at all\n" {
		t.Errorf("output = %q", got)
	}
}
