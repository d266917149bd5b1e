// Package ui provides stderr-based CLI output for aeon, plus a pure
// string renderer for the timeline chart shared by the TUI and the
// non-interactive show command.
package ui

import (
	"fmt"
	"os"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╔═══════════════════════════════╗"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ║"+reset+bold+"   AEON  "+dim+"lifespan timelines"+reset+bold+cyan+"   ║"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╚═══════════════════════════════╝"+reset)
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, yellow+bold+"⚠ "+reset+"%s\n", msg)
}

func (p *Printer) FigureSaved(id string, start int, end string) {
	fmt.Fprintf(os.Stderr, green+"◆ saved"+reset+" %s "+dim+"(%d – %s)"+reset+"\n", id, start, end)
}

func (p *Printer) FigureRemoved(id string) {
	fmt.Fprintf(os.Stderr, green+"◆ removed"+reset+" %s\n", id)
}

func (p *Printer) ImportResult(path string, count int) {
	fmt.Fprintf(os.Stderr, green+"◆ imported"+reset+" %d figure(s) from %s\n", count, path)
}

func (p *Printer) ExportDone(path string, bars, lanes int) {
	fmt.Fprintf(os.Stderr, green+"◆ exported"+reset+" %s "+dim+"(%d bars, %d lanes)"+reset+"\n", path, bars, lanes)
}

func (p *Printer) ValidateResult(path string, count int, errs []error) {
	if len(errs) == 0 {
		fmt.Fprintf(os.Stderr, green+bold+"✓ valid"+reset+" — %d figure(s) in %s\n", count, path)
		return
	}
	fmt.Fprintf(os.Stderr, red+bold+"✗ %d problem(s)"+reset+" in %s:\n", len(errs), path)
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "  • %v\n", err)
	}
}
