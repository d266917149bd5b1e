// Package tui implements the interactive chart screen: a scrollable
// viewport over the rendered timeline with cursor-based bar selection
// and live reload when the catalog changes under the session.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/aeon/internal/chart"
	"github.com/papapumpkin/aeon/internal/ui"
)

// MsgChartReloaded swaps in a rebuilt chart after an external catalog
// change. Sent by the watcher goroutine via Program.Send.
type MsgChartReloaded struct {
	Chart *chart.Chart
}

// MsgReloadFailed surfaces a catalog reload error without killing the session.
type MsgReloadFailed struct {
	Err error
}

// Model is the root bubbletea model for the chart screen.
type Model struct {
	Title string

	chart    *chart.Chart
	renderer *ui.ChartRenderer
	viewport viewport.Model

	order  []string // bar IDs in visual order for cursor navigation
	cursor int

	width  int
	height int
	ready  bool

	reloadErr error
	quitting  bool
}

// NewModel creates the chart screen over an already-built chart.
func NewModel(title string, c *chart.Chart, renderer *ui.ChartRenderer) Model {
	m := Model{
		Title:    title,
		chart:    c,
		renderer: renderer,
	}
	m.rebuildOrder()
	m.syncSelection()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - chromeHeight
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.renderChart())
		return m, nil

	case MsgChartReloaded:
		m.chart = msg.Chart
		m.reloadErr = nil
		m.rebuildOrder()
		m.syncSelection()
		if m.ready {
			m.viewport.SetContent(m.renderChart())
		}
		return m, nil

	case MsgReloadFailed:
		m.reloadErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// chromeHeight is the number of non-viewport rows: status bar, detail,
// legend, footer.
const chromeHeight = 4

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "g", "home":
		m.viewport.GotoTop()
		return m, nil

	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	// Remaining keys (pgup/pgdown, wheel) scroll the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// moveCursor shifts the selection in visual order and restyles the chart.
func (m *Model) moveCursor(delta int) {
	if len(m.order) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.order) {
		m.cursor = len(m.order) - 1
	}
	m.syncSelection()
	if m.ready {
		m.viewport.SetContent(m.renderChart())
	}
}

// SelectedID returns the bar ID at the cursor, or empty string.
func (m Model) SelectedID() string {
	if m.cursor < 0 || m.cursor >= len(m.order) {
		return ""
	}
	return m.order[m.cursor]
}

// rebuildOrder sorts bars top-down (most recent end first), then by
// lane, for intuitive up/down navigation.
func (m *Model) rebuildOrder() {
	bars := m.chart.Bars()
	sort.SliceStable(bars, func(i, j int) bool {
		if bars[i].EndYear != bars[j].EndYear {
			return bars[i].EndYear > bars[j].EndYear
		}
		return bars[i].Lane < bars[j].Lane
	})
	m.order = m.order[:0]
	for _, b := range bars {
		m.order = append(m.order, b.ID)
	}
	if m.cursor >= len(m.order) {
		m.cursor = len(m.order) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) syncSelection() {
	if id := m.SelectedID(); id != "" {
		// Only fails for an ID not on the chart, which rebuildOrder rules out.
		_ = m.chart.Select(id)
	}
}

// renderChart produces the viewport content: the full chart from the
// reference year back to the earliest span.
func (m *Model) renderChart() string {
	viewYears := m.chart.ReferenceYear() - earliestStart(m.chart)
	return m.renderer.Render(m.chart.Bars(), m.chart.ReferenceYear(), viewYears, m.chart.LaneCount())
}

func earliestStart(c *chart.Chart) int {
	earliest := c.ReferenceYear()
	for _, b := range c.Bars() {
		if b.StartYear < earliest {
			earliest = b.StartYear
		}
	}
	return earliest
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}

	var sb strings.Builder
	sb.WriteString(m.statusBar())
	sb.WriteByte('\n')
	sb.WriteString(m.viewport.View())
	sb.WriteByte('\n')
	sb.WriteString(m.detailLine())
	sb.WriteByte('\n')
	sb.WriteString(m.legendLine())
	sb.WriteByte('\n')
	sb.WriteString(m.footer())
	return sb.String()
}

func (m Model) statusBar() string {
	parts := []string{
		styleStatusLabel.Render("AEON"),
		styleStatusValue.Render(m.Title),
		styleStatusValue.Render(fmt.Sprintf("%d bars", m.chart.Len())),
		styleStatusValue.Render(fmt.Sprintf("%d lanes", m.chart.LaneCount())),
	}
	line := strings.Join(parts, styleDetailDim.Render("  │  "))
	if m.reloadErr != nil {
		line += "  " + styleError.Render("reload failed: "+m.reloadErr.Error())
	}
	return styleStatusBar.Width(m.width).Render(line)
}

// detailLine shows the selected bar's label, range, and category.
func (m Model) detailLine() string {
	id := m.SelectedID()
	if id == "" {
		return styleDetailDim.Render("  no selection")
	}
	for _, b := range m.chart.Bars() {
		if b.ID != id {
			continue
		}
		end := fmt.Sprintf("%d", b.EndYear)
		if b.Open {
			end = "present"
		}
		detail := styleSelected.Render("▸ "+b.Label) +
			styleDetailDim.Render(fmt.Sprintf("  %d – %s", b.StartYear, end))
		if b.Category != "" {
			detail += styleDetailDim.Render("  [" + b.Category + "]")
		}
		return "  " + detail
	}
	return styleDetailDim.Render("  no selection")
}

// legendLine shows one colored dot per category.
func (m Model) legendLine() string {
	legend := m.chart.Legend()
	if len(legend) == 0 {
		return ""
	}
	var parts []string
	for _, entry := range legend {
		label := entry.Category
		if label == "" {
			label = "uncategorized"
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Color)).Render("●")
		parts = append(parts, dot+" "+lipgloss.NewStyle().Foreground(colorMutedLight).Render(label))
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) footer() string {
	help := "↑/↓ select bar  ·  pgup/pgdn scroll  ·  g/G top/bottom  ·  q quit"
	return styleFooter.Width(m.width).Render(help)
}
