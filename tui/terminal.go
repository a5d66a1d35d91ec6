package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/e-ogugua/devflow-cli/simulator"
)

// runEventMsg carries the next simulator event for one run.
type runEventMsg struct {
	runID  string // identifies which run this event belongs to
	event  simulator.Event
	events <-chan simulator.Event
	closed bool
}

func waitForEvent(runID string, events <-chan simulator.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return runEventMsg{runID: runID, event: ev, events: events, closed: !ok}
	}
}

func (m Model) startRun() (tea.Model, tea.Cmd) {
	tool, ok := m.Selected()
	if !ok {
		return m, nil
	}
	// run controls are disabled while a run is in flight
	if m.session.Running() {
		m.status = "A run is already in progress"
		return m, nil
	}
	if !m.throttle.Allow() {
		return m, nil
	}

	events := m.sim.Start(m.ctx, tool)
	// the first event is buffered before Start returns
	first := <-events
	m.session = first.Session
	m.logScroll = 0
	m.status = "Running " + tool.Name
	m.logger.Info("run requested", "tool", tool.ID, "run", first.Session.ID)

	return m, tea.Batch(waitForEvent(first.Session.ID, events), m.spinner.Tick)
}

func (m Model) updateRunEvent(msg runEventMsg) (tea.Model, tea.Cmd) {
	// discard stale events from a run that has been replaced
	if msg.runID != m.session.ID {
		return m, nil
	}
	if msg.closed {
		if m.session.Running() {
			m.session = m.sim.Snapshot()
		}
		return m, nil
	}

	m.session = msg.event.Session
	if msg.event.Final {
		m.stats.record(m.session)
		m.status = m.session.Tool.Name + " finished"
		return m, nil
	}
	return m, waitForEvent(msg.runID, msg.events)
}

func (m Model) renderTerminal(width int) string {
	inner := width - 4
	rows := m.logRows()

	header := dots + terminalTitleStyle.Render(" Terminal")
	if m.session.ID != "" {
		badge := terminalBadgeStyle.Render(truncate(m.session.Tool.Name, inner/2))
		if m.session.Running() {
			badge = m.spinner.View() + " " + badge
		}
		gap := inner - 3 - len(" Terminal") - lipgloss.Width(badge)
		header += terminalTitleStyle.Render(strings.Repeat(" ", max(1, gap))) + badge
	}

	lines := []string{header, ""}
	if m.session.ID == "" {
		lines = append(lines, placeholderStyle.Render("Select a tool to see output..."))
	} else {
		log := m.wrappedLog(inner - 1)
		end := max(0, len(log)-m.logScroll)
		start := max(0, end-rows)
		lines = append(lines, log[start:end]...)
	}
	for len(lines) < rows+2 {
		lines = append(lines, "")
	}

	return terminalStyle.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// wrappedLog renders the session log wrapped to width, with a cursor after
// the last line while the run is active.
func (m Model) wrappedLog(width int) []string {
	log := m.session.Lines()
	var out []string
	for i, line := range log {
		if i == len(log)-1 && m.session.Running() {
			line += "_"
		}
		style := logLineStyle(line)
		for _, wl := range wrapText(line, width) {
			out = append(out, style.Render(wl))
		}
	}
	return out
}

// wrapText splits text into lines that fit within maxWidth.
func wrapText(text string, maxWidth int) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > maxWidth {
			result = append(result, string(runes[:maxWidth]))
			runes = runes[maxWidth:]
		}
		result = append(result, string(runes))
	}
	return result
}

func logLineStyle(line string) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "$"):
		return promptLineStyle
	case strings.HasPrefix(line, "✅"):
		return successLineStyle
	default:
		return outputLineStyle
	}
}

// logRows is the number of log lines the terminal panel shows.
func (m Model) logRows() int {
	// the stats panel takes six lines, the terminal border and header four
	rows := m.bodyHeight() - 6 - 4
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) scrollLogUp(n int) {
	m.logScroll += n
	maxScroll := len(m.wrappedLog(m.rightWidth()-5)) - m.logRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.logScroll > maxScroll {
		m.logScroll = maxScroll
	}
}

func (m *Model) scrollLogDown(n int) {
	m.logScroll -= n
	if m.logScroll < 0 {
		m.logScroll = 0
	}
}

// LogLines returns the log currently shown, for callers outside the TUI.
func (m Model) LogLines() []string {
	if m.session.ID == "" {
		return nil
	}
	return m.session.Lines()
}
