package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/e-ogugua/devflow-cli/model"
)

// cardHeight is the rendered height of one tool card, borders included.
const cardHeight = 5

func (m Model) renderTools(width int) string {
	var b strings.Builder

	heading := m.theme.text.Bold(true).Render("Available Tools")
	info := m.theme.dim.Render("  [" + m.filter + "]  " + plural(len(m.filtered), "tool"))
	b.WriteString(heading + info + "\n")
	b.WriteString(m.theme.dim.Render("Automate your development workflow with these professional tools"))
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString("\n" + m.theme.dim.Render("  No tools match."))
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	end := m.offset + m.visibleCards()
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderCard(m.filtered[i], i == m.cursor, width))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderCard(t model.Tool, selected bool, width int) string {
	style := m.theme.card
	if selected {
		style = m.theme.cardActive
	}
	// border + horizontal padding
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	badge := categoryBadge(t.Category)
	name := m.theme.text.Bold(true).Render(truncate(t.Name, inner-lipgloss.Width(badge)-1))
	top := name + strings.Repeat(" ", max(1, inner-lipgloss.Width(name)-lipgloss.Width(badge))) + badge

	desc := m.theme.dim.Render(truncate(t.Description, inner))

	button := m.theme.runButton.Render("▶ Run")
	if m.session.Running() {
		button = m.theme.runDisabled.Render("▶ Run")
	}
	code := m.theme.code.Render(truncate(t.Command, inner-lipgloss.Width(button)-3))
	bottom := code + strings.Repeat(" ", max(1, inner-lipgloss.Width(code)-lipgloss.Width(button))) + button

	return style.Width(inner + 2).Render(top + "\n" + desc + "\n" + bottom)
}

func (m Model) visibleCards() int {
	// heading and tagline take two lines
	n := (m.bodyHeight() - 2) / cardHeight
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) clampOffset() {
	visible := m.visibleCards()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
