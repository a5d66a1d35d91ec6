package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/e-ogugua/devflow-cli/model"
)

// rough manual effort each category replaces, for the stats panel
var savedPerRun = map[model.Category]time.Duration{
	model.CategoryScaffolding:  20 * time.Minute,
	model.CategoryGit:          5 * time.Minute,
	model.CategoryTesting:      15 * time.Minute,
	model.CategoryProductivity: 2 * time.Minute,
}

// stats counts runs of this process only; nothing is persisted.
type stats struct {
	projectsCreated int
	commandsRun     int
	timeSaved       time.Duration
}

func (s *stats) record(sess model.RunSession) {
	if sess.State != model.RunCompleted {
		return
	}
	s.commandsRun++
	if sess.Tool.Category == model.CategoryScaffolding {
		s.projectsCreated++
	}
	s.timeSaved += savedPerRun[sess.Tool.Category]
}

func formatSaved(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%d min", int(d.Minutes()))
	}
	return fmt.Sprintf("%.1f hrs", d.Hours())
}

func (m Model) renderStats(width int) string {
	inner := width - 4
	row := func(label, value string, success bool) string {
		v := m.theme.statValue.Render(value)
		if success {
			v = m.theme.statSuccess.Render(value)
		}
		l := m.theme.dim.Render(label)
		gap := inner - len([]rune(label)) - len([]rune(value))
		if gap < 1 {
			gap = 1
		}
		return l + strings.Repeat(" ", gap) + v
	}

	lines := []string{
		m.theme.text.Bold(true).Render("Workflow Stats"),
		row("Projects Created", fmt.Sprint(m.stats.projectsCreated), false),
		row("Commands Run", fmt.Sprint(m.stats.commandsRun), false),
		row("Time Saved", formatSaved(m.stats.timeSaved), true),
	}
	return m.theme.panel.Width(inner + 2).Render(strings.Join(lines, "\n"))
}
