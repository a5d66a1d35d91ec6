package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/e-ogugua/devflow-cli/config"
	"github.com/e-ogugua/devflow-cli/tui"
)

func darkMode(theme string) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}

func runDashboard(ctx context.Context, a *app) error {
	m := tui.NewModel(ctx, a.catalog, a.sim)
	m.SetDark(darkMode(a.cfg.Theme))
	m.SetLogger(a.logger)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	a.sim.Stop()
	return err
}
