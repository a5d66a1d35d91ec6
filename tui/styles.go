package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/e-ogugua/devflow-cli/model"
)

type theme struct {
	title       lipgloss.Style
	subtitle    lipgloss.Style
	text        lipgloss.Style
	dim         lipgloss.Style
	card        lipgloss.Style
	cardActive  lipgloss.Style
	panel       lipgloss.Style
	statusBar   lipgloss.Style
	help        lipgloss.Style
	statValue   lipgloss.Style
	statSuccess lipgloss.Style
	code        lipgloss.Style
	runButton   lipgloss.Style
	runDisabled lipgloss.Style
}

var (
	accent  = lipgloss.Color("39")
	success = lipgloss.Color("42")

	categoryColors = map[model.Category]lipgloss.Color{
		model.CategoryScaffolding:  lipgloss.Color("33"),
		model.CategoryGit:          lipgloss.Color("35"),
		model.CategoryTesting:      lipgloss.Color("214"),
		model.CategoryProductivity: lipgloss.Color("135"),
	}

	// the terminal panel is dark in both themes
	terminalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Background(lipgloss.Color("234")).
			Padding(0, 1)

	terminalTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("234"))

	terminalBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)

	promptLineStyle = lipgloss.NewStyle().
			Foreground(accent).
			Background(lipgloss.Color("234"))

	successLineStyle = lipgloss.NewStyle().
				Foreground(success).
				Background(lipgloss.Color("234"))

	outputLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("234"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("242")).
				Background(lipgloss.Color("234")).
				Italic(true)

	dots = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("●") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Render("●") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render("●")
)

func newTheme(dark bool) theme {
	fg, dimFg, border, barBg := lipgloss.Color("235"), lipgloss.Color("244"), lipgloss.Color("250"), lipgloss.Color("253")
	if dark {
		fg, dimFg, border, barBg = lipgloss.Color("255"), lipgloss.Color("245"), lipgloss.Color("238"), lipgloss.Color("236")
	}

	return theme{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(accent).
			Padding(0, 1),
		subtitle: lipgloss.NewStyle().Foreground(dimFg),
		text:     lipgloss.NewStyle().Foreground(fg),
		dim:      lipgloss.NewStyle().Foreground(dimFg),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		cardActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		statusBar: lipgloss.NewStyle().
			Background(barBg).
			Foreground(fg).
			Padding(0, 1),
		help:        lipgloss.NewStyle().Foreground(dimFg),
		statValue:   lipgloss.NewStyle().Bold(true).Foreground(fg),
		statSuccess: lipgloss.NewStyle().Bold(true).Foreground(success),
		code: lipgloss.NewStyle().
			Foreground(dimFg).
			Background(barBg).
			Padding(0, 1),
		runButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(accent).
			Padding(0, 1),
		runDisabled: lipgloss.NewStyle().
			Foreground(dimFg).
			Background(barBg).
			Padding(0, 1),
	}
}

func categoryBadge(c model.Category) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(categoryColors[c]).
		Padding(0, 1).
		Render(string(c))
}
