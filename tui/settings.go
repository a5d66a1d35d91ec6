package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settings field indices
const (
	fieldTheme = iota
	fieldSpeed
	fieldCount
)

var speedOptions = []struct {
	label string
	delay time.Duration
}{
	{"Slow", 2 * time.Second},
	{"Normal", time.Second},
	{"Fast", 250 * time.Millisecond},
}

type settingsForm struct {
	dark  int // 0 = light, 1 = dark
	speed int // index into speedOptions
	focus int
}

func (m Model) enterSettings() (Model, tea.Cmd) {
	f := settingsForm{speed: 1, focus: fieldTheme}
	if m.dark {
		f.dark = 1
	}
	current := m.sim.Delay()
	for i, opt := range speedOptions {
		if opt.delay == current {
			f.speed = i
		}
	}
	m.settings = &f
	m.mode = modeSettings
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.settings
	key := msg.String()

	switch key {
	case "esc":
		m.settings = nil
		m.mode = modeList
		return m, nil

	case "tab", "down":
		f.focus = (f.focus + 1) % fieldCount
		return m, nil

	case "shift+tab", "up":
		f.focus = (f.focus - 1 + fieldCount) % fieldCount
		return m, nil

	case "enter":
		m.SetDark(f.dark == 1)
		// applies to the next run; an active run keeps its pacing
		m.sim.SetDelay(speedOptions[f.speed].delay)
		m.logger.Info("settings applied", "dark", m.dark, "step_delay", speedOptions[f.speed].delay)
		m.status = "Settings applied"
		m.settings = nil
		m.mode = modeList
		return m, nil
	}

	switch f.focus {
	case fieldTheme:
		switch key {
		case "left", "h":
			f.dark = 0
		case "right", "l":
			f.dark = 1
		}
	case fieldSpeed:
		switch key {
		case "left", "h":
			if f.speed > 0 {
				f.speed--
			}
		case "right", "l":
			if f.speed < len(speedOptions)-1 {
				f.speed++
			}
		}
	}

	return m, nil
}

func (m Model) viewSettings() string {
	f := m.settings

	speeds := make([]string, len(speedOptions))
	for i, opt := range speedOptions {
		speeds[i] = fmt.Sprintf("%s (%s)", opt.label, opt.delay)
	}

	rows := []string{
		m.theme.title.Render("Settings"),
		"",
		m.settingRow("Theme", []string{"Light", "Dark"}, f.dark, f.focus == fieldTheme),
		m.settingRow("Speed", speeds, f.speed, f.focus == fieldSpeed),
		"",
		m.theme.help.Render("Enter: apply  Esc: cancel  Tab: next  ←→: change"),
	}

	box := m.theme.cardActive.Padding(1, 2).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// settingRow renders one labelled choice; the focused row gets a marker and
// the accent colour on its chosen option.
func (m Model) settingRow(label string, options []string, selected int, focused bool) string {
	marker, labelStyle := "  ", m.theme.dim
	chosen := m.theme.text.Bold(true)
	if focused {
		marker = "▸ "
		labelStyle = m.theme.text.Bold(true)
		chosen = chosen.Foreground(accent)
	}

	choices := make([]string, len(options))
	for i, opt := range options {
		if i == selected {
			choices[i] = chosen.Render("[" + opt + "]")
		} else {
			choices[i] = m.theme.dim.Render(" " + opt + " ")
		}
	}
	return marker + labelStyle.Width(7).Render(label) + strings.Join(choices, " ") + "\n"
}
