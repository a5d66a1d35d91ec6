package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/e-ogugua/devflow-cli/catalog"
	"github.com/e-ogugua/devflow-cli/model"
	"github.com/e-ogugua/devflow-cli/simulator"
	"golang.org/x/time/rate"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeSettings
)

const filterAll = "all"

// runTriggerInterval throttles key repeat on the run key.
const runTriggerInterval = 300 * time.Millisecond

type Model struct {
	ctx      context.Context
	sim      *simulator.Simulator
	logger   *slog.Logger
	tools    []model.Tool
	filtered []model.Tool

	cursor      int
	offset      int // first visible card
	width       int
	height      int
	mode        mode
	searchInput textinput.Model
	filter      string // "all" or a category

	session   model.RunSession // latest snapshot from the simulator
	logScroll int              // lines scrolled up from the bottom of the log
	spinner   spinner.Model
	throttle  *rate.Limiter
	stats     stats

	dark     bool
	theme    theme
	settings *settingsForm
	status   string
	quitting bool
}

func NewModel(ctx context.Context, cat *catalog.Catalog, sim *simulator.Simulator) Model {
	si := textinput.New()
	si.Placeholder = "search..."
	si.CharLimit = 100

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(accent)

	m := Model{
		ctx:         ctx,
		sim:         sim,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		tools:       cat.All(),
		filter:      filterAll,
		searchInput: si,
		spinner:     sp,
		throttle:    rate.NewLimiter(rate.Every(runTriggerInterval), 1),
		theme:       newTheme(false),
		width:       120,
		height:      32,
	}
	m.applyFilter()
	return m
}

func (m *Model) SetDark(dark bool) {
	m.dark = dark
	m.theme = newTheme(dark)
}

func (m *Model) SetLogger(l *slog.Logger) {
	m.logger = l
}

func (m *Model) applyFilter() {
	m.filtered = nil
	search := strings.ToLower(m.searchInput.Value())

	for _, t := range m.tools {
		if m.filter != filterAll && string(t.Category) != m.filter {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(t.Name + " " + t.Description + " " + t.Command + " " + t.ID)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		m.filtered = append(m.filtered, t)
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func (m *Model) nextFilter() {
	order := []string{filterAll}
	for _, c := range model.Categories {
		order = append(order, string(c))
	}
	for i, f := range order {
		if f == m.filter {
			m.filter = order[(i+1)%len(order)]
			break
		}
	}
	m.applyFilter()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case runEventMsg:
		return m.updateRunEvent(msg)

	case spinner.TickMsg:
		if !m.session.Running() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeSettings:
			return m.updateSettings(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.sim.Stop()
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "home", "g":
		m.cursor = 0
		m.clampOffset()

	case "end", "G":
		m.cursor = max(0, len(m.filtered)-1)
		m.clampOffset()

	case "pgup", "u":
		m.scrollLogUp(m.logRows())

	case "pgdown", "d":
		m.scrollLogDown(m.logRows())

	case "enter", "r":
		return m.startRun()

	case "esc", "x":
		if m.session.Running() {
			m.sim.Stop()
			m.session = m.sim.Snapshot()
			m.status = "Stopped " + m.session.Tool.Name
		}

	case "/":
		m.searchInput.Focus()
		m.mode = modeSearch

	case "tab":
		m.nextFilter()

	case "t":
		m.SetDark(!m.dark)

	case "s":
		return m.enterSettings()
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// Selected returns the tool under the cursor.
func (m Model) Selected() (model.Tool, bool) {
	if len(m.filtered) == 0 {
		return model.Tool{}, false
	}
	return m.filtered[m.cursor], true
}

// Session returns the run snapshot currently on screen.
func (m Model) Session() model.RunSession {
	return m.session
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeSettings && m.settings != nil {
		return m.viewSettings()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	left := m.renderTools(m.leftWidth())
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTerminal(m.rightWidth()),
		m.renderStats(m.rightWidth()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	b.WriteString(lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body))
	b.WriteString("\n")

	switch m.mode {
	case modeSearch:
		b.WriteString(m.theme.statusBar.Render("Search: ") + m.searchInput.View())
	default:
		b.WriteString(m.renderHelp())
	}

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.theme.title.Render("DevFlow CLI")
	sub := m.theme.subtitle.Render("  Professional Developer Tools Suite")
	themeName := "☀ light"
	if m.dark {
		themeName = "☾ dark"
	}
	right := m.theme.dim.Render(themeName + "  [t] theme")
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(sub) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + sub + strings.Repeat(" ", gap) + right
}

func (m Model) renderHelp() string {
	help := m.theme.help.Render("  Enter: run  x: stop  /: search  Tab: filter  s: settings  q: quit")
	if m.status != "" {
		return m.theme.statusBar.Render(m.status) + help
	}
	return help
}

func (m Model) leftWidth() int {
	w := m.width * 2 / 3
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) rightWidth() int {
	w := m.width - m.leftWidth() - 1
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) bodyHeight() int {
	// header + bottom bar
	h := m.height - 2
	if h < 8 {
		h = 8
	}
	return h
}

// truncate cuts s to width runes, marking the cut with "..".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 2 {
		return string(runes[:width])
	}
	return string(runes[:width-2]) + ".."
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
