package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/e-ogugua/devflow-cli/catalog"
	"github.com/e-ogugua/devflow-cli/model"
	"github.com/e-ogugua/devflow-cli/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestModel(delay time.Duration) Model {
	sim := simulator.New(simulator.WithDelay(delay))
	return NewModel(context.Background(), catalog.Builtin(), sim)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// runEvents executes cmd and returns the run events it produced, ignoring
// spinner ticks.
func runEvents(cmd tea.Cmd) []runEventMsg {
	if cmd == nil {
		return nil
	}
	var out []runEventMsg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, runEvents(c)...)
		}
	case runEventMsg:
		out = append(out, msg)
	}
	return out
}

// pump feeds run events back into the model until none are pending.
func pump(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for {
		evs := runEvents(cmd)
		if len(evs) == 0 {
			return m
		}
		cmd = nil
		for _, ev := range evs {
			var next tea.Cmd
			m, next = update(t, m, ev)
			if next != nil {
				cmd = next
			}
		}
	}
}

func TestInitialView(t *testing.T) {
	m := newTestModel(time.Millisecond)
	view := m.View()
	assert.Contains(t, view, "DevFlow CLI")
	assert.Contains(t, view, "React App Scaffold")
	assert.Contains(t, view, "Select a tool to see output...")
	assert.Contains(t, view, "Workflow Stats")
	assert.Nil(t, m.LogLines())
}

func TestRunSelectedTool(t *testing.T) {
	m := newTestModel(time.Millisecond)
	m, _ = update(t, m, key("down"))

	tool, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "git-flow", tool.ID)

	m, cmd := update(t, m, key("enter"))
	assert.True(t, m.Session().Running())
	assert.Equal(t, []string{"$ devflow git init-flow", "Initializing..."}, m.LogLines())

	m = pump(t, m, cmd)
	sess := m.Session()
	assert.Equal(t, model.RunCompleted, sess.State)
	assert.Len(t, sess.Lines(), 7)
	assert.Equal(t, "✅ Git Flow Helper completed successfully!", sess.Last())
	assert.Equal(t, 1, m.stats.commandsRun)
	assert.Equal(t, 0, m.stats.projectsCreated)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Contains(t, m.View(), "Git Flow Helper completed successfully!")
}

func TestRunRejectedWhileRunning(t *testing.T) {
	m := newTestModel(time.Hour)
	m, _ = update(t, m, key("enter"))
	first := m.Session()
	require.True(t, first.Running())

	m, cmd := update(t, m, key("r"))
	assert.Nil(t, cmd)
	assert.Equal(t, first.ID, m.Session().ID)
	assert.Equal(t, "A run is already in progress", m.status)

	m, _ = update(t, m, key("x"))
	assert.Equal(t, model.RunCancelled, m.Session().State)
}

func TestStaleEventsDiscarded(t *testing.T) {
	m := newTestModel(time.Hour)
	m, _ = update(t, m, key("enter"))
	current := m.Session()

	stale := runEventMsg{
		runID: "old-run",
		event: simulator.Event{Session: model.Begin("old-run", model.Tool{Command: "x"}, time.Now())},
	}
	m, cmd := update(t, m, stale)
	assert.Nil(t, cmd)
	assert.Equal(t, current, m.Session())
	m.sim.Stop()
}

func TestCategoryFilter(t *testing.T) {
	m := newTestModel(time.Millisecond)
	require.Len(t, m.filtered, 4)

	m, _ = update(t, m, key("tab"))
	assert.Equal(t, string(model.CategoryScaffolding), m.filter)
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "create-react-app", m.filtered[0].ID)

	for i := 0; i < 4; i++ {
		m, _ = update(t, m, key("tab"))
	}
	assert.Equal(t, filterAll, m.filter)
	assert.Len(t, m.filtered, 4)
}

func TestSearch(t *testing.T) {
	m := newTestModel(time.Millisecond)
	m, _ = update(t, m, key("/"))
	require.Equal(t, modeSearch, m.mode)

	for _, r := range "mock" {
		m, _ = update(t, m, key(string(r)))
	}
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "api-test", m.filtered[0].ID)

	m, _ = update(t, m, key("enter"))
	assert.Equal(t, modeList, m.mode)
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(time.Millisecond)
	assert.False(t, m.dark)
	m, _ = update(t, m, key("t"))
	assert.True(t, m.dark)
	assert.Contains(t, m.View(), "dark")
}

func TestSettingsApply(t *testing.T) {
	m := newTestModel(time.Second)
	m, _ = update(t, m, key("s"))
	require.Equal(t, modeSettings, m.mode)
	assert.Contains(t, m.View(), "Settings")

	m, _ = update(t, m, key("l")) // dark
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("l")) // fast
	m, _ = update(t, m, key("enter"))

	assert.Equal(t, modeList, m.mode)
	assert.True(t, m.dark)
	assert.Equal(t, 250*time.Millisecond, m.sim.Delay())
}

func TestSettingsCancel(t *testing.T) {
	m := newTestModel(time.Second)
	m, _ = update(t, m, key("s"))
	m, _ = update(t, m, key("l"))
	m, _ = update(t, m, key("esc"))
	assert.False(t, m.dark)
	assert.Equal(t, time.Second, m.sim.Delay())
}

func TestStatsRecord(t *testing.T) {
	var s stats
	scaffold := model.Tool{ID: "a", Name: "A", Command: "x", Category: model.CategoryScaffolding}

	s.record(model.Begin("r1", scaffold, time.Now()))
	assert.Zero(t, s.commandsRun, "running sessions are not counted")

	s.record(model.Begin("r1", scaffold, time.Now()).Complete("done", time.Now()))
	assert.Equal(t, 1, s.commandsRun)
	assert.Equal(t, 1, s.projectsCreated)
	assert.Equal(t, "20 min", formatSaved(s.timeSaved))
	assert.Equal(t, "1.5 hrs", formatSaved(90*time.Minute))
}

func TestQuitStopsRun(t *testing.T) {
	m := newTestModel(time.Hour)
	m, _ = update(t, m, key("enter"))
	m, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.False(t, m.sim.Running())
	assert.Equal(t, "", m.View())
}

func TestRepeatedTriggerThrottled(t *testing.T) {
	m := newTestModel(time.Millisecond)
	// one trigger per hour keeps the second press inside the window
	m.throttle = rate.NewLimiter(rate.Every(time.Hour), 1)

	m, cmd := update(t, m, key("enter"))
	m = pump(t, m, cmd)
	done := m.Session()
	require.Equal(t, model.RunCompleted, done.State)

	m, cmd = update(t, m, key("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, done.ID, m.Session().ID, "no new session")
	assert.False(t, m.sim.Running())
	assert.Equal(t, 1, m.stats.commandsRun)
}

func TestTriggerAfterStopThrottled(t *testing.T) {
	m := newTestModel(time.Hour)
	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, key("x"))
	stopped := m.Session()
	require.Equal(t, model.RunCancelled, stopped.State)

	// pressed again well inside runTriggerInterval
	m, cmd := update(t, m, key("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, stopped.ID, m.Session().ID)
	assert.False(t, m.sim.Running())
}
