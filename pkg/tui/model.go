// Package tui is the Bubble Tea interface for habitflow. Every key press is
// turned into an app.Command, applied to the store and followed by a fresh
// projection; timer resets and storage changes arrive as messages on the same
// loop.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/store"
	"tableflip.dev/habitflow/pkg/tui/theme"
	"tableflip.dev/habitflow/pkg/view"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeRename
)

const (
	barWidth     = 30
	minNameWidth = 12
)

// postedMsg carries a callback queued from another goroutine, such as the
// reset scheduler's timer.
type postedMsg struct {
	run   func()
	label string
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Options configure the model.
type Options struct {
	// Watch delivers storage change events from other processes.
	Watch <-chan store.Event
}

// Model renders the habit list and routes keys to the store.
type Model struct {
	ctx   context.Context
	store *app.Store
	theme theme.Theme

	snap   view.Snapshot
	cursor int
	mode   mode
	input  textinput.Model

	// renaming is the habit the rename prompt applies to.
	renaming habit.ID

	status    string
	statusErr bool

	watchCh <-chan store.Event

	width  int
	height int
}

// New builds a model over s.
func New(ctx context.Context, s *app.Store, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.Placeholder = "Habit name"
	ti.CharLimit = 120
	ti.Prompt = ""

	m := &Model{
		ctx:     ctx,
		store:   s,
		theme:   theme.Default(),
		input:   ti,
		watchCh: opts.Watch,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForWatch()
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case postedMsg:
		if msg.run != nil {
			msg.run()
		}
		m.refresh()
		if err := m.store.PersistErr(); err != nil {
			m.setError(fmt.Errorf("not saved: %w", err))
		} else if msg.label != "" {
			m.setStatus(msg.label)
		}
	case watchEventMsg:
		if err := m.store.Reload(m.ctx); err != nil {
			m.setError(fmt.Errorf("reload: %w", err))
		}
		m.refresh()
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	if m.mode != modeNormal {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.snap.Rows) - 1
		m.clampCursor()
	case "space", " ", "enter", "x":
		if id, ok := m.selectedID(); ok {
			m.apply(app.Command{Kind: app.KindToggle, ID: id})
		}
	case "a", "n":
		return m.startInput(modeAdd, "")
	case "e":
		if row, ok := m.selectedRow(); ok {
			m.renaming = row.ID
			return m.startInput(modeRename, row.Name)
		}
	case "d", "delete":
		if id, ok := m.selectedID(); ok {
			m.apply(app.Command{Kind: app.KindDelete, ID: id})
		}
	case "r":
		if m.apply(app.Command{Kind: app.KindReset}) {
			m.setStatus("Reset for a new day")
		}
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.stopInput()
		return nil
	case "enter":
		value := m.input.Value()
		switch m.mode {
		case modeAdd:
			m.apply(app.Command{Kind: app.KindAdd, Name: value})
			if _, ok := habit.CleanName(value); ok {
				m.cursor = len(m.snap.Rows) - 1
			}
		case modeRename:
			m.apply(app.Command{Kind: app.KindRename, ID: m.renaming, Name: value})
		}
		m.stopInput()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) startInput(md mode, value string) tea.Cmd {
	m.mode = md
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = modeNormal
	m.renaming = 0
	m.input.Reset()
	m.input.Blur()
}

// apply runs cmd and re-projects the list. It reports whether the command
// took effect and reached disk. Unknown ids are ignored: the row was removed
// by another process between render and key press.
func (m *Model) apply(cmd app.Command) bool {
	_, err := app.Apply(m.store, cmd)
	m.refresh()
	switch {
	case errors.Is(err, app.ErrNotFound):
		m.setStatus("That habit no longer exists")
		return false
	case err != nil:
		m.setError(err)
		return false
	}
	if perr := m.store.PersistErr(); perr != nil {
		m.setError(fmt.Errorf("not saved: %w", perr))
		return false
	}
	if m.statusErr {
		m.setStatus("")
	}
	return true
}

func (m *Model) refresh() {
	m.snap = m.store.Snapshot()
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Rows) {
		m.cursor = len(m.snap.Rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedRow() (view.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Rows) {
		return view.Row{}, false
	}
	return m.snap.Rows[m.cursor], true
}

func (m *Model) selectedID() (habit.ID, bool) {
	row, ok := m.selectedRow()
	return row.ID, ok
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// Snapshot returns what the model last rendered from.
func (m *Model) Snapshot() view.Snapshot {
	return m.snap
}

// View renders the list, progress bar, prompt and footer.
func (m *Model) View() string {
	th := m.theme
	sections := []string{th.Title.Render("HabitFlow"), m.renderProgress()}

	if m.snap.Empty() {
		sections = append(sections, th.Empty.Render("No habits yet. Press a to add your first one."))
	} else {
		lines := make([]string, 0, len(m.snap.Rows))
		for i, row := range m.snap.Rows {
			lines = append(lines, m.renderRow(i, row))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	switch m.mode {
	case modeAdd:
		sections = append(sections, th.Footer.Prompt.Render("Add: ")+m.input.View())
	case modeRename:
		sections = append(sections, th.Footer.Prompt.Render("Rename: ")+m.input.View())
	}

	body := th.Frame.Render(strings.Join(sections, "\n\n"))
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m *Model) renderProgress() string {
	th := m.theme
	filled := m.snap.ProgressPercent * barWidth / 100
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(th.ProgressColor(m.snap.ProgressPercent)))
	bar := fill.Render(strings.Repeat(th.BarFilled, filled)) +
		th.BarEmpty.Render(strings.Repeat(th.BarBlank, barWidth-filled))
	return fmt.Sprintf("%s %3d%%", bar, m.snap.ProgressPercent)
}

func (m *Model) renderRow(i int, row view.Row) string {
	th := m.theme.Row
	cursor := "  "
	if i == m.cursor {
		cursor = th.Cursor.Render("> ")
	}

	label := fmt.Sprintf("%-*s", len(habit.Completed)+2, "○ "+string(row.Status))
	status := th.Pending.Render(label)
	name := th.Name
	if row.Status == habit.Completed {
		label = fmt.Sprintf("%-*s", len(habit.Completed)+2, "● "+string(row.Status))
		status = th.Completed.Render(label)
		name = th.Done
	}

	return fmt.Sprintf("%s%s  %s  %s",
		cursor,
		status,
		name.Render(truncate.StringWithTail(row.Name, uint(m.nameWidth()), "…")),
		th.Streak.Render(row.StreakLabel))
}

func (m *Model) nameWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width - 40
	if w < minNameWidth {
		w = minNameWidth
	}
	return w
}

func (m *Model) renderFooter() string {
	th := m.theme.Footer
	help := "a add • e rename • space toggle • d delete • r reset • q quit"
	if m.mode != modeNormal {
		help = "enter save • esc cancel"
	}
	lines := []string{th.Help.Render(help)}
	if m.status != "" {
		if m.statusErr {
			lines = append(lines, th.Error.Render(m.status))
		} else {
			lines = append(lines, th.Status.Render(m.status))
		}
	}
	return strings.Join(lines, "\n")
}
