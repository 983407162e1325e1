package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/timer"
)

const eventBuffer = 16

var (
	baseStyle = lipgloss.NewStyle().Padding(1, 2)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

type (
	// eventMsg carries an engine event into the update loop.
	eventMsg timer.Event

	// closedMsg is sent once the engine has closed its event channel.
	closedMsg struct{}
)

// model is the terminal front end of the engine.
type model struct {
	engine  *timer.Engine
	events  <-chan timer.Event
	keys    keyMap
	help    help.Model
	task    textinput.Model
	snap    timer.Snapshot
	notice  string
	err     error
	editing bool
}

func newModel(engine *timer.Engine) model {
	ti := textinput.New()
	ti.Prompt = "task: "
	ti.Placeholder = "what are you working on?"
	ti.CharLimit = 120

	return model{
		engine: engine,
		events: engine.Subscribe(eventBuffer),
		keys:   defaultKeyMap(),
		help:   help.New(),
		task:   ti,
		snap:   engine.Snapshot(),
	}
}

// waitForEvent blocks until the engine publishes the next event.
func waitForEvent(ch <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return closedMsg{}
		}

		return eventMsg(ev)
	}
}

func (m model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.snap = msg.Snapshot

		switch msg.Type {
		case timer.EventPhaseComplete:
			m.notice = completionNotice(msg.Snapshot)
		case timer.EventTaskRecorded:
			m.notice = fmt.Sprintf("Recorded %q", msg.Snapshot.Task)
		case timer.EventStateChange:
			if msg.Snapshot.State == timer.Running {
				m.notice = ""
			}
		}

		return m, waitForEvent(m.events)

	case closedMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateTask(msg)
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Task):
		m.editing = true
		m.task.SetValue(m.snap.Task)

		return m, m.task.Focus()
	}

	for _, c := range m.keys.commands() {
		if !key.Matches(msg, c.binding) {
			continue
		}

		if _, err := m.engine.Handle(timer.Command{Name: c.name}); err != nil {
			m.err = err
		}

		m.snap = m.engine.Snapshot()

		return m, nil
	}

	return m, nil
}

func (m model) updateTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.engine.SetTask(strings.TrimSpace(m.task.Value()))
		m.snap = m.engine.Snapshot()
		m.editing = false
		m.task.Blur()

		return m, nil

	case tea.KeyEsc:
		m.editing = false
		m.task.Blur()

		return m, nil

	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.task, cmd = m.task.Update(msg)

	return m, cmd
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(m.snap.String())

	if m.notice != "" {
		s.WriteString("\n\n" + noticeStyle.Render(m.notice))
	}

	if m.err != nil {
		s.WriteString("\n\n" + errorStyle.Render(m.err.Error()))
	}

	if m.editing {
		s.WriteString("\n\n" + m.task.View())
	}

	s.WriteString("\n\n" + m.help.View(m.keys))

	return baseStyle.Render(s.String())
}

// completionNotice describes a finished phase. The snapshot already points at
// the next phase.
func completionNotice(s timer.Snapshot) string {
	if s.Phase == config.Work {
		return "Break over. Next up: " + s.Phase.Label()
	}

	return fmt.Sprintf(
		"Pomodoro complete (%d today). Next up: %s",
		s.TodayCompleted,
		s.Phase.Label(),
	)
}

// run drives the engine from a bubbletea program until the user quits or ctx
// is cancelled.
func run(
	ctx context.Context,
	engine *timer.Engine,
	in io.Reader,
	out io.Writer,
) error {
	p := tea.NewProgram(
		newModel(engine),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}

	return err
}
