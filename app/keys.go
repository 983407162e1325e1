package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle     key.Binding
	Start      key.Binding
	Pause      key.Binding
	Resume     key.Binding
	Skip       key.Binding
	Reset      key.Binding
	Work       key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	Task       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Skip, k.Reset, k.Task, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Start, k.Pause, k.Resume, k.Skip, k.Reset},
		{k.Work, k.ShortBreak, k.LongBreak, k.Task, k.Quit},
	}
}

// commands maps each binding to the engine command it triggers.
func (k keyMap) commands() []struct {
	binding key.Binding
	name    string
} {
	return []struct {
		binding key.Binding
		name    string
	}{
		{k.Toggle, "toggle"},
		{k.Start, "start"},
		{k.Pause, "pause"},
		{k.Resume, "resume"},
		{k.Skip, "skip"},
		{k.Reset, "reset"},
		{k.Work, "work"},
		{k.ShortBreak, "sb"},
		{k.LongBreak, "lb"},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resume"),
		),
		Skip: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "skip"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset"),
		),
		Work: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "focus"),
		),
		ShortBreak: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "short break"),
		),
		LongBreak: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "long break"),
		),
		Task: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "label task"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
