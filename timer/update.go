package timer

import (
	"strings"

	"github.com/ayoisaiah/pomobar/internal/config"
)

// Command is a parsed line of user input.
type Command struct {
	Name string
	Arg  string
}

// ParseCommand splits a line such as "t write report" into a command and its
// argument. An empty line is the toggle command.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Name: "toggle"}
	}

	name, arg, _ := strings.Cut(line, " ")

	return Command{
		Name: strings.ToLower(name),
		Arg:  strings.TrimSpace(arg),
	}
}

// Handle applies a command to the engine. It reports whether the command
// asks to quit.
func (e *Engine) Handle(cmd Command) (quit bool, err error) {
	switch cmd.Name {
	case "toggle", "space":
		e.Toggle()
	case "s", "start":
		e.Start()
	case "p", "pause":
		e.Pause()
	case "r", "resume":
		e.Resume()
	case "k", "skip":
		e.Skip()
	case "x", "reset":
		e.Reset()
	case "stop":
		e.Stop()
	case "t", "task":
		e.SetTask(cmd.Arg)
	case "q", "quit", "exit":
		return true, nil
	default:
		p, perr := config.ParsePhase(cmd.Name)
		if perr != nil {
			return false, errUnknownCommand.Fmt(cmd.Name)
		}

		e.SetPhase(p)
	}

	return false, nil
}
