// Package hook runs the user's session command after each phase.
package hook

import (
	"context"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"
)

// DefaultTimeout bounds how long a session command may run.
const DefaultTimeout = time.Minute

// Shell runs commands without a shell, splitting them with shell quoting
// rules.
type Shell struct {
	Timeout time.Duration
}

// Run executes cmd and waits for it to exit. An empty command is a no-op.
func (s Shell) Run(cmd string) error {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput()
	if err != nil {
		return errRunCmd.Fmt(args[0], string(out)).Wrap(err)
	}

	return nil
}
