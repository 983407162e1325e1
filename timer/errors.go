package timer

import "github.com/ayoisaiah/pomobar/internal/apperr"

var (
	errSaveStats = &apperr.Error{
		Message: "unable to save today's statistics",
	}

	errSaveTask = &apperr.Error{
		Message: "unable to save task history",
	}

	errUnknownCommand = &apperr.Error{
		Message: "unknown command %q: try start, pause, resume, skip, reset, work, sb, lb, task or quit",
	}
)
