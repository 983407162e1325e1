package hook

import "github.com/ayoisaiah/pomobar/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errRunCmd = &apperr.Error{
		Message: "session command %s failed: %s",
	}
)
