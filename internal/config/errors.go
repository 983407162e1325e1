package config

import "github.com/ayoisaiah/pomobar/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errResolvePath = &apperr.Error{
		Message: "unable to resolve pomobar file locations",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "first-run prompt failed",
	}

	errUnknownPhase = &apperr.Error{
		Message: "unknown phase: %s (expected work, short_break or long_break)",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be greater than zero, using %v",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "pomodoros until long break must be at least 1, using %d",
	}

	errInvalidVolume = &apperr.Error{
		Message: "sound volume %v is outside [0, 1], using %v",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q, using %s",
	}
)
