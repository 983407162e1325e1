package store

import "github.com/ayoisaiah/pomobar/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is pomobar already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open database at %s",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q",
	}

	errCorruptRecord = &apperr.Error{
		Message: "corrupt %s record",
	}
)
