package app

import "github.com/ayoisaiah/pomobar/internal/apperr"

var (
	errParseDate = &apperr.Error{
		Message: "could not understand the date %q",
	}
	errConflictingFormats = &apperr.Error{
		Message: "--json and --yaml cannot be used together",
	}
	errEditor = &apperr.Error{
		Message: "could not open the config file in %s",
	}
	errOpenStore = &apperr.Error{
		Message: "failed to open the statistics database",
	}
)
