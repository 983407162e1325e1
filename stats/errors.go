package stats

import "github.com/ayoisaiah/pomobar/internal/apperr"

var errUnknownFormat = &apperr.Error{
	Message: "unknown output format %q: use text, json or yaml",
}
