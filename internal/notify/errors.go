package notify

import "github.com/ayoisaiah/pomobar/internal/apperr"

var errNotify = &apperr.Error{
	Message: "unable to display notification",
}
