// Package sound resolves and plays the ambient sound of each timer phase.
package sound

import (
	"strings"

	"github.com/ayoisaiah/pomobar/internal/config"
)

// Choice names an ambient sound.
type Choice string

const (
	Ticking Choice = "Ticking"
	Rain    Choice = "Rain"
	Forest  Choice = "Forest"
	Ocean   Choice = "Ocean"
	Cafe    Choice = "Cafe"
)

// Choices lists every known sound in menu order.
var Choices = []Choice{Ticking, Rain, Forest, Ocean, Cafe}

var defaults = map[config.Phase]Choice{
	config.Work:       Ticking,
	config.ShortBreak: Forest,
	config.LongBreak:  Ocean,
}

// ParseChoice matches s against the known choices ignoring case.
func ParseChoice(s string) (Choice, bool) {
	s = strings.TrimSpace(s)

	for _, c := range Choices {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}

	return "", false
}

// Default returns the fallback sound for a phase.
func Default(p config.Phase) Choice {
	if c, ok := defaults[p]; ok {
		return c
	}

	return Ticking
}

// Resolve returns the configured sound of a phase, or its default when the
// preference is empty or unknown.
func Resolve(cfg *config.Config, p config.Phase) Choice {
	if c, ok := ParseChoice(cfg.Session(p).Sound); ok {
		return c
	}

	return Default(p)
}

// FileStem is the base name the sound's asset is stored under.
func (c Choice) FileStem() string {
	return strings.ToLower(string(c))
}
