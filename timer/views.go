package timer

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/ui"
)

const progressWidth = 20

// String renders the snapshot as a single status line.
func (s Snapshot) String() string {
	var b strings.Builder

	b.WriteString(phaseColor(s.Phase)(s.Phase.Label()))
	b.WriteString(" · ")
	b.WriteString(ui.Highlight(s.Clock()))
	b.WriteString(" ")
	b.WriteString(progressBar(s.Progress(), progressWidth))
	b.WriteString(" ")
	b.WriteString(s.State.Display())

	fmt.Fprintf(&b, " (%d done today)", s.TodayCompleted)

	if s.Task != "" {
		b.WriteString(" · ")
		b.WriteString(s.Task)
	}

	return b.String()
}

func phaseColor(p config.Phase) func(a any) string {
	switch p {
	case config.ShortBreak:
		return ui.Cyan
	case config.LongBreak:
		return ui.Magenta
	default:
		return ui.Green
	}
}

func progressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}

	if filled < 0 {
		filled = 0
	}

	return "[" + strings.Repeat("█", filled) +
		pterm.Gray(strings.Repeat("░", width-filled)) + "]"
}
