package timer

import (
	"time"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

// State is the lifecycle state of the current phase.
type State string

const (
	Idle     State = "idle"
	Running  State = "running"
	Paused   State = "paused"
	Complete State = "complete"
)

// Display returns the label shown next to the countdown.
func (s State) Display() string {
	switch s {
	case Idle:
		return "Ready"
	case Running:
		return "Focus"
	case Paused:
		return "Paused"
	case Complete:
		return "Complete"
	}

	return string(s)
}

// Snapshot is a consistent copy of the engine's session.
type Snapshot struct {
	Phase               config.Phase  `json:"phase"`
	State               State         `json:"state"`
	Task                string        `json:"task,omitempty"`
	Remaining           time.Duration `json:"remaining"`
	Total               time.Duration `json:"total"`
	CompletedWorkPhases int           `json:"completed_work_phases"`
	CompletedBreaks     int           `json:"completed_breaks"`
	TodayCompleted      int           `json:"today_completed"`
	TodayFocusMinutes   int           `json:"today_focus_minutes"`
}

// Progress returns the elapsed fraction of the phase in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}

	return 1 - float64(s.Remaining)/float64(s.Total)
}

// Clock returns the remaining time as "MM:SS".
func (s Snapshot) Clock() string {
	return timeutil.FormatClock(s.Remaining)
}
