// Package models holds the records pomobar persists.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

// MaxTaskHistory is the number of task records kept. Older records are
// evicted first.
const MaxTaskHistory = 100

// DailyStats is the tally of completed focus phases for one calendar day.
type DailyStats struct {
	// Date is the start of the local calendar day
	Date         time.Time `json:"date"`
	Completed    int       `json:"completed"`
	FocusMinutes int       `json:"focus_minutes"`
}

// TaskRecord is written whenever a labelled focus phase completes.
type TaskRecord struct {
	Timestamp time.Time     `json:"timestamp"`
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Phase     config.Phase  `json:"phase"`
	Duration  time.Duration `json:"duration"`
}

// NewTaskRecord creates a record with a fresh identifier.
func NewTaskRecord(
	name string,
	phase config.Phase,
	duration time.Duration,
	at time.Time,
) TaskRecord {
	return TaskRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Phase:     phase,
		Duration:  duration,
		Timestamp: at,
	}
}

// PrependTask returns a new slice with rec at the front and at most
// MaxTaskHistory entries.
func PrependTask(history []TaskRecord, rec TaskRecord) []TaskRecord {
	n := len(history) + 1
	if n > MaxTaskHistory {
		n = MaxTaskHistory
	}

	out := make([]TaskRecord, 0, n)
	out = append(out, rec)
	out = append(out, history[:n-1]...)

	return out
}

// IsSameDay reports whether d describes the calendar day of t in t's
// location.
func (d DailyStats) IsSameDay(t time.Time) bool {
	return timeutil.SameDay(t, d.Date)
}
