package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

const (
	workDoneTitle  = "Pomodoro Complete! 🎉"
	workDoneBody   = "Time for a break!"
	breakDoneTitle = "Break Over! 💪"
	breakDoneBody  = "Ready to focus again?"
)

// completeLocked ends the current phase and moves on to the next one. Store
// failures are logged and never hold up the transition.
func (e *Engine) completeLocked() {
	e.cancelAutoStartLocked()

	now := e.clock.Now()
	finished := e.phase
	total := e.total
	wasWork := finished == config.Work

	if wasWork {
		e.workDone++
		e.recordFocusLocked(now, total)

		if e.task != "" {
			e.recordTaskLocked(now, total)
		}
	} else {
		e.breakDone++
	}

	next := e.nextPhase(finished)

	e.state = Complete
	e.phase = next
	e.remaining = e.opts.Duration(next)
	e.total = e.remaining

	e.stopSoundLocked()

	e.logger.Info(
		"phase complete",
		slog.String("phase", string(finished)),
		slog.String("next", string(next)),
		slog.Int("completed_work_phases", e.workDone),
	)

	e.publishLocked(EventPhaseComplete)

	e.notifyLocked(wasWork)

	if wasWork && e.opts.Settings.AutoStartBreaks {
		e.scheduleAutoStartLocked()
	}

	e.runSessionCmdLocked()
}

// recordFocusLocked adds one pomodoro and its whole minutes to today's
// record. A record from another day is replaced.
func (e *Engine) recordFocusLocked(now time.Time, total time.Duration) {
	rec, found, err := e.db.LoadToday(now)
	if err != nil {
		e.logger.Error("loading today's statistics failed", slog.Any("error", err))
	}

	if !found {
		rec = models.DailyStats{Date: timeutil.RoundToStart(now)}
	}

	rec.Completed++
	rec.FocusMinutes += int(total / time.Minute)

	if err := e.db.SaveDay(rec); err != nil {
		e.logger.Error(errSaveStats.Error(), slog.Any("error", err))
	}

	e.today = rec
}

func (e *Engine) recordTaskLocked(now time.Time, total time.Duration) {
	rec := models.NewTaskRecord(e.task, config.Work, total, now)

	if err := e.db.AppendTask(rec); err != nil {
		e.logger.Error(errSaveTask.Error(), slog.Any("error", err))
		return
	}

	e.publishLocked(EventTaskRecorded)
}

func (e *Engine) notifyLocked(wasWork bool) {
	if !e.opts.Notifications.Enabled {
		return
	}

	title, body := breakDoneTitle, breakDoneBody
	if wasWork {
		title, body = workDoneTitle, workDoneBody
	}

	n := e.notifier
	l := e.logger

	e.async(func() {
		if err := n.Notify(title, body); err != nil {
			l.Warn("notification skipped", slog.Any("error", err))
		}
	})
}

func (e *Engine) runSessionCmdLocked() {
	cmd := e.opts.Settings.Cmd
	if cmd == "" {
		return
	}

	h := e.hook
	l := e.logger

	e.async(func() {
		if err := h.Run(cmd); err != nil {
			l.Error("session command failed", slog.Any("error", err))
		}
	})
}
