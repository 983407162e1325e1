// Package timer operates the pomodoro state machine: the countdown, the
// phase-transition policy and the side effects of completing a phase
package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/pomobar/internal/clock"
	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/logger"
	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/sound"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

const (
	tickInterval   = time.Second
	autoStartDelay = 2 * time.Second
)

type (
	// AudioPlayer loops an ambient sound.
	AudioPlayer interface {
		Play(c sound.Choice, volume float64)
		Stop()
		SetVolume(v float64)
	}

	// Notifier surfaces an alert to the user.
	Notifier interface {
		Notify(title, body string) error
	}

	// Hook runs the user's session command.
	Hook interface {
		Run(cmd string) error
	}

	// Store is the subset of the statistics store the engine writes to.
	Store interface {
		LoadToday(now time.Time) (models.DailyStats, bool, error)
		SaveDay(rec models.DailyStats) error
		AppendTask(rec models.TaskRecord) error
	}

	// Option configures an Engine.
	Option func(*Engine)
)

// Engine is the pomodoro timer. All methods are safe for concurrent use.
type Engine struct {
	clock     clock.Clock
	audio     AudioPlayer
	notifier  Notifier
	hook      Hook
	db        Store
	logger    *slog.Logger
	opts      *config.Config
	serial    func(func())
	async     func(func())
	tick      clock.Handle
	autoStart clock.Handle
	soundStop clock.Handle
	queue     *queue
	phase     config.Phase
	state     State
	task      string
	subs      []chan Event
	today     models.DailyStats
	remaining time.Duration
	total     time.Duration
	gen       uint64
	workDone  int
	breakDone int
	mu        sync.Mutex
	closed    bool
}

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithAudio sets the ambient sound player.
func WithAudio(a AudioPlayer) Option {
	return func(e *Engine) {
		e.audio = a
	}
}

// WithNotifier sets the notifier.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithHook sets the session command runner.
func WithHook(h Hook) Option {
	return func(e *Engine) {
		e.hook = h
	}
}

// WithStore sets the statistics store.
func WithStore(db Store) Option {
	return func(e *Engine) {
		e.db = db
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithDispatcher runs every side effect through d instead of the default
// queue and goroutines.
func WithDispatcher(d func(func())) Option {
	return func(e *Engine) {
		e.serial = d
		e.async = d
	}
}

type nopAudio struct{}

func (nopAudio) Play(sound.Choice, float64) {}
func (nopAudio) Stop()                      {}
func (nopAudio) SetVolume(float64)          {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) error { return nil }

type nopHook struct{}

func (nopHook) Run(string) error { return nil }

type nopStore struct{}

func (nopStore) LoadToday(time.Time) (models.DailyStats, bool, error) {
	return models.DailyStats{}, false, nil
}

func (nopStore) SaveDay(models.DailyStats) error { return nil }

func (nopStore) AppendTask(models.TaskRecord) error { return nil }

// New creates an idle engine on the work phase. cfg is normalized and owned
// by the engine from here on.
func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		opts:     cfg,
		clock:    clock.New(),
		audio:    nopAudio{},
		notifier: nopNotifier{},
		hook:     nopHook{},
		db:       nopStore{},
		logger:   logger.Discard(),
		async:    func(fn func()) { go fn() },
		phase:    config.Work,
		state:    Idle,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.serial == nil {
		e.queue = newQueue()
		e.serial = e.queue.push
	}

	for _, err := range e.opts.Normalize() {
		e.logger.Warn("invalid setting corrected", slog.Any("error", err))
	}

	e.remaining = e.opts.Duration(e.phase)
	e.total = e.remaining

	e.loadToday()

	return e
}

func (e *Engine) loadToday() {
	now := e.clock.Now()

	rec, found, err := e.db.LoadToday(now)
	if err != nil {
		e.logger.Error("loading today's statistics failed", slog.Any("error", err))
	}

	if !found {
		rec = models.DailyStats{Date: timeutil.RoundToStart(now)}
	}

	e.today = rec
}

// Start begins the countdown from Idle or Complete. From Paused it resumes.
// Starting a running timer does nothing.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.startLocked()
}

func (e *Engine) startLocked() {
	if e.closed {
		return
	}

	switch e.state {
	case Running:
		return
	case Paused:
		e.resumeLocked()
		return
	}

	e.cancelAutoStartLocked()
	e.cancelSoundStopLocked()

	e.state = Running
	e.total = e.remaining

	e.playSoundLocked()
	e.startTickLocked()

	e.logger.Info(
		"phase started",
		slog.String("phase", string(e.phase)),
		slog.Duration("duration", e.total),
	)

	e.publishLocked(EventStateChange)
}

// Pause stops the countdown of a running timer.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pauseLocked()
}

func (e *Engine) pauseLocked() {
	if e.closed || e.state != Running {
		return
	}

	e.stopTickLocked()
	e.state = Paused
	e.stopSoundLocked()

	e.publishLocked(EventStateChange)
}

// Resume continues a paused countdown. The phase total is kept.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resumeLocked()
}

func (e *Engine) resumeLocked() {
	if e.closed || e.state != Paused {
		return
	}

	e.state = Running

	e.playSoundLocked()
	e.startTickLocked()

	e.publishLocked(EventStateChange)
}

// Stop abandons the current phase without recording it and rewinds the
// countdown.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rewindLocked()
}

// Reset is an alias of Stop.
func (e *Engine) Reset() {
	e.Stop()
}

func (e *Engine) rewindLocked() {
	if e.closed {
		return
	}

	e.stopTickLocked()
	e.cancelAutoStartLocked()
	e.cancelSoundStopLocked()

	e.state = Idle
	e.remaining = e.opts.Duration(e.phase)
	e.total = e.remaining

	e.stopSoundLocked()

	e.publishLocked(EventStateChange)
}

// Skip completes the current phase immediately.
func (e *Engine) Skip() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.stopTickLocked()
	e.completeLocked()
}

// SetPhase switches to phase p and leaves the timer idle. The sound is
// stopped on the next scheduler turn.
func (e *Engine) SetPhase(p config.Phase) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !p.Valid() {
		return
	}

	e.stopTickLocked()
	e.cancelAutoStartLocked()

	e.phase = p
	e.state = Idle
	e.remaining = e.opts.Duration(p)
	e.total = e.remaining

	e.deferSoundStopLocked()

	e.publishLocked(EventStateChange)
}

// SetTask labels the current work. An empty label disables task recording.
func (e *Engine) SetTask(label string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.task = label
}

// Toggle starts, pauses or resumes depending on the state.
func (e *Engine) Toggle() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Idle, Complete:
		e.startLocked()
	case Running:
		e.pauseLocked()
	case Paused:
		e.resumeLocked()
	}
}

// UpdateSettings replaces the configuration. The remaining time of an idle
// timer follows the new duration; a phase in progress keeps its length.
func (e *Engine) UpdateSettings(cfg *config.Config) {
	for _, err := range cfg.Normalize() {
		e.logger.Warn("invalid setting corrected", slog.Any("error", err))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	prev := e.opts
	e.opts = cfg

	if prev.Settings.AutoStartBreaks && !cfg.Settings.AutoStartBreaks {
		e.cancelAutoStartLocked()
	}

	if e.state == Idle {
		e.remaining = e.opts.Duration(e.phase)
		e.total = e.remaining
	}

	if prev.Sound.Volume != cfg.Sound.Volume {
		v := cfg.Sound.Volume
		e.serial(func() {
			e.audio.SetVolume(v)
		})
	}

	if e.state == Running {
		switch {
		case prev.Sound.Enabled && !cfg.Sound.Enabled:
			e.stopSoundLocked()
		case !prev.Sound.Enabled && cfg.Sound.Enabled:
			e.playSoundLocked()
		}
	}

	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("settings updated", logger.Dump("config", cfg))
	}

	e.publishLocked(EventStateChange)
}

// Settings returns a copy of the configuration in use.
func (e *Engine) Settings() *config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts.Clone()
}

// Snapshot returns a copy of the session.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	if !e.today.IsSameDay(e.clock.Now()) {
		e.loadToday()
	}

	return Snapshot{
		Phase:               e.phase,
		State:               e.state,
		Task:                e.task,
		Remaining:           e.remaining,
		Total:               e.total,
		CompletedWorkPhases: e.workDone,
		CompletedBreaks:     e.breakDone,
		TodayCompleted:      e.today.Completed,
		TodayFocusMinutes:   e.today.FocusMinutes,
	}
}

// Close cancels every scheduled callback, silences the sound and closes the
// subscriber channels. The engine ignores all calls afterwards.
func (e *Engine) Close() {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return
	}

	e.stopTickLocked()
	e.cancelAutoStartLocked()
	e.cancelSoundStopLocked()
	e.stopSoundLocked()

	e.closed = true

	for _, ch := range e.subs {
		close(ch)
	}

	e.subs = nil

	q := e.queue

	e.mu.Unlock()

	if q != nil {
		q.close()
	}
}

func (e *Engine) startTickLocked() {
	e.gen++
	gen := e.gen

	e.tick = e.clock.Every(tickInterval, func() {
		e.onTick(gen)
	})
}

// stopTickLocked cancels the tick loop. Bumping the generation discards a
// tick that already fired but is still waiting for the lock.
func (e *Engine) stopTickLocked() {
	if e.tick != nil {
		e.tick.Stop()
		e.tick = nil
	}

	e.gen++
}

func (e *Engine) onTick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || gen != e.gen || e.state != Running {
		return
	}

	if e.remaining > 0 {
		e.remaining -= tickInterval
		if e.remaining < 0 {
			e.remaining = 0
		}

		e.publishLocked(EventTick)

		return
	}

	e.stopTickLocked()
	e.completeLocked()
}

func (e *Engine) cancelAutoStartLocked() {
	if e.autoStart != nil {
		e.autoStart.Stop()
		e.autoStart = nil
	}
}

func (e *Engine) scheduleAutoStartLocked() {
	e.cancelAutoStartLocked()

	var h clock.Handle

	h = e.clock.After(autoStartDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.autoStart != h || e.state != Complete {
			return
		}

		e.autoStart = nil
		e.startLocked()
	})

	e.autoStart = h
}

// nextPhase retrieves the phase that follows a completed one.
func (e *Engine) nextPhase(current config.Phase) config.Phase {
	switch current {
	case config.Work:
		if e.workDone%e.opts.Settings.PomodorosUntilLongBreak == 0 {
			return config.LongBreak
		}

		return config.ShortBreak
	default:
		return config.Work
	}
}
