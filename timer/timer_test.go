package timer

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/testutil"
)

var startTime = time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local)

type memStore struct {
	err   error
	slot  *models.DailyStats
	tasks []models.TaskRecord
	saves int
	mu    sync.Mutex
}

func (m *memStore) LoadToday(now time.Time) (models.DailyStats, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return models.DailyStats{}, false, m.err
	}

	if m.slot == nil || !m.slot.IsSameDay(now) {
		return models.DailyStats{}, false, nil
	}

	return *m.slot, true, nil
}

func (m *memStore) SaveDay(rec models.DailyStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.saves++
	m.slot = &rec

	return nil
}

func (m *memStore) AppendTask(rec models.TaskRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.tasks = models.PrependTask(m.tasks, rec)

	return nil
}

type fixture struct {
	engine   *Engine
	clock    *testutil.FakeClock
	audio    *testutil.AudioRecorder
	notifier *testutil.NotifyRecorder
	hook     *testutil.HookRecorder
	store    *memStore
}

func testConfig() *config.Config {
	return &config.Config{
		Work:       config.SessionConfig{Duration: 25 * time.Minute},
		ShortBreak: config.SessionConfig{Duration: 5 * time.Minute},
		LongBreak:  config.SessionConfig{Duration: 15 * time.Minute},
		Settings: config.SettingsConfig{
			PomodorosUntilLongBreak: 4,
		},
		Sound: config.SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Notifications: config.NotificationConfig{Enabled: true},
	}
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	f := &fixture{
		clock:    testutil.NewFakeClock(startTime),
		audio:    &testutil.AudioRecorder{},
		notifier: &testutil.NotifyRecorder{},
		hook:     &testutil.HookRecorder{},
		store:    &memStore{},
	}

	f.engine = New(
		cfg,
		WithClock(f.clock),
		WithAudio(f.audio),
		WithNotifier(f.notifier),
		WithHook(f.hook),
		WithStore(f.store),
		WithDispatcher(testutil.Inline),
	)

	t.Cleanup(f.engine.Close)

	return f
}

func TestNewEngineIsIdleOnWork(t *testing.T) {
	f := newFixture(t)

	s := f.engine.Snapshot()

	assert.Equal(t, config.Work, s.Phase)
	assert.Equal(t, Idle, s.State)
	assert.Equal(t, 25*time.Minute, s.Remaining)
	assert.Equal(t, 25*time.Minute, s.Total)
	assert.Equal(t, "25:00", s.Clock())
	assert.Zero(t, s.Progress())
}

func TestNewEngineNormalizesSettings(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Work.Duration = 0
		c.Settings.PomodorosUntilLongBreak = 0
	})

	assert.Equal(t, config.DefaultWorkDuration, f.engine.Snapshot().Remaining)
	assert.Equal(t, 4, f.engine.Settings().Settings.PomodorosUntilLongBreak)
}

func TestSetPhaseFromAnyState(t *testing.T) {
	setups := map[string]func(f *fixture){
		"idle": func(_ *fixture) {},
		"running": func(f *fixture) {
			f.engine.Start()
			f.clock.Advance(3 * time.Second)
		},
		"paused": func(f *fixture) {
			f.engine.Start()
			f.clock.Advance(3 * time.Second)
			f.engine.Pause()
		},
		"complete": func(f *fixture) {
			f.engine.Start()
			f.engine.Skip()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			setup(f)

			f.engine.SetPhase(config.LongBreak)

			s := f.engine.Snapshot()
			assert.Equal(t, Idle, s.State)
			assert.Equal(t, config.LongBreak, s.Phase)
			assert.Equal(t, 15*time.Minute, s.Remaining)
			assert.Equal(t, 15*time.Minute, s.Total)

			f.clock.Advance(time.Minute)
			assert.Equal(t, 15*time.Minute, f.engine.Snapshot().Remaining, "no tick loop")
		})
	}
}

func TestSetPhaseDefersSoundStop(t *testing.T) {
	f := newFixture(t)

	f.engine.Start()
	f.engine.SetPhase(config.ShortBreak)

	assert.Equal(t, "play:Ticking", f.audio.Last())

	f.clock.Advance(0)
	assert.Equal(t, "stop", f.audio.Last())
}

func TestStartCancelsDeferredSoundStop(t *testing.T) {
	f := newFixture(t)

	f.engine.SetPhase(config.ShortBreak)
	f.engine.Start()
	f.clock.Advance(0)

	assert.Equal(t, []string{"play:Forest"}, f.audio.Snapshot())
}

func TestStartTwiceIsNoop(t *testing.T) {
	f := newFixture(t)

	f.engine.Start()
	first := f.engine.Snapshot()

	f.engine.Start()

	assert.Equal(t, first, f.engine.Snapshot())
	assert.Equal(t, 1, f.clock.Pending(), "a single tick loop")
	assert.Equal(t, []string{"play:Ticking"}, f.audio.Snapshot())
}

func TestTicksDecreaseRemaining(t *testing.T) {
	f := newFixture(t)

	f.engine.Start()
	f.clock.Advance(10 * time.Second)

	s := f.engine.Snapshot()
	assert.Equal(t, 25*time.Minute-10*time.Second, s.Remaining)
	assert.Equal(t, Running, s.State)
	assert.Equal(t, "24:50", s.Clock())
	assert.InDelta(t, 10.0/1500.0, s.Progress(), 1e-9)
}

func TestTickAtZeroCompletes(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Work.Duration = 3 * time.Second
	})

	f.engine.Start()
	f.clock.Advance(3 * time.Second)

	s := f.engine.Snapshot()
	assert.Equal(t, time.Duration(0), s.Remaining)
	assert.Equal(t, Running, s.State)
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)

	f.clock.Advance(time.Second)

	s = f.engine.Snapshot()
	assert.Equal(t, Complete, s.State)
	assert.Equal(t, config.ShortBreak, s.Phase)
	assert.Equal(t, 5*time.Minute, s.Remaining)
	assert.Equal(t, 0, f.clock.Pending())
}

func TestPhaseTransitions(t *testing.T) {
	testCases := []struct {
		name     string
		interval int
		want     []config.Phase
	}{
		{
			name:     "interval 4",
			interval: 4,
			want: []config.Phase{
				config.ShortBreak, config.Work,
				config.ShortBreak, config.Work,
				config.ShortBreak, config.Work,
				config.LongBreak, config.Work,
				config.ShortBreak,
			},
		},
		{
			name:     "interval 1",
			interval: 1,
			want: []config.Phase{
				config.LongBreak, config.Work, config.LongBreak,
			},
		},
		{
			name:     "interval 2",
			interval: 2,
			want: []config.Phase{
				config.ShortBreak, config.Work, config.LongBreak, config.Work,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, func(c *config.Config) {
				c.Settings.PomodorosUntilLongBreak = tc.interval
			})

			var got []config.Phase

			for range tc.want {
				f.engine.Start()
				f.engine.Skip()
				got = append(got, f.engine.Snapshot().Phase)
			}

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFourWorkPhasesLeadToLongBreak(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Work.Duration = 2 * time.Second
		c.ShortBreak.Duration = 2 * time.Second
	})

	for range 4 {
		f.engine.Start()
		f.clock.Advance(3 * time.Second)

		if f.engine.Snapshot().Phase == config.ShortBreak {
			f.engine.Start()
			f.clock.Advance(3 * time.Second)
		}
	}

	s := f.engine.Snapshot()
	assert.Equal(t, config.LongBreak, s.Phase)
	assert.Equal(t, Complete, s.State)
	assert.Equal(t, 4, s.CompletedWorkPhases)
	assert.Equal(t, 3, s.CompletedBreaks)
}

func TestCompletionRecordsStatsAndTask(t *testing.T) {
	f := newFixture(t)

	f.engine.SetTask("write report")
	f.engine.Start()
	f.clock.Advance(time.Minute)

	events := f.engine.Subscribe(16)

	f.engine.Skip()

	require.NotNil(t, f.store.slot)
	assert.Equal(t, 1, f.store.slot.Completed)
	assert.Equal(t, 25, f.store.slot.FocusMinutes)
	assert.True(t, f.store.slot.IsSameDay(startTime))

	require.Len(t, f.store.tasks, 1)
	rec := f.store.tasks[0]
	assert.Equal(t, "write report", rec.Name)
	assert.Equal(t, 25*time.Minute, rec.Duration)
	assert.Equal(t, config.Work, rec.Phase)
	assert.NotEmpty(t, rec.ID)
	assert.True(t, rec.Timestamp.Equal(startTime.Add(time.Minute)))

	s := f.engine.Snapshot()
	assert.Equal(t, 1, s.TodayCompleted)
	assert.Equal(t, 25, s.TodayFocusMinutes)

	assert.Equal(t, []testutil.Notification{
		{Title: "Pomodoro Complete! 🎉", Body: "Time for a break!"},
	}, f.notifier.Snapshot())

	var types []EventType

	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}

	assert.Contains(t, types, EventPhaseComplete)
	assert.Contains(t, types, EventTaskRecorded)
}

func TestBreakCompletionRecordsNothing(t *testing.T) {
	f := newFixture(t)

	f.engine.SetTask("write report")
	f.engine.SetPhase(config.ShortBreak)
	f.engine.Start()
	f.engine.Skip()

	assert.Nil(t, f.store.slot)
	assert.Empty(t, f.store.tasks)

	s := f.engine.Snapshot()
	assert.Equal(t, config.Work, s.Phase)
	assert.Equal(t, 1, s.CompletedBreaks)
	assert.Equal(t, 0, s.CompletedWorkPhases)

	assert.Equal(t, []testutil.Notification{
		{Title: "Break Over! 💪", Body: "Ready to focus again?"},
	}, f.notifier.Snapshot())
}

func TestFocusMinutesAreFloored(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Work.Duration = 90 * time.Second
	})

	f.engine.Start()
	f.engine.Skip()

	require.NotNil(t, f.store.slot)
	assert.Equal(t, 1, f.store.slot.FocusMinutes)
}

func TestCompletionStartsNewDay(t *testing.T) {
	f := newFixture(t)

	yesterday := models.DailyStats{
		Date:         startTime.AddDate(0, 0, -1),
		Completed:    7,
		FocusMinutes: 175,
	}
	f.store.slot = &yesterday

	f.engine.Start()
	f.engine.Skip()

	assert.Equal(t, 1, f.store.slot.Completed)
	assert.True(t, f.store.slot.IsSameDay(startTime))
}

func TestStoreFailureDoesNotBlockProgression(t *testing.T) {
	f := newFixture(t)
	f.store.err = errors.New("disk full")

	f.engine.SetTask("write report")
	f.engine.Start()
	f.engine.Skip()

	s := f.engine.Snapshot()
	assert.Equal(t, Complete, s.State)
	assert.Equal(t, config.ShortBreak, s.Phase)
	assert.Equal(t, 1, s.CompletedWorkPhases)
	assert.Len(t, f.notifier.Snapshot(), 1)
}

func TestNotificationFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.notifier.Err = errors.New("denied")

	f.engine.Start()
	f.engine.Skip()

	assert.Equal(t, Complete, f.engine.Snapshot().State)
}

func TestNotificationsDisabled(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Notifications.Enabled = false
	})

	f.engine.Start()
	f.engine.Skip()

	assert.Empty(t, f.notifier.Snapshot())
}

func TestSessionCommandRunsAfterEachPhase(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.Cmd = "notify-send done"
	})

	f.engine.Start()
	f.engine.Skip()
	f.engine.Start()
	f.engine.Skip()

	assert.Equal(t, []string{"notify-send done", "notify-send done"}, f.hook.Snapshot())
}

func TestAutoStartBreak(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.AutoStartBreaks = true
	})

	f.engine.Start()
	f.engine.Skip()

	f.clock.Advance(time.Second)
	assert.Equal(t, Complete, f.engine.Snapshot().State)

	f.clock.Advance(time.Second)

	s := f.engine.Snapshot()
	assert.Equal(t, Running, s.State)
	assert.Equal(t, config.ShortBreak, s.Phase)
	assert.Equal(t, 5*time.Minute, s.Total)
	assert.Equal(t, "play:Forest", f.audio.Last())
}

func TestAutoStartOnlyAfterWork(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.AutoStartBreaks = true
	})

	f.engine.SetPhase(config.ShortBreak)
	f.engine.Start()
	f.engine.Skip()

	f.clock.Advance(5 * time.Second)

	s := f.engine.Snapshot()
	assert.Equal(t, Complete, s.State)
	assert.Equal(t, config.Work, s.Phase)
}

func TestAutoStartCancelledBySetPhase(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.AutoStartBreaks = true
	})

	f.engine.Start()
	f.engine.Skip()
	f.engine.SetPhase(config.Work)

	f.clock.Advance(0)
	assert.Equal(t, 0, f.clock.Pending(), "no auto-start and no tick loop")

	f.clock.Advance(10 * time.Second)

	s := f.engine.Snapshot()
	assert.Equal(t, Idle, s.State)
	assert.Equal(t, 25*time.Minute, s.Remaining)
}

func TestAutoStartCancelledBySkip(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.AutoStartBreaks = true
	})

	f.engine.Start()
	f.engine.Skip()
	f.engine.Skip()

	f.clock.Advance(3 * time.Second)

	s := f.engine.Snapshot()
	assert.Equal(t, Complete, s.State)
	assert.Equal(t, config.Work, s.Phase)
	assert.Equal(t, 25*time.Minute, s.Remaining)
	assert.Equal(t, 0, f.clock.Pending())
}

func TestAutoStartCancelledWhenDisabled(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.AutoStartBreaks = true
	})

	f.engine.Start()
	f.engine.Skip()

	f.engine.UpdateSettings(testConfig())

	f.clock.Advance(3 * time.Second)

	s := f.engine.Snapshot()
	assert.Equal(t, Complete, s.State)
	assert.Equal(t, config.ShortBreak, s.Phase)
	assert.Equal(t, 0, f.clock.Pending())
}

func TestAutoStartCancelledByManualStart(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.AutoStartBreaks = true
	})

	f.engine.Start()
	f.engine.Skip()
	f.engine.Start()
	f.clock.Advance(time.Second)

	assert.Equal(t, 1, f.clock.Pending(), "only the tick loop")

	f.clock.Advance(5 * time.Second)
	assert.Equal(t, 5*time.Minute-6*time.Second, f.engine.Snapshot().Remaining)
}

func TestPauseAndResume(t *testing.T) {
	f := newFixture(t)

	f.engine.Start()
	f.clock.Advance(5 * time.Second)
	f.engine.Pause()

	assert.Equal(t, 0, f.clock.Pending())

	f.clock.Advance(time.Minute)

	s := f.engine.Snapshot()
	assert.Equal(t, Paused, s.State)
	assert.Equal(t, 25*time.Minute-5*time.Second, s.Remaining)

	f.engine.Resume()
	f.clock.Advance(5 * time.Second)

	s = f.engine.Snapshot()
	assert.Equal(t, Running, s.State)
	assert.Equal(t, 25*time.Minute-10*time.Second, s.Remaining)
	assert.Equal(t, 25*time.Minute, s.Total, "resume keeps the total")

	assert.Equal(t, []string{"play:Ticking", "stop", "play:Ticking"}, f.audio.Snapshot())
}

func TestPauseAndResumeGuards(t *testing.T) {
	f := newFixture(t)

	f.engine.Pause()
	assert.Equal(t, Idle, f.engine.Snapshot().State)

	f.engine.Resume()
	assert.Equal(t, Idle, f.engine.Snapshot().State)

	f.engine.Start()
	f.engine.Resume()
	assert.Equal(t, Running, f.engine.Snapshot().State)
}

func TestStartFromPausedResumes(t *testing.T) {
	f := newFixture(t)

	f.engine.Start()
	f.clock.Advance(5 * time.Second)
	f.engine.Pause()
	f.engine.Start()

	s := f.engine.Snapshot()
	assert.Equal(t, Running, s.State)
	assert.Equal(t, 25*time.Minute, s.Total)
}

func TestStopDiscardsProgress(t *testing.T) {
	for _, op := range []string{"stop", "reset"} {
		t.Run(op, func(t *testing.T) {
			f := newFixture(t)

			f.engine.SetTask("write report")
			f.engine.Start()
			f.clock.Advance(time.Minute)

			if op == "stop" {
				f.engine.Stop()
			} else {
				f.engine.Reset()
			}

			s := f.engine.Snapshot()
			assert.Equal(t, Idle, s.State)
			assert.Equal(t, 25*time.Minute, s.Remaining)
			assert.Equal(t, 25*time.Minute, s.Total)
			assert.Equal(t, 0, f.store.saves)
			assert.Equal(t, 0, f.clock.Pending())
			assert.Equal(t, "stop", f.audio.Last())
		})
	}
}

func TestStaleTickIsDiscarded(t *testing.T) {
	f := newFixture(t)

	f.engine.Start()

	f.engine.mu.Lock()
	stale := f.engine.gen
	f.engine.mu.Unlock()

	f.engine.Pause()
	f.engine.Resume()

	f.engine.onTick(stale)

	assert.Equal(t, 25*time.Minute, f.engine.Snapshot().Remaining)
}

func TestToggle(t *testing.T) {
	f := newFixture(t)

	f.engine.Toggle()
	assert.Equal(t, Running, f.engine.Snapshot().State)

	f.engine.Toggle()
	assert.Equal(t, Paused, f.engine.Snapshot().State)

	f.engine.Toggle()
	assert.Equal(t, Running, f.engine.Snapshot().State)

	f.engine.Skip()
	f.engine.Toggle()

	s := f.engine.Snapshot()
	assert.Equal(t, Running, s.State)
	assert.Equal(t, config.ShortBreak, s.Phase)
}

func TestSoundDisabled(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Sound.Enabled = false
	})

	f.engine.Start()

	assert.NotContains(t, f.audio.Snapshot(), "play:Ticking")
}

func TestConfiguredSound(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Work.Sound = "rain"
	})

	f.engine.Start()

	assert.Equal(t, "play:Rain", f.audio.Last())
	assert.InDelta(t, 0.5, f.audio.Volume, 0)
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture(t)

	cfg := testConfig()
	cfg.Work.Duration = 50 * time.Minute
	cfg.Sound.Volume = 0.2

	f.engine.UpdateSettings(cfg)

	s := f.engine.Snapshot()
	assert.Equal(t, 50*time.Minute, s.Remaining)
	assert.Equal(t, "volume:0.20", f.audio.Last())

	f.engine.Start()
	f.clock.Advance(time.Second)

	running := testConfig()
	running.Work.Duration = 10 * time.Minute
	running.Sound.Volume = 0.2
	running.Sound.Enabled = false

	f.engine.UpdateSettings(running)

	s = f.engine.Snapshot()
	assert.Equal(t, 50*time.Minute-time.Second, s.Remaining, "running phase keeps its length")
	assert.Equal(t, 50*time.Minute, s.Total)
	assert.Equal(t, "stop", f.audio.Last())
}

func TestSettingsReturnsCopy(t *testing.T) {
	f := newFixture(t)

	cfg := f.engine.Settings()
	cfg.Settings.PomodorosUntilLongBreak = 0
	cfg.Work.Duration = time.Minute

	assert.Equal(t, 4, f.engine.Settings().Settings.PomodorosUntilLongBreak)

	f.engine.Start()
	f.engine.Skip()

	s := f.engine.Snapshot()
	assert.Equal(t, config.ShortBreak, s.Phase)
	assert.Equal(t, 25, s.TodayFocusMinutes)
}

func TestSnapshotRollsOverAtMidnight(t *testing.T) {
	f := newFixture(t)

	f.engine.Start()
	f.engine.Skip()
	require.Equal(t, 1, f.engine.Snapshot().TodayCompleted)

	f.clock.Advance(24 * time.Hour)

	s := f.engine.Snapshot()
	assert.Zero(t, s.TodayCompleted)
	assert.Zero(t, s.TodayFocusMinutes)

	f.engine.SetPhase(config.Work)
	f.engine.Start()
	f.engine.Skip()

	assert.Equal(t, 1, f.engine.Snapshot().TodayCompleted)
	assert.Equal(t, 1, f.store.slot.Completed)
}

func TestSubscribeDropsWhenFull(t *testing.T) {
	f := newFixture(t)

	events := f.engine.Subscribe(1)

	f.engine.Start()
	f.clock.Advance(5 * time.Second)

	require.Len(t, events, 1)

	ev := <-events
	assert.Equal(t, EventStateChange, ev.Type)
	assert.Equal(t, Running, ev.Snapshot.State)
	assert.True(t, ev.Time.Equal(startTime))
}

func TestCloseStopsEverything(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Settings.AutoStartBreaks = true
	})

	events := f.engine.Subscribe(64)

	f.engine.Start()
	f.engine.Skip()
	f.engine.Close()

	assert.Equal(t, 0, f.clock.Pending())

	f.engine.Start()
	assert.Equal(t, Complete, f.engine.Snapshot().State)

	for range events {
	}

	_, open := <-f.engine.Subscribe(1)
	assert.False(t, open)
}

func TestHandleCommands(t *testing.T) {
	f := newFixture(t)

	steps := []struct {
		line  string
		state State
		phase config.Phase
	}{
		{"s", Running, config.Work},
		{"p", Paused, config.Work},
		{"resume", Running, config.Work},
		{"", Paused, config.Work},
		{"x", Idle, config.Work},
		{"sb", Idle, config.ShortBreak},
		{"start", Running, config.ShortBreak},
		{"k", Complete, config.Work},
		{"long-break", Idle, config.LongBreak},
	}

	for _, step := range steps {
		quit, err := f.engine.Handle(ParseCommand(step.line))
		require.NoError(t, err, step.line)
		assert.False(t, quit)

		s := f.engine.Snapshot()
		assert.Equal(t, step.state, s.State, step.line)
		assert.Equal(t, step.phase, s.Phase, step.line)
	}

	_, err := f.engine.Handle(ParseCommand("t  write the report "))
	require.NoError(t, err)
	assert.Equal(t, "write the report", f.engine.Snapshot().Task)

	quit, err := f.engine.Handle(ParseCommand("q"))
	require.NoError(t, err)
	assert.True(t, quit)

	_, err = f.engine.Handle(ParseCommand("dance"))
	assert.Error(t, err)
}

func TestStateDisplay(t *testing.T) {
	assert.Equal(t, "Ready", Idle.Display())
	assert.Equal(t, "Focus", Running.Display())
	assert.Equal(t, "Paused", Paused.Display())
	assert.Equal(t, "Complete", Complete.Display())
}
