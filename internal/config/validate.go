package config

import (
	"math"
	"time"
)

// Normalize corrects invalid values in place and returns one error per
// correction so that callers can log them. A normalized config is always
// usable by the timer.
func (c *Config) Normalize() []error {
	var corrections []error

	durations := []struct {
		sess     *SessionConfig
		phase    Phase
		fallback time.Duration
	}{
		{&c.Work, Work, DefaultWorkDuration},
		{&c.ShortBreak, ShortBreak, DefaultShortBreakDuration},
		{&c.LongBreak, LongBreak, DefaultLongBreakDuration},
	}

	for _, d := range durations {
		if d.sess.Duration <= 0 {
			corrections = append(
				corrections,
				errInvalidDuration.Fmt(d.phase.Label(), d.fallback),
			)
			d.sess.Duration = d.fallback
		}
	}

	if c.Settings.PomodorosUntilLongBreak < 1 {
		corrections = append(
			corrections,
			errInvalidLongBreakInterval.Fmt(DefaultPomodorosUntilLongBreak),
		)
		c.Settings.PomodorosUntilLongBreak = DefaultPomodorosUntilLongBreak
	}

	if math.IsNaN(c.Sound.Volume) || c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		clamped := DefaultVolume
		if c.Sound.Volume < 0 {
			clamped = 0
		} else if c.Sound.Volume > 1 {
			clamped = 1
		}

		corrections = append(
			corrections,
			errInvalidVolume.Fmt(c.Sound.Volume, clamped),
		)
		c.Sound.Volume = clamped
	}

	switch c.Storage.Driver {
	case DriverBolt, DriverSQLite:
	case "":
		c.Storage.Driver = DriverBolt
	default:
		corrections = append(
			corrections,
			errUnknownDriver.Fmt(c.Storage.Driver, DriverBolt),
		)
		c.Storage.Driver = DriverBolt
	}

	return corrections
}
