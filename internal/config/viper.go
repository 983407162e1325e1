package config

import (
	"errors"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	keyWorkDuration            = "work.duration"
	keyWorkSound               = "work.sound"
	keyShortBreakDuration      = "short_break.duration"
	keyShortBreakSound         = "short_break.sound"
	keyLongBreakDuration       = "long_break.duration"
	keyLongBreakSound          = "long_break.sound"
	keyPomodorosUntilLongBreak = "settings.pomodoros_until_long_break"
	keyAutoStartBreaks         = "settings.auto_start_breaks"
	keySessionCmd              = "settings.cmd"
	keySoundEnabled            = "sound.enabled"
	keySoundVolume             = "sound.volume"
	keyNotificationsEnabled    = "notifications.enabled"
	keyStorageDriver           = "storage.driver"
	keyLegacySingleSlot        = "storage.legacy_single_slot"
	keyLogDebug                = "log.debug"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			loadViperConfig(v, c)
			return nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		loadViperConfig(v, c)

		return nil
	}
}

// Watch reloads the config file whenever it changes and passes the
// normalized result to onChange. It must be called after the file exists.
func Watch(configPath string, onChange func(*Config, []error)) {
	v := newViper(configPath)

	setupViper(v, &Config{})

	if err := v.ReadInConfig(); err != nil {
		onChange(nil, []error{errReadConfig.Wrap(err)})
		return
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		c := &Config{}
		loadViperConfig(v, c)

		onChange(c, c.Normalize())
	})

	v.WatchConfig()
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	return v
}

// setupViper registers the defaults. Values already present on c (from the
// first-run prompt) take precedence so they end up in the written file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyWorkDuration, minutes(DefaultWorkDuration))
	v.SetDefault(keyWorkSound, "Ticking")
	v.SetDefault(keyShortBreakDuration, minutes(DefaultShortBreakDuration))
	v.SetDefault(keyShortBreakSound, "Forest")
	v.SetDefault(keyLongBreakDuration, minutes(DefaultLongBreakDuration))
	v.SetDefault(keyLongBreakSound, "Ocean")
	v.SetDefault(keyPomodorosUntilLongBreak, DefaultPomodorosUntilLongBreak)
	v.SetDefault(keyAutoStartBreaks, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySoundVolume, DefaultVolume)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyStorageDriver, DriverBolt)
	v.SetDefault(keyLegacySingleSlot, false)
	v.SetDefault(keyLogDebug, false)

	if c.Work.Duration > 0 {
		v.SetDefault(keyWorkDuration, minutes(c.Work.Duration))
	}

	if c.ShortBreak.Duration > 0 {
		v.SetDefault(keyShortBreakDuration, minutes(c.ShortBreak.Duration))
	}

	if c.LongBreak.Duration > 0 {
		v.SetDefault(keyLongBreakDuration, minutes(c.LongBreak.Duration))
	}

	if c.Settings.PomodorosUntilLongBreak > 0 {
		v.SetDefault(keyPomodorosUntilLongBreak, c.Settings.PomodorosUntilLongBreak)
	}

	if c.Settings.AutoStartBreaks {
		v.SetDefault(keyAutoStartBreaks, true)
	}
}

// loadViperConfig copies the resolved values from Viper into the Config
// struct. Durations are stored in minutes and may be fractional.
func loadViperConfig(v *viper.Viper, c *Config) {
	c.Work = SessionConfig{
		Duration: fromMinutes(v.GetFloat64(keyWorkDuration)),
		Sound:    v.GetString(keyWorkSound),
	}

	c.ShortBreak = SessionConfig{
		Duration: fromMinutes(v.GetFloat64(keyShortBreakDuration)),
		Sound:    v.GetString(keyShortBreakSound),
	}

	c.LongBreak = SessionConfig{
		Duration: fromMinutes(v.GetFloat64(keyLongBreakDuration)),
		Sound:    v.GetString(keyLongBreakSound),
	}

	c.Settings = SettingsConfig{
		PomodorosUntilLongBreak: v.GetInt(keyPomodorosUntilLongBreak),
		AutoStartBreaks:         v.GetBool(keyAutoStartBreaks),
		Cmd:                     v.GetString(keySessionCmd),
	}

	c.Sound = SoundConfig{
		Enabled: v.GetBool(keySoundEnabled),
		Volume:  v.GetFloat64(keySoundVolume),
	}

	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)

	c.Storage = StorageConfig{
		Driver:           v.GetString(keyStorageDriver),
		LegacySingleSlot: v.GetBool(keyLegacySingleSlot),
	}

	c.Log.Debug = v.GetBool(keyLogDebug)
}

func minutes(d time.Duration) float64 {
	return d.Minutes()
}

func fromMinutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
