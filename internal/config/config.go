// Package config loads the pomobar settings from the config file and
// resolves the paths of the files pomobar reads and writes
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          SessionConfig
		ShortBreak    SessionConfig
		LongBreak     SessionConfig
		Settings      SettingsConfig
		Sound         SoundConfig
		Notifications NotificationConfig
		Storage       StorageConfig
		Log           LogConfig
	}

	// SessionConfig holds the settings of a single phase.
	SessionConfig struct {
		Sound    string
		Duration time.Duration
	}

	// SettingsConfig holds the cycle settings.
	SettingsConfig struct {
		Cmd                     string
		PomodorosUntilLongBreak int
		AutoStartBreaks         bool
	}

	// SoundConfig holds the ambient sound settings.
	SoundConfig struct {
		Volume  float64
		Enabled bool
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// StorageConfig selects the statistics backend.
	StorageConfig struct {
		Driver           string
		LegacySingleSlot bool
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Debug bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error

	// Phase identifies one segment of the pomodoro cycle.
	Phase string
)

const Version = "v0.3.0"

const (
	Work       Phase = "work"
	ShortBreak Phase = "short_break"
	LongBreak  Phase = "long_break"
)

// Phases lists every phase in cycle order.
var Phases = []Phase{Work, ShortBreak, LongBreak}

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

const (
	DefaultWorkDuration            = 25 * time.Minute
	DefaultShortBreakDuration      = 5 * time.Minute
	DefaultLongBreakDuration       = 15 * time.Minute
	DefaultPomodorosUntilLongBreak = 4
	DefaultVolume                  = 0.5
)

var (
	configDir      = "pomobar"
	configFileName = "config.yml"
	dbFileName     = "pomobar.db"
	logFileName    = "pomobar.log"
	dataDir        string
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

// Label returns the human readable name of the phase.
func (p Phase) Label() string {
	switch p {
	case Work:
		return "Focus"
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	}

	return string(p)
}

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	return p == Work || p == ShortBreak || p == LongBreak
}

// ParsePhase converts user input such as "work", "sb" or "long-break" into a
// Phase.
func ParsePhase(s string) (Phase, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")

	switch normalized {
	case "work", "w", "focus":
		return Work, nil
	case "short_break", "short", "sb":
		return ShortBreak, nil
	case "long_break", "long", "lb":
		return LongBreak, nil
	}

	return "", errUnknownPhase.Fmt(s)
}

// Session returns the settings of the specified phase.
func (c *Config) Session(p Phase) SessionConfig {
	switch p {
	case ShortBreak:
		return c.ShortBreak
	case LongBreak:
		return c.LongBreak
	default:
		return c.Work
	}
}

// Duration returns the configured length of the specified phase.
func (c *Config) Duration(p Phase) time.Duration {
	return c.Session(p).Duration
}

// Clone returns a copy of the config that can be handed to another goroutine.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func Dir() string {
	return configDir
}

func DataDir() string {
	return dataDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// SoundDir is where custom and bundled ambient sound files are looked up.
func SoundDir() string {
	return filepath.Join(dataDir, "sounds")
}

// IconPath returns the notification icon, or an empty string if none is
// installed.
func IconPath() string {
	p, err := xdg.SearchDataFile(filepath.Join(configDir, "icon.png"))
	if err != nil {
		return ""
	}

	return p
}

// InitializePaths resolves the config, database and log file locations.
// Setting POMOBAR_ENV keeps a separate set of files per environment.
func InitializePaths() error {
	env := strings.TrimSpace(os.Getenv("POMOBAR_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("pomobar_%s.db", env)
		logFileName = fmt.Sprintf("pomobar_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(filepath.Join(configDir, configFileName))
	if err != nil {
		return errResolvePath.Wrap(err)
	}

	dataDir, err = xdg.DataFile(configDir)
	if err != nil {
		return errResolvePath.Wrap(err)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)

	return nil
}

// New creates a new Config and applies the options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}
