package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
	dps "github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/hook"
	"github.com/ayoisaiah/pomobar/internal/logger"
	"github.com/ayoisaiah/pomobar/internal/notify"
	"github.com/ayoisaiah/pomobar/internal/sound"
	"github.com/ayoisaiah/pomobar/internal/ui"
	"github.com/ayoisaiah/pomobar/stats"
	"github.com/ayoisaiah/pomobar/store"
	"github.com/ayoisaiah/pomobar/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envPomobarNoColor = "POMOBAR_NO_COLOR"
	sqliteExt         = ".sqlite"
)

// env holds what every command needs once the config has been loaded.
type env struct {
	cfg    *config.Config
	db     store.DB
	logger *slog.Logger
	logs   io.Closer
}

func (e *env) Close() error {
	return errors.Join(e.db.Close(), e.logs.Close())
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// flagOverrides applies the command-line flags on top of the config file.
func flagOverrides(ctx *cli.Context) config.Option {
	return func(c *config.Config) error {
		if ctx.IsSet(workFlag.Name) {
			c.Work.Duration = minutes(ctx.Float64(workFlag.Name))
		}

		if ctx.IsSet(shortBreakFlag.Name) {
			c.ShortBreak.Duration = minutes(ctx.Float64(shortBreakFlag.Name))
		}

		if ctx.IsSet(longBreakFlag.Name) {
			c.LongBreak.Duration = minutes(ctx.Float64(longBreakFlag.Name))
		}

		if ctx.IsSet(longBreakIntervalFlag.Name) {
			c.Settings.PomodorosUntilLongBreak = int(ctx.Uint(longBreakIntervalFlag.Name))
		}

		if ctx.IsSet(autoStartFlag.Name) {
			c.Settings.AutoStartBreaks = ctx.Bool(autoStartFlag.Name)
		}

		if ctx.IsSet(sessionCmdFlag.Name) {
			c.Settings.Cmd = ctx.String(sessionCmdFlag.Name)
		}

		if ctx.IsSet(workSoundFlag.Name) {
			c.Work.Sound = ctx.String(workSoundFlag.Name)
		}

		if ctx.IsSet(breakSoundFlag.Name) {
			c.ShortBreak.Sound = ctx.String(breakSoundFlag.Name)
			c.LongBreak.Sound = c.ShortBreak.Sound
		}

		if ctx.IsSet(volumeFlag.Name) {
			c.Sound.Volume = ctx.Float64(volumeFlag.Name)
		}

		if ctx.Bool(noSoundFlag.Name) {
			c.Sound.Enabled = false
		}

		if ctx.Bool(disableNotificationFlag.Name) {
			c.Notifications.Enabled = false
		}

		if ctx.IsSet(storageFlag.Name) {
			c.Storage.Driver = ctx.String(storageFlag.Name)
		}

		if ctx.Bool(debugFlag.Name) {
			c.Log.Debug = true
		}

		return nil
	}
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

// dbPath returns the database file of the configured driver. Both backends
// live side by side so that switching drivers never reads the other format.
func dbPath(driver string) string {
	p := config.DBFilePath()
	if driver == config.DriverSQLite {
		return strings.TrimSuffix(p, filepath.Ext(p)) + sqliteExt
	}

	return p
}

// setup loads the config, creates the logger and opens the database. The
// first-run prompt is only shown when prompt is true.
func setup(ctx *cli.Context, prompt bool) (*env, error) {
	if err := config.InitializePaths(); err != nil {
		return nil, err
	}

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(config.ConfigFilePath()))
	}

	opts = append(
		opts,
		config.WithViperConfig(config.ConfigFilePath()),
		flagOverrides(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	corrections := cfg.Normalize()

	l, logs, err := logger.New(logger.Options{
		Stderr:   ctx.App.ErrWriter,
		FilePath: config.LogFilePath(),
		Debug:    cfg.Log.Debug,
	})
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)

	for _, c := range corrections {
		l.Warn("config value corrected", slog.Any("error", c))
	}

	db, err := store.Open(cfg.Storage.Driver, dbPath(cfg.Storage.Driver))
	if err != nil {
		_ = logs.Close()
		return nil, errOpenStore.Wrap(err)
	}

	if cfg.Storage.LegacySingleSlot {
		db = store.SingleSlot(db)
	}

	l.Debug(
		"pomobar started",
		slog.String("config", config.ConfigFilePath()),
		slog.String("driver", cfg.Storage.Driver),
	)

	return &env{
		cfg:    cfg,
		db:     db,
		logger: l,
		logs:   logs,
	}, nil
}

// defaultAction runs the timer in the terminal until the user quits.
func defaultAction(ctx *cli.Context) error {
	e, err := setup(ctx, true)
	if err != nil {
		return err
	}

	defer e.Close()

	engine := timer.New(
		e.cfg,
		timer.WithAudio(sound.NewPlayer(
			config.SoundDir(),
			sound.WithLogger(e.logger),
		)),
		timer.WithNotifier(notify.New(config.IconPath())),
		timer.WithHook(hook.Shell{}),
		timer.WithStore(e.db),
		timer.WithLogger(e.logger),
	)

	defer engine.Close()

	if task := ctx.String(taskFlag.Name); task != "" {
		engine.SetTask(task)
	}

	override := flagOverrides(ctx)

	config.Watch(config.ConfigFilePath(), func(c *config.Config, errs []error) {
		for _, err := range errs {
			e.logger.Warn("config reload", slog.Any("error", err))
		}

		if c == nil {
			return
		}

		_ = override(c)

		for _, err := range c.Normalize() {
			e.logger.Warn("config value corrected", slog.Any("error", err))
		}

		engine.UpdateSettings(c)
	})

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	return run(sigCtx, engine, os.Stdin, ctx.App.Writer)
}

func parseDate(s string, now time.Time) (time.Time, error) {
	dt, err := dps.Parse(&dps.Configuration{CurrentTime: now}, s)
	if err != nil {
		return time.Time{}, errParseDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

func outputFormat(ctx *cli.Context) (stats.Format, error) {
	asJSON, asYAML := ctx.Bool(jsonFlag.Name), ctx.Bool(yamlFlag.Name)

	switch {
	case asJSON && asYAML:
		return "", errConflictingFormats
	case asJSON:
		return stats.FormatJSON, nil
	case asYAML:
		return stats.FormatYAML, nil
	}

	return stats.FormatText, nil
}

// statsAction prints the weekly summary.
func statsAction(ctx *cli.Context) error {
	format, err := outputFormat(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	if on := ctx.String(onFlag.Name); on != "" {
		now, err = parseDate(on, now)
		if err != nil {
			return err
		}
	}

	e, err := setup(ctx, false)
	if err != nil {
		return err
	}

	defer e.Close()

	agg := stats.New(
		e.db,
		stats.WithNow(func() time.Time { return now }),
		stats.WithLogger(e.logger),
	)

	return stats.Write(ctx.App.Writer, agg.Summary(), format)
}

// historyAction prints the task history, newest first.
func historyAction(ctx *cli.Context) error {
	e, err := setup(ctx, false)
	if err != nil {
		return err
	}

	defer e.Close()

	tasks, err := e.db.Tasks()
	if err != nil {
		return err
	}

	limit := int(ctx.Uint(limitFlag.Name))

	if !ctx.Bool(jsonFlag.Name) {
		stats.ListTasks(ctx.App.Writer, tasks, limit)
		return nil
	}

	if limit > 0 && limit < len(tasks) {
		tasks = tasks[:limit]
	}

	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.App.Writer, string(b))

	return nil
}

// soundsAction lists the known sounds with the file each one plays, followed
// by any other audio files in the sound directory.
func soundsAction(ctx *cli.Context) error {
	if err := config.InitializePaths(); err != nil {
		return err
	}

	dir := config.SoundDir()

	assets, err := sound.List(dir)
	if err != nil {
		return err
	}

	data := [][]string{{"SOUND", "FILE"}}

	for _, c := range sound.Choices {
		path, err := sound.FindAsset(dir, c)
		if err != nil {
			path = ui.Red("not installed")
		}

		data = append(data, []string{string(c), path})
	}

	for _, a := range assets {
		if a.Known {
			continue
		}

		data = append(data, []string{a.Name + " (unused)", a.Path})
	}

	ui.PrintTable(data, ctx.App.Writer)

	pterm.Fprintln(
		ctx.App.Writer,
		pterm.Gray("Add files named after a sound (e.g. rain.ogg) to "+dir),
	)

	return nil
}

// initAction asks for the core settings and writes them to a new config
// file.
func initAction(ctx *cli.Context) error {
	if err := config.InitializePaths(); err != nil {
		return err
	}

	path := config.ConfigFilePath()

	if _, err := os.Stat(path); err == nil {
		pterm.Fprintln(
			ctx.App.Writer,
			pterm.Info.Sprintf("%s already exists. Use edit-config to change it", path),
		)

		return nil
	}

	_, err := config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
	)
	if err != nil {
		return err
	}

	pterm.Fprintln(ctx.App.Writer, pterm.Success.Sprintf("Saved %s", path))

	return nil
}

// editConfigAction handles the edit-config command which opens the pomobar
// config file in the user's default text editor. A running timer picks up
// the saved changes.
func editConfigAction(_ *cli.Context) error {
	if err := config.InitializePaths(); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	args, err := shellquote.Split(editor)
	if err != nil || len(args) == 0 {
		args = []string{editor}
	}

	cmd := exec.Command(args[0], append(args[1:], config.ConfigFilePath())...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	if err := cmd.Run(); err != nil {
		return errEditor.Fmt(args[0]).Wrap(err)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envPomobarNoColor); exists {
		disableStyling()
	}

	if ctx.Bool(noColorFlag.Name) {
		disableStyling()
	}

	ui.DarkTheme = ctx.Bool(darkThemeFlag.Name)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomobar")

	return nil
}
