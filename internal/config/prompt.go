package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
█▀█ █▀█ █▀▄▀█ █▀█ █▄▄ ▄▀█ █▀█
█▀▀ █▄█ █░▀░█ █▄█ █▄█ █▀█ █▀▄`

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	WorkDuration            int
	ShortBreakDuration      int
	LongBreakDuration       int
	PomodorosUntilLongBreak int
	AutoStartBreaks         bool
}

// WithPromptConfig asks for the core timer settings when no config file
// exists yet. It does nothing otherwise.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Answer a few questions to set up pomobar.
Press ENTER to accept the defaults.
Run 'pomobar edit-config' to change any setting later.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("50 minutes", 50),
				).
				Value(&opts.WorkDuration),
			huh.NewSelect[int]().
				Title("Short break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
				).
				Value(&opts.ShortBreakDuration),
			huh.NewSelect[int]().
				Title("Long break length").
				Options(
					huh.NewOption("15 minutes", 15).Selected(true),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
				).
				Value(&opts.LongBreakDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Pomodoros before a long break").
				Options(
					huh.NewOption("4", 4).Selected(true),
					huh.NewOption("3", 3),
					huh.NewOption("6", 6),
				).
				Value(&opts.PomodorosUntilLongBreak),
			huh.NewConfirm().
				Title("Start the next phase automatically?").
				Value(&opts.AutoStartBreaks),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Work.Duration = time.Duration(opts.WorkDuration) * time.Minute
	c.ShortBreak.Duration = time.Duration(opts.ShortBreakDuration) * time.Minute
	c.LongBreak.Duration = time.Duration(opts.LongBreakDuration) * time.Minute
	c.Settings.PomodorosUntilLongBreak = opts.PomodorosUntilLongBreak
	c.Settings.AutoStartBreaks = opts.AutoStartBreaks
}
