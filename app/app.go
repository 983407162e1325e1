package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomobar/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// timerFlags are read by every command so that a one-off override (such as
// --storage) also applies to the reports.
func timerFlags() []cli.Flag {
	return []cli.Flag{
		workFlag,
		shortBreakFlag,
		longBreakFlag,
		longBreakIntervalFlag,
		autoStartFlag,
		workSoundFlag,
		breakSoundFlag,
		volumeFlag,
		noSoundFlag,
		disableNotificationFlag,
		sessionCmdFlag,
		taskFlag,
		storageFlag,
		debugFlag,
		noColorFlag,
		darkThemeFlag,
	}
}

// Get retrieves the pomobar app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "pomobar",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Pomobar is a Pomodoro timer with ambient sounds and daily statistics.
		Focus phases alternate with short breaks, and every few cycles a long
		break is taken instead.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "init",
				Usage:  "Answer a few questions to create the configuration file",
				Action: initAction,
			},
			{
				Name:   "stats",
				Usage:  "Summarise the last 7 days of focus",
				Flags:  []cli.Flag{onFlag, jsonFlag, yamlFlag},
				Action: statsAction,
			},
			{
				Name:   "history",
				Usage:  "List the most recent labelled tasks",
				Flags:  []cli.Flag{limitFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the ambient sounds and the sound files installed",
				Action: soundsAction,
			},
		},
		Flags:  timerFlags(),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
