package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	darkThemeFlag = &cli.BoolFlag{
		Name:  "dark-theme",
		Usage: "Use brighter colours that read better on dark terminals",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug logs to the log file and stderr",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a phase is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each phase",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable ambient sounds",
	}

	volumeFlag = &cli.Float64Flag{
		Name:  "volume",
		Usage: "Ambient sound volume between 0 and 1 (default: 0.5)",
	}

	workSoundFlag = &cli.StringFlag{
		Name:    "work-sound",
		Aliases: []string{"ws"},
		Usage:   "Ambient sound during focus phases: Ticking, Rain, Forest, Ocean or Cafe (default: Ticking)",
	}

	breakSoundFlag = &cli.StringFlag{
		Name:    "break-sound",
		Aliases: []string{"bs"},
		Usage:   "Ambient sound during both breaks (default: Forest for short breaks, Ocean for long breaks)",
	}

	taskFlag = &cli.StringFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Label the focus phases so they appear in the task history",
	}

	autoStartFlag = &cli.BoolFlag{
		Name:    "auto-start",
		Aliases: []string{"a"},
		Usage:   "Start each break two seconds after a focus phase ends",
	}

	storageFlag = &cli.StringFlag{
		Name:  "storage",
		Usage: "Statistics backend: bolt or sqlite (default: bolt)",
	}

	shortBreakFlag = &cli.Float64Flag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.Float64Flag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of focus phases before a long break (default: 4)",
	}

	workFlag = &cli.Float64Flag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Focus duration in minutes (default: 25)",
	}

	onFlag = &cli.StringFlag{
		Name:  "on",
		Usage: "Report the week ending on this date (e.g. 'yesterday', '2024-05-06')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Print the output as YAML",
	}

	limitFlag = &cli.UintFlag{
		Name:  "limit",
		Usage: "Maximum number of tasks to show",
		Value: 10,
	}
)
