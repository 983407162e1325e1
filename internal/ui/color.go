// Package ui holds the colours and tables shared by the terminal output.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme switches every colour to its light variant.
var DarkTheme bool

type colour struct {
	normal pterm.Color
	dark   pterm.Color
}

func (c colour) sprint(a any) string {
	if DarkTheme {
		return c.dark.Sprint(a)
	}

	return c.normal.Sprint(a)
}

var (
	green     = colour{pterm.FgGreen, pterm.FgLightGreen}
	cyan      = colour{pterm.FgCyan, pterm.FgLightCyan}
	magenta   = colour{pterm.FgMagenta, pterm.FgLightMagenta}
	blue      = colour{pterm.FgBlue, pterm.FgLightBlue}
	red       = colour{pterm.FgRed, pterm.FgLightRed}
	highlight = colour{pterm.FgBlack, pterm.FgLightWhite}
)

// Green marks focus phases and durations.
func Green(a any) string { return green.sprint(a) }

// Cyan marks short breaks.
func Cyan(a any) string { return cyan.sprint(a) }

// Magenta marks long breaks.
func Magenta(a any) string { return magenta.sprint(a) }

func Blue(a any) string { return blue.sprint(a) }

func Red(a any) string { return red.sprint(a) }

// Highlight is used for the countdown.
func Highlight(a any) string { return highlight.sprint(a) }
