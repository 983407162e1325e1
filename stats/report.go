package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/pomobar/internal/timeutil"
	"github.com/ayoisaiah/pomobar/internal/ui"
)

const barChartChar = "▇"

// Format selects how a summary is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Write renders s to w in the given format.
func Write(w io.Writer, s Summary, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(s); err != nil {
			return err
		}

		return enc.Close()
	case FormatText, "":
		_, err := fmt.Fprintln(w, strings.TrimSpace(render(s)))
		return err
	}

	return errUnknownFormat.Fmt(format)
}

func render(s Summary) string {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Week ending %s", s.Date.Format("Monday, January 02, 2006"))

	return header + getSummary(s) + getBarChart(s.Week)
}

func getSummary(s Summary) string {
	var b strings.Builder

	b.WriteString(ui.Blue("Summary") + "\n")

	fmt.Fprintln(&b, "Today:", ui.Green(s.TodayCompleted),
		"pomodoros,", ui.Green(timeutil.FormatMinutes(s.TodayFocusMinutes)))
	fmt.Fprintln(&b, "This week:", ui.Green(s.WeeklyCompleted),
		"pomodoros,", ui.Green(timeutil.FormatMinutes(s.WeeklyFocusMinutes)))

	best := s.BestDay.Label
	if s.BestDay.Count > 0 {
		best = fmt.Sprintf("%s (%d)", best, s.BestDay.Count)
	}

	fmt.Fprintln(&b, "Best day:", ui.Green(best))
	fmt.Fprintln(&b, "Streak:", ui.Green(fmt.Sprintf("%d days", s.LongestStreak)))

	return b.String()
}

func getBarChart(week []Day) string {
	if len(week) == 0 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (pomodoros)")

	bars := make(pterm.Bars, 0, len(week))

	for _, d := range week {
		label := d.Label
		if d.IsToday {
			label += "*"
		}

		bars = append(bars, pterm.Bar{
			Value: d.Completed,
			Label: label,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}
