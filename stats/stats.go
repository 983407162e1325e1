// Package stats reports pomodoro statistics from the per-day records
package stats

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/pomobar/internal/logger"
	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

const noBestDay = "N/A"

// DayReader looks up the record of a calendar day.
type DayReader interface {
	Day(day time.Time) (models.DailyStats, bool, error)
}

// Aggregator computes read-only statistics over the rolling week that ends
// today.
type Aggregator struct {
	db     DayReader
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithNow fixes the reference time. It defaults to time.Now.
func WithNow(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithLogger sets the logger that read errors are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

// New creates an Aggregator reading from db.
func New(db DayReader, opts ...Option) *Aggregator {
	a := &Aggregator{
		db:     db,
		now:    time.Now,
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Day is one entry of the weekly chart.
type Day struct {
	Date         time.Time `json:"date"          yaml:"date"`
	Label        string    `json:"label"         yaml:"label"`
	Completed    int       `json:"completed"     yaml:"completed"`
	FocusMinutes int       `json:"focus_minutes" yaml:"focus_minutes"`
	IsToday      bool      `json:"is_today"      yaml:"is_today"`
}

// BestDay is the day of the week with the most completed pomodoros.
type BestDay struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Summary gathers every statistic for reporting.
type Summary struct {
	Date               time.Time `json:"date"                 yaml:"date"`
	BestDay            BestDay   `json:"best_day"             yaml:"best_day"`
	Week               []Day     `json:"week"                 yaml:"week"`
	TodayCompleted     int       `json:"today_completed"      yaml:"today_completed"`
	TodayFocusMinutes  int       `json:"today_focus_minutes"  yaml:"today_focus_minutes"`
	WeeklyCompleted    int       `json:"weekly_completed"     yaml:"weekly_completed"`
	WeeklyFocusMinutes int       `json:"weekly_focus_minutes" yaml:"weekly_focus_minutes"`
	LongestStreak      int       `json:"longest_streak"       yaml:"longest_streak"`
}

// read returns the record of the day n days before today. Read errors are
// logged and count as an empty day.
func (a *Aggregator) read(today time.Time, n int) (time.Time, models.DailyStats, bool) {
	date := timeutil.DaysAgo(today, n)

	rec, found, err := a.db.Day(date)
	if err != nil {
		a.logger.Warn(
			"reading daily statistics failed",
			slog.String("day", timeutil.DayKey(date)),
			slog.Any("error", err),
		)

		return date, models.DailyStats{}, false
	}

	if !found {
		return date, models.DailyStats{}, false
	}

	return date, rec, true
}

// Week returns today and the six days before it, oldest first.
func (a *Aggregator) Week() []Day {
	return a.week(a.now())
}

func (a *Aggregator) week(today time.Time) []Day {
	days := make([]Day, timeutil.DaysInWeek)

	for i := range timeutil.DaysInWeek {
		date, rec, _ := a.read(today, i)

		days[timeutil.DaysInWeek-1-i] = Day{
			Date:         date,
			Label:        timeutil.ShortWeekday(date),
			Completed:    rec.Completed,
			FocusMinutes: rec.FocusMinutes,
			IsToday:      i == 0,
		}
	}

	return days
}

// WeeklyCompleted is the number of pomodoros over the last seven days.
func (a *Aggregator) WeeklyCompleted() int {
	total := 0

	for _, d := range a.Week() {
		total += d.Completed
	}

	return total
}

// WeeklyFocusMinutes is the focus time over the last seven days.
func (a *Aggregator) WeeklyFocusMinutes() int {
	total := 0

	for _, d := range a.Week() {
		total += d.FocusMinutes
	}

	return total
}

// BestDay returns the day with the most pomodoros in the last seven days.
// Ties go to the most recent day.
func (a *Aggregator) BestDay() BestDay {
	return bestDay(a.Week())
}

func bestDay(week []Day) BestDay {
	best := BestDay{Label: noBestDay}

	for i := len(week) - 1; i >= 0; i-- {
		if week[i].Completed > best.Count {
			best = BestDay{Label: week[i].Label, Count: week[i].Completed}
		}
	}

	return best
}

// LongestStreak counts the consecutive days up to today with at least one
// completed pomodoro.
func (a *Aggregator) LongestStreak() int {
	return a.streak(a.now())
}

func (a *Aggregator) streak(today time.Time) int {
	streak := 0

	for {
		_, rec, found := a.read(today, streak)
		if !found || rec.Completed <= 0 {
			return streak
		}

		streak++
	}
}

// Summary computes every statistic against a single reference time.
func (a *Aggregator) Summary() Summary {
	today := a.now()
	week := a.week(today)

	s := Summary{
		Date:          timeutil.RoundToStart(today),
		Week:          week,
		BestDay:       bestDay(week),
		LongestStreak: a.streak(today),
	}

	for _, d := range week {
		s.WeeklyCompleted += d.Completed
		s.WeeklyFocusMinutes += d.FocusMinutes

		if d.IsToday {
			s.TodayCompleted = d.Completed
			s.TodayFocusMinutes = d.FocusMinutes
		}
	}

	return s
}
