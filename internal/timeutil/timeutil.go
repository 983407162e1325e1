// Package timeutil provides calendar helpers shared by the store and the
// statistics code.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const minutesInAnHour = 60

// DayKeyLayout is the layout of per-day storage keys.
const DayKeyLayout = "2006-01-02"

// DaysInWeek is the length of the rolling statistics window.
const DaysInWeek = 7

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatMinutes renders a minutes value as "1h 05m" or "25m".
func FormatMinutes(val int) string {
	hrs, mins := MinsToHoursAndMins(val)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// DaysAgo returns the start of the day n calendar days before t. Calendar
// arithmetic keeps the result correct across DST changes.
func DaysAgo(t time.Time, n int) time.Time {
	return RoundToStart(t).AddDate(0, 0, -n)
}

// SameDay reports whether a and b fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayKey converts a time value to a per-day database key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey is the inverse of DayKey in the given location.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, loc)
}

// ToKey converts a time value to a sortable database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(DayKey(t))
}

// ShortWeekday returns the three letter weekday name, e.g. "Mon".
func ShortWeekday(t time.Time) string {
	return t.Format("Mon")
}

// FormatClock renders a duration as "MM:SS". Negative values render as
// "00:00".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int(d / time.Second)

	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
