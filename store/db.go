package store

import (
	"time"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/models"
)

// DB is the statistics storage interface.
type DB interface {
	// LoadToday returns the single daily record if it belongs to the calendar
	// day of now
	LoadToday(now time.Time) (models.DailyStats, bool, error)
	// SaveDay overwrites the single daily record and upserts the same record
	// in the per-day log
	SaveDay(rec models.DailyStats) error
	// Day returns the record of the calendar day containing day
	Day(day time.Time) (models.DailyStats, bool, error)
	// AppendTask prepends rec to the task history and evicts the oldest
	// records beyond models.MaxTaskHistory
	AppendTask(rec models.TaskRecord) error
	// Tasks returns the task history, newest first
	Tasks() ([]models.TaskRecord, error)
	// Close ends the database connection
	Close() error
}

// Open connects to the backend selected by driver.
func Open(driver, path string) (DB, error) {
	switch driver {
	case config.DriverSQLite:
		return NewSQLite(path)
	case config.DriverBolt, "":
		return NewClient(path)
	}

	return nil, errUnknownDriver.Fmt(driver)
}

type singleSlot struct {
	DB
}

// SingleSlot wraps db so that per-day lookups only see the single daily
// record. Every day other than the one it was written for reads as empty.
func SingleSlot(db DB) DB {
	return singleSlot{db}
}

func (s singleSlot) Day(day time.Time) (models.DailyStats, bool, error) {
	return s.LoadToday(day)
}
