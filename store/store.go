// Package store persists daily statistics and the task history in BoltDB or
// SQLite.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

const (
	kvBucket   = "kv"
	daysBucket = "days"

	todayStatsKey  = "todayStats"
	taskHistoryKey = "taskHistory"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) LoadToday(now time.Time) (models.DailyStats, bool, error) {
	var (
		rec   models.DailyStats
		found bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(kvBucket)).Get([]byte(todayStatsKey))
		if len(v) == 0 {
			return nil
		}

		if err := json.Unmarshal(v, &rec); err != nil {
			return errCorruptRecord.Fmt(todayStatsKey).Wrap(err)
		}

		found = rec.IsSameDay(now)

		return nil
	})
	if err != nil || !found {
		return models.DailyStats{}, false, err
	}

	return rec, true, nil
}

func (c *Client) SaveDay(rec models.DailyStats) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(kvBucket)).Put([]byte(todayStatsKey), value)
		if err != nil {
			return err
		}

		return tx.Bucket([]byte(daysBucket)).Put(timeutil.ToKey(rec.Date), value)
	})
}

func (c *Client) Day(day time.Time) (models.DailyStats, bool, error) {
	var (
		rec   models.DailyStats
		found bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(daysBucket)).Get(timeutil.ToKey(day))
		if len(v) == 0 {
			return nil
		}

		found = true

		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return models.DailyStats{}, false, errCorruptRecord.Fmt(timeutil.DayKey(day)).Wrap(err)
	}

	return rec, found, nil
}

func (c *Client) AppendTask(rec models.TaskRecord) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(kvBucket))

		history, err := decodeTasks(b.Get([]byte(taskHistoryKey)))
		if err != nil {
			return err
		}

		value, err := json.Marshal(models.PrependTask(history, rec))
		if err != nil {
			return err
		}

		return b.Put([]byte(taskHistoryKey), value)
	})
}

func (c *Client) Tasks() ([]models.TaskRecord, error) {
	var history []models.TaskRecord

	err := c.View(func(tx *bolt.Tx) error {
		var err error

		history, err = decodeTasks(
			tx.Bucket([]byte(kvBucket)).Get([]byte(taskHistoryKey)),
		)

		return err
	})

	return history, err
}

func decodeTasks(v []byte) ([]models.TaskRecord, error) {
	if len(v) == 0 {
		return nil, nil
	}

	var history []models.TaskRecord

	if err := json.Unmarshal(v, &history); err != nil {
		return nil, errCorruptRecord.Fmt(taskHistoryKey).Wrap(err)
	}

	return history, nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	if err := os.MkdirAll(filepath.Dir(pathToDB), 0o750); err != nil {
		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{kvBucket, daysBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
