package store

import (
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

const (
	schemaVersionKey = "schemaVersion"
	schemaVersion    = 1
)

// backfillDays copies the single daily record into the per-day log. Files
// written before the per-day log existed only have the single record.
func backfillDays(tx *bolt.Tx) error {
	v := tx.Bucket([]byte(kvBucket)).Get([]byte(todayStatsKey))
	if len(v) == 0 {
		return nil
	}

	var rec models.DailyStats

	if err := json.Unmarshal(v, &rec); err != nil {
		return nil //nolint:nilerr // surfaces on the next read
	}

	days := tx.Bucket([]byte(daysBucket))

	key := timeutil.ToKey(rec.Date)
	if days.Get(key) != nil {
		return nil
	}

	return days.Put(key, v)
}

func (c *Client) migrate(tx *bolt.Tx) error {
	kv := tx.Bucket([]byte(kvBucket))

	version, _ := strconv.Atoi(string(kv.Get([]byte(schemaVersionKey))))
	if version >= schemaVersion {
		return nil
	}

	if err := backfillDays(tx); err != nil {
		return err
	}

	return kv.Put(
		[]byte(schemaVersionKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
