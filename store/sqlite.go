package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/pomobar/internal/config"
	"github.com/ayoisaiah/pomobar/internal/models"
	"github.com/ayoisaiah/pomobar/internal/timeutil"
)

const sqliteVersion = 1

// SQLite stores the same records as Client in an SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the SQLite database at dbPath and runs
// migrations.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, errOpenDB.Fmt(dbPath).Wrap(err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// NewMemory creates an in-memory SQLite store.
func NewMemory() (*SQLite, error) {
	return NewSQLite(":memory:")
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	var version int

	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= sqliteVersion {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_stats (
		day           TEXT PRIMARY KEY,
		date          TEXT NOT NULL,
		completed     INTEGER NOT NULL DEFAULT 0,
		focus_minutes INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS task_history (
		seq       INTEGER PRIMARY KEY AUTOINCREMENT,
		id        TEXT NOT NULL UNIQUE,
		name      TEXT NOT NULL,
		phase     TEXT NOT NULL,
		duration  INTEGER NOT NULL,
		timestamp TEXT NOT NULL
	);`

	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", sqliteVersion))

	return err
}

func (s *SQLite) LoadToday(now time.Time) (models.DailyStats, bool, error) {
	var value string

	err := s.db.QueryRow(
		`SELECT value FROM kv WHERE key = ?`, todayStatsKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyStats{}, false, nil
	}

	if err != nil {
		return models.DailyStats{}, false, err
	}

	var rec models.DailyStats
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return models.DailyStats{}, false, errCorruptRecord.Fmt(todayStatsKey).Wrap(err)
	}

	if !rec.IsSameDay(now) {
		return models.DailyStats{}, false, nil
	}

	return rec, true, nil
}

func (s *SQLite) SaveDay(rec models.DailyStats) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		todayStatsKey, string(value),
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO daily_stats (day, date, completed, focus_minutes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			date = excluded.date,
			completed = excluded.completed,
			focus_minutes = excluded.focus_minutes`,
		timeutil.DayKey(rec.Date),
		rec.Date.Format(time.RFC3339Nano),
		rec.Completed,
		rec.FocusMinutes,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLite) Day(day time.Time) (models.DailyStats, bool, error) {
	var (
		rec  models.DailyStats
		date string
	)

	err := s.db.QueryRow(
		`SELECT date, completed, focus_minutes FROM daily_stats WHERE day = ?`,
		timeutil.DayKey(day),
	).Scan(&date, &rec.Completed, &rec.FocusMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyStats{}, false, nil
	}

	if err != nil {
		return models.DailyStats{}, false, err
	}

	rec.Date, err = time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return models.DailyStats{}, false, errCorruptRecord.Fmt(timeutil.DayKey(day)).Wrap(err)
	}

	return rec, true, nil
}

func (s *SQLite) AppendTask(rec models.TaskRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(
		`INSERT INTO task_history (id, name, phase, duration, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Name,
		string(rec.Phase),
		int64(rec.Duration),
		rec.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`DELETE FROM task_history WHERE seq NOT IN (
			SELECT seq FROM task_history ORDER BY seq DESC LIMIT ?
		)`,
		models.MaxTaskHistory,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLite) Tasks() ([]models.TaskRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, name, phase, duration, timestamp
		FROM task_history ORDER BY seq DESC LIMIT ?`,
		models.MaxTaskHistory,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.TaskRecord

	for rows.Next() {
		var (
			rec      models.TaskRecord
			phase    string
			duration int64
			ts       string
		)

		if err := rows.Scan(&rec.ID, &rec.Name, &phase, &duration, &ts); err != nil {
			return nil, err
		}

		rec.Phase = config.Phase(phase)
		rec.Duration = time.Duration(duration)

		rec.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, errCorruptRecord.Fmt(taskHistoryKey).Wrap(err)
		}

		history = append(history, rec)
	}

	return history, rows.Err()
}
