// Package history records icon generation runs in a SQLite database.
// Logging is opt-in ("log": true) so a plain run leaves no files behind
// other than the icons.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Mavwarf/mkicons/internal/assets"
	"github.com/Mavwarf/mkicons/internal/paths"

	_ "modernc.org/sqlite"
)

// Asset is one file written during a run.
type Asset struct {
	Name   string
	Size   int
	Format string
	Bytes  int
	SHA256 string
}

// Run is one recorded generation.
type Run struct {
	ID     int64
	Time   time.Time
	Dir    string
	Assets []Asset
}

// Store is a SQLite-backed run log.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    dir       TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS run_assets (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    name    TEXT    NOT NULL,
    size    INTEGER NOT NULL,
    format  TEXT    NOT NULL,
    bytes   INTEGER NOT NULL,
    sha256  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_assets_run     ON run_assets(run_id);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record stores a run and its written assets in one transaction.
func (s *Store) Record(dir string, results []assets.Result) (int64, error) {
	return s.recordAt(time.Now(), dir, results)
}

func (s *Store) recordAt(ts time.Time, dir string, results []assets.Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (timestamp, dir) VALUES (?, ?)`,
		ts.Format(time.RFC3339), dir)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range results {
		if _, err := tx.Exec(
			`INSERT INTO run_assets (run_id, name, size, format, bytes, sha256)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, r.Name, r.Size, r.Format.String(), r.Bytes, r.SHA256,
		); err != nil {
			return 0, err
		}
	}
	return runID, tx.Commit()
}

// Runs returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(limit int) ([]Run, error) {
	query := `SELECT id, timestamp, dir FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	var runs []Run
	for rows.Next() {
		var r Run
		var tsStr string
		if err := rows.Scan(&r.ID, &tsStr, &r.Dir); err != nil {
			rows.Close()
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			logrus.WithError(err).WithField("run", r.ID).Debug("history: skipping row with bad timestamp")
			continue
		}
		r.Time = ts
		runs = append(runs, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		a, err := s.assets(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Assets = a
	}
	return runs, nil
}

func (s *Store) assets(runID int64) ([]Asset, error) {
	rows, err := s.db.Query(
		`SELECT name, size, format, bytes, sha256 FROM run_assets WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.Name, &a.Size, &a.Format, &a.Bytes, &a.SHA256); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Clear deletes all recorded runs.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM runs`); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM run_assets`)
	return err
}
