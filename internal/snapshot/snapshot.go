// Package snapshot implements an optional, durable store of evaluated
// documents (SPEC_FULL.md's supplemented "snapshot store" feature),
// backed by modernc.org/sqlite the way the teacher's
// internal/ingest/sqlite_writer.go backs its own node store: a prepared
// statement for the bulk key inserts, one schema created with IF NOT EXISTS, and an
// explicit transaction around bulk writes.
package snapshot

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quandangv/lini/internal/doclog"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	document TEXT NOT NULL,
	taken_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshot_keys (
	snapshot_id INTEGER NOT NULL,
	path TEXT NOT NULL,
	value TEXT NOT NULL,
	FOREIGN KEY (snapshot_id) REFERENCES snapshots(id)
);
CREATE INDEX IF NOT EXISTS idx_snapshot_keys_snapshot ON snapshot_keys(snapshot_id);
`

// Store is a sqlite-backed history of a document's rendered key/value
// pairs, taken on demand (e.g. by `linictl snapshot`).
type Store struct {
	db *sql.DB
}

// Open creates (or reopens) a snapshot store at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store %s: %w", dbPath, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Entry is one rendered (path, value) pair captured in a snapshot.
type Entry struct {
	Path  string
	Value string
}

// Take records a new snapshot containing entries, stamped with takenAt
// (the caller supplies the timestamp, since node evaluation is the only
// place this codebase touches wall-clock/monotonic time deliberately).
func (s *Store) Take(entries []Entry, takenAt time.Time) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	res, err := tx.Exec(`INSERT INTO snapshots (document, taken_at) VALUES (?, ?)`, "", takenAt.Unix())
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO snapshot_keys (snapshot_id, path, value) VALUES (?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(id, e.Path, e.Value); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	doclog.Infof("snapshot %d taken (%d keys)", id, len(entries))
	return id, nil
}

// Load returns every (path, value) entry recorded under snapshotID.
func (s *Store) Load(snapshotID int64) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT path, value FROM snapshot_keys WHERE snapshot_id = ? ORDER BY path`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.Value); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// List returns the IDs and timestamps of every snapshot taken, most
// recent first.
func (s *Store) List() ([]int64, []time.Time, error) {
	rows, err := s.db.Query(`SELECT id, taken_at FROM snapshots ORDER BY id DESC`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var ids []int64
	var times []time.Time
	for rows.Next() {
		var id, ts int64
		if err := rows.Scan(&id, &ts); err != nil {
			return nil, nil, err
		}
		ids = append(ids, id)
		times = append(times, time.Unix(ts, 0))
	}
	return ids, times, rows.Err()
}
