// Package history keeps a small embedded record of what went wrong and
// what got reclaimed: deadline overruns (xruns) from the host and
// per-pass reclaim results. Written only from non-realtime threads.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type History struct {
	db *sql.DB
}

// Open creates or opens the history database at path.
func Open(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS xruns (
		at         INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		budget_ns  INTEGER NOT NULL,
		frames     INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: creating xruns table: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS reclaim_cycles (
		at      INTEGER NOT NULL,
		scanned INTEGER NOT NULL,
		freed   INTEGER NOT NULL,
		live    INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: creating reclaim_cycles table: %w", err)
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// Xrun is one recorded deadline overrun.
type Xrun struct {
	At      time.Time
	Elapsed time.Duration
	Budget  time.Duration
	Frames  int
}

// RecordXrun logs one missed deadline.
func (h *History) RecordXrun(at time.Time, elapsed, budget time.Duration, frames int) error {
	_, err := h.db.Exec(
		"INSERT INTO xruns (at, elapsed_ns, budget_ns, frames) VALUES (?, ?, ?, ?)",
		at.UnixNano(), elapsed.Nanoseconds(), budget.Nanoseconds(), frames,
	)
	return err
}

// RecordReclaim logs the result of one reclaim pass.
func (h *History) RecordReclaim(at time.Time, scanned, freed, live int) error {
	_, err := h.db.Exec(
		"INSERT INTO reclaim_cycles (at, scanned, freed, live) VALUES (?, ?, ?, ?)",
		at.UnixNano(), scanned, freed, live,
	)
	return err
}

// RecentXruns returns up to n most recent xruns, newest first.
func (h *History) RecentXruns(n int) ([]Xrun, error) {
	rows, err := h.db.Query(
		"SELECT at, elapsed_ns, budget_ns, frames FROM xruns ORDER BY at DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Xrun
	for rows.Next() {
		var at, elapsed, budget int64
		var frames int
		if err := rows.Scan(&at, &elapsed, &budget, &frames); err != nil {
			return nil, err
		}
		out = append(out, Xrun{
			At:      time.Unix(0, at),
			Elapsed: time.Duration(elapsed),
			Budget:  time.Duration(budget),
			Frames:  frames,
		})
	}
	return out, rows.Err()
}

// ReclaimTotals sums freed and scanned blocks across all recorded
// passes.
func (h *History) ReclaimTotals() (scanned, freed uint64, err error) {
	row := h.db.QueryRow("SELECT COALESCE(SUM(scanned), 0), COALESCE(SUM(freed), 0) FROM reclaim_cycles")
	err = row.Scan(&scanned, &freed)
	return scanned, freed, err
}
