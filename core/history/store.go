// Package history persists one row per generation run for later inspection.
// The log is auxiliary telemetry: writes are best-effort and never influence
// generation results.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jmngeo/seqpt/core/generation"
)

const schema = `
CREATE TABLE IF NOT EXISTS generation_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id TEXT NOT NULL,
	competency TEXT NOT NULL,
	role TEXT NOT NULL,
	archetype TEXT NOT NULL,
	quality REAL NOT NULL,
	met_threshold INTEGER NOT NULL,
	is_fallback INTEGER NOT NULL,
	iterations INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_competency ON generation_runs(competency);
`

// Run is one persisted generation run.
type Run struct {
	ID           int64     `json:"id"`
	RequestID    string    `json:"request_id"`
	Competency   string    `json:"competency"`
	Role         string    `json:"role"`
	Archetype    string    `json:"archetype"`
	Quality      float64   `json:"quality"`
	MetThreshold bool      `json:"met_threshold"`
	IsFallback   bool      `json:"is_fallback"`
	Iterations   int       `json:"iterations"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store is the sqlite-backed run log.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the run log at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordResult appends one generation result.
func (s *Store) RecordResult(ctx context.Context, result *generation.Result) error {
	quality := 0.0
	if result.Assessment != nil {
		quality = result.Assessment.OverallQuality
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_runs
			(request_id, competency, role, archetype, quality, met_threshold, is_fallback, iterations, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.RequestID,
		result.Metadata.Competency,
		result.Metadata.Role,
		result.Metadata.Archetype,
		quality,
		boolToInt(result.Assessment != nil && result.Assessment.MeetsThreshold),
		boolToInt(result.IsFallback),
		result.Metadata.Iterations,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record generation run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, competency, role, archetype, quality, met_threshold, is_fallback, iterations, created_at
		FROM generation_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query generation runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			met, fb   int
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.RequestID, &r.Competency, &r.Role, &r.Archetype,
			&r.Quality, &met, &fb, &r.Iterations, &createdAt); err != nil {
			return nil, fmt.Errorf("scan generation run: %w", err)
		}
		r.MetThreshold = met != 0
		r.IsFallback = fb != 0
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
