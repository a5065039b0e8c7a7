// Package storage keeps a history of simulated runs in SQLite so headless
// replays can be compared across builds.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, no cgo
)

// ErrRunNotFound is returned by GetRun for unknown ids.
var ErrRunNotFound = errors.New("storage: run not found")

// Store wraps the run history database.
type Store struct {
	db *sql.DB
}

// Run is the outcome of one simulated session.
type Run struct {
	ID        int64
	Stage     string
	Replay    string // source recording, empty for scripted runs
	Frames    int
	FinalX    float32
	FinalY    float32
	VelX      float32
	VelY      float32
	Stance    string
	PowerUp   string
	Digest    uint64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// The digest is kept as hex text; database/sql rejects uint64 values with
// the high bit set.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage TEXT NOT NULL,
			replay TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL,
			final_x REAL NOT NULL,
			final_y REAL NOT NULL,
			vel_x REAL NOT NULL,
			vel_y REAL NOT NULL,
			stance TEXT NOT NULL,
			power_up TEXT NOT NULL,
			digest TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_stage ON runs(stage);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores r and returns its id. r.ID and r.CreatedAt are ignored.
func (s *Store) RecordRun(ctx context.Context, r Run) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO runs
		 (stage, replay, frames, final_x, final_y, vel_x, vel_y, stance, power_up, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Stage, r.Replay, r.Frames, r.FinalX, r.FinalY, r.VelX, r.VelY,
		r.Stance, r.PowerUp, formatDigest(r.Digest),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, stage, replay, frames, final_x, final_y, vel_x, vel_y,
		        stance, power_up, digest, created_at`

// GetRun loads a single run.
func (s *Store) GetRun(ctx context.Context, id int64) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// ListRuns returns the most recent runs first. An empty stage lists every
// stage.
func (s *Store) ListRuns(ctx context.Context, stage string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR stage = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		stage, stage, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// LastDigest returns the digest of the newest run on stage from the given
// replay, or false when none exists.
func (s *Store) LastDigest(ctx context.Context, stage, replay string) (uint64, bool, error) {
	var text string
	err := s.db.QueryRowContext(ctx,
		`SELECT digest FROM runs WHERE stage = ? AND replay = ? ORDER BY id DESC LIMIT 1`,
		stage, replay,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query digest: %w", err)
	}

	d, err := parseDigest(text)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var r Run
	var digest string
	var createdAt any
	if err := row.Scan(&r.ID, &r.Stage, &r.Replay, &r.Frames, &r.FinalX, &r.FinalY,
		&r.VelX, &r.VelY, &r.Stance, &r.PowerUp, &digest, &createdAt); err != nil {
		return nil, err
	}

	d, err := parseDigest(digest)
	if err != nil {
		return nil, err
	}
	r.Digest = d

	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return &r, nil
}

func formatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

func parseDigest(s string) (uint64, error) {
	d, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("storage: bad digest %q: %w", s, err)
	}
	return d, nil
}
