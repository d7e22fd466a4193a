package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"retime/internal/config"
	"retime/internal/retimer"
)

// Run is one recorded retiming.
type Run struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	ReferencePath string        `json:"reference_path"`
	RevisedPath   string        `json:"revised_path"`
	OutputPath    string        `json:"output_path"`
	Stats         retimer.Stats `json:"stats"`
}

// NewRun builds a Run with a fresh identifier and timestamp.
func NewRun(referencePath, revisedPath, outputPath string, stats retimer.Stats) Run {
	return Run{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		ReferencePath: referencePath,
		RevisedPath:   revisedPath,
		OutputPath:    outputPath,
		Stats:         stats,
	}
}

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database under the
// configured state directory. Schema creation is guarded by a file lock so
// concurrent first runs do not race.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.History.StateDir, "history.db")

	lock := flock.New(dbPath + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock history db: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one run.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (
            id, created_at, reference_path, revised_path, output_path,
            reference_words, revised_words, unchanged, removed, added,
            uncalibrated, resolved
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.ReferencePath,
		run.RevisedPath,
		run.OutputPath,
		run.Stats.ReferenceWords,
		run.Stats.RevisedWords,
		run.Stats.Unchanged,
		run.Stats.Removed,
		run.Stats.Added,
		run.Stats.Uncalibrated,
		run.Stats.Resolved,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit of 0 or less
// means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, created_at, reference_path, revised_path, output_path,
        reference_words, revised_words, unchanged, removed, added,
        uncalibrated, resolved
        FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.ID, &createdAt, &run.ReferencePath, &run.RevisedPath, &run.OutputPath,
			&run.Stats.ReferenceWords, &run.Stats.RevisedWords, &run.Stats.Unchanged,
			&run.Stats.Removed, &run.Stats.Added, &run.Stats.Uncalibrated,
			&run.Stats.Resolved,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Clear deletes every recorded run and returns the number removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}
