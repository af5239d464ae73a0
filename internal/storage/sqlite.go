// Package storage provides the SQLite implementation of the Store interface.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/farmadados/farmacorpus/internal/models"
)

// ErrNotFound is returned when a run or term does not exist.
var ErrNotFound = errors.New("not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and
// initializes the schema. Parent directories are created if they do
// not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		dataset TEXT NOT NULL,
		dataset_checksum TEXT,
		identifier TEXT NOT NULL,
		rows INTEGER NOT NULL,
		indexed INTEGER NOT NULL,
		empty_compositions INTEGER NOT NULL,
		terms INTEGER NOT NULL,
		synonym_terms INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

	CREATE TABLE IF NOT EXISTS terms (
		run_id TEXT NOT NULL,
		term TEXT NOT NULL,
		position INTEGER NOT NULL,
		names TEXT NOT NULL,
		PRIMARY KEY (run_id, term),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_terms_run_position ON terms(run_id, position);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveRun inserts a run and all corpus entries in one transaction. Term
// rows keep the corpus insertion order through their position column.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *models.BuildRun, corpus *models.Corpus) error {
	run.CreatedAt = time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, dataset, dataset_checksum, identifier, rows, indexed,
		                   empty_compositions, terms, synonym_terms, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Dataset, run.DatasetChecksum, run.Identifier, run.Rows, run.Indexed,
		run.EmptyCompositions, run.Terms, run.SynonymTerms, run.DurationMs, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO terms (run_id, term, position, names) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pos := 0
	var insertErr error
	corpus.Walk(func(term string, names []string) {
		if insertErr != nil {
			return
		}
		namesJSON, err := json.Marshal(names)
		if err != nil {
			insertErr = fmt.Errorf("marshal names for %q: %w", term, err)
			return
		}
		if _, err := stmt.ExecContext(ctx, run.ID, term, pos, string(namesJSON)); err != nil {
			insertErr = fmt.Errorf("insert term %q: %w", term, err)
			return
		}
		pos++
	})
	if insertErr != nil {
		return insertErr
	}
	return tx.Commit()
}

// GetRun returns a run by ID.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*models.BuildRun, error) {
	run, err := scanRun(s.db.QueryRowContext(ctx,
		`SELECT id, dataset, dataset_checksum, identifier, rows, indexed,
		        empty_compositions, terms, synonym_terms, duration_ms, created_at
		 FROM runs WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	return run, err
}

// LatestRun returns the most recent run, or ErrNotFound when the
// database has none.
func (s *SQLiteStore) LatestRun(ctx context.Context) (*models.BuildRun, error) {
	run, err := scanRun(s.db.QueryRowContext(ctx,
		`SELECT id, dataset, dataset_checksum, identifier, rows, indexed,
		        empty_compositions, terms, synonym_terms, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("latest run: %w", ErrNotFound)
	}
	return run, err
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*models.BuildRun, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, dataset, dataset_checksum, identifier, rows, indexed,
		        empty_compositions, terms, synonym_terms, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.BuildRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// TermNames returns the product names stored under term for a run.
func (s *SQLiteStore) TermNames(ctx context.Context, runID, term string) ([]string, error) {
	var namesJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT names FROM terms WHERE run_id = ? AND term = ?`, runID, term,
	).Scan(&namesJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("term %q: %w", term, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal([]byte(namesJSON), &names); err != nil {
		return nil, fmt.Errorf("unmarshal names for %q: %w", term, err)
	}
	return names, nil
}

// ListTerms returns up to limit terms of a run in corpus order,
// optionally filtered by prefix. A non-positive limit returns all terms.
func (s *SQLiteStore) ListTerms(ctx context.Context, runID, prefix string, limit int) ([]models.TermEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT term, position, names FROM terms
		 WHERE run_id = ? AND term LIKE ? || '%'
		 ORDER BY position LIMIT ?`,
		runID, prefix, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.TermEntry
	for rows.Next() {
		var entry models.TermEntry
		var namesJSON string
		if err := rows.Scan(&entry.Term, &entry.Position, &namesJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(namesJSON), &entry.Names); err != nil {
			return nil, fmt.Errorf("unmarshal names for %q: %w", entry.Term, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CountTerms returns the number of terms stored for a run.
func (s *SQLiteStore) CountTerms(ctx context.Context, runID string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM terms WHERE run_id = ?`, runID).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.BuildRun, error) {
	var run models.BuildRun
	err := row.Scan(&run.ID, &run.Dataset, &run.DatasetChecksum, &run.Identifier,
		&run.Rows, &run.Indexed, &run.EmptyCompositions, &run.Terms,
		&run.SynonymTerms, &run.DurationMs, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
