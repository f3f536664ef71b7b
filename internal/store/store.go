// Package store exports reports to SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tagstat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Ranking kinds stored in the rankings table.
const (
	rankingFiles    = "files"
	rankingTags     = "tags"
	rankingFileTags = "file_tags"
)

// Store wraps SQLite access for exported runs.
type Store struct {
	db *sql.DB
}

// RunInfo describes one exported run.
type RunInfo struct {
	ID        string
	ReportID  string
	CreatedAt time.Time
	Files     int
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			report_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			files INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS files (
			run_id TEXT NOT NULL,
			name TEXT NOT NULL,
			records INTEGER NOT NULL,
			words INTEGER NOT NULL,
			PRIMARY KEY (run_id, name)
		);`,
		`CREATE TABLE IF NOT EXISTS file_tags (
			run_id TEXT NOT NULL,
			file TEXT NOT NULL,
			tag TEXT NOT NULL,
			records INTEGER NOT NULL,
			words INTEGER NOT NULL,
			PRIMARY KEY (run_id, file, tag)
		);`,
		`CREATE TABLE IF NOT EXISTS tags (
			run_id TEXT NOT NULL,
			tag TEXT NOT NULL,
			records INTEGER NOT NULL,
			words INTEGER NOT NULL,
			PRIMARY KEY (run_id, tag)
		);`,
		`CREATE TABLE IF NOT EXISTS rankings (
			run_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			owner TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (run_id, kind, owner, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_file_tags_tag ON file_tags(tag);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveReport stores one run and every statistic of its report in a single transaction.
func (s *Store) SaveReport(ctx context.Context, runID string, report model.Report) (err error) {
	if runID == "" {
		return errors.New("run id must not be empty")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, report_id, created_at, files) VALUES (?, ?, ?, ?)`,
		runID, report.ID, time.Now().UTC().Format(time.RFC3339Nano), len(report.Files),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range report.Files {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO files (run_id, name, records, words) VALUES (?, ?, ?, ?)`,
			runID, f.Name, f.TotalRecords, f.TotalWords,
		); err != nil {
			return fmt.Errorf("insert file %s: %w", f.Name, err)
		}
		for tag, c := range f.Tags {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO file_tags (run_id, file, tag, records, words) VALUES (?, ?, ?, ?, ?)`,
				runID, f.Name, tag, c.Records, c.Words,
			); err != nil {
				return fmt.Errorf("insert file tag %s/%s: %w", f.Name, tag, err)
			}
		}
		if err = insertRanking(ctx, tx, runID, rankingFileTags, f.Name, f.TopTags); err != nil {
			return err
		}
	}

	for tag, c := range report.Tags {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO tags (run_id, tag, records, words) VALUES (?, ?, ?, ?)`,
			runID, tag, c.Records, c.Words,
		); err != nil {
			return fmt.Errorf("insert tag %s: %w", tag, err)
		}
	}
	if err = insertRanking(ctx, tx, runID, rankingFiles, "", report.Totals.ChattyFiles); err != nil {
		return err
	}
	if err = insertRanking(ctx, tx, runID, rankingTags, "", report.Totals.ChattyTags); err != nil {
		return err
	}

	return tx.Commit()
}

func insertRanking(ctx context.Context, tx *sql.Tx, runID, kind, owner string, names []string) error {
	for i, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rankings (run_id, kind, owner, position, name) VALUES (?, ?, ?, ?, ?)`,
			runID, kind, owner, i+1, name,
		); err != nil {
			return fmt.Errorf("insert %s ranking: %w", kind, err)
		}
	}
	return nil
}

// ListRuns returns exported runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, report_id, created_at, files FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var createdAt string
		if err := rows.Scan(&info.ID, &info.ReportID, &createdAt, &info.Files); err != nil {
			return nil, err
		}
		info.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at of run %s: %w", info.ID, err)
		}
		runs = append(runs, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ListRankings returns the global rankings stored for a run.
func (s *Store) ListRankings(ctx context.Context, runID string) (model.Rankings, error) {
	files, err := s.listRanking(ctx, runID, rankingFiles, "")
	if err != nil {
		return model.Rankings{}, err
	}
	tags, err := s.listRanking(ctx, runID, rankingTags, "")
	if err != nil {
		return model.Rankings{}, err
	}
	return model.Rankings{ChattyFiles: files, ChattyTags: tags}, nil
}

// ListFileTopTags returns the ranked tags stored for one file of a run.
func (s *Store) ListFileTopTags(ctx context.Context, runID, file string) ([]string, error) {
	return s.listRanking(ctx, runID, rankingFileTags, file)
}

func (s *Store) listRanking(ctx context.Context, runID, kind, owner string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM rankings WHERE run_id = ? AND kind = ? AND owner = ? ORDER BY position`,
		runID, kind, owner)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// GetTag returns the global counts of a tag for a run. The boolean reports whether the tag exists.
func (s *Store) GetTag(ctx context.Context, runID, tag string) (model.TagCount, bool, error) {
	var c model.TagCount
	err := s.db.QueryRowContext(ctx,
		`SELECT records, words FROM tags WHERE run_id = ? AND tag = ?`,
		runID, tag,
	).Scan(&c.Records, &c.Words)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TagCount{}, false, nil
	}
	if err != nil {
		return model.TagCount{}, false, err
	}
	return c, true, nil
}
