// Package articlestore reads the dump database produced by the download
// tooling: a single entries(title, content) table holding one row per
// article. The store is read-only.
package articlestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/heartmarshall/flont-backend/internal/domain"
)

// Store provides read access to a dump database file.
type Store struct {
	db *sql.DB
}

// Open opens the dump database. The file must already exist; a missing
// dump is reported as domain.ErrUnavailable rather than lazily creating an
// empty database.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dump file %s: %w", path, domain.ErrUnavailable)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open dump %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping dump %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the total number of articles in the dump.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// Iterate streams articles to fn in storage order. A non-zero max bounds
// the number of rows read. Iteration stops at the first error returned by
// fn, which is passed through unchanged.
func (s *Store) Iterate(ctx context.Context, max int, fn func(title, content string) error) error {
	query := `SELECT title, content FROM entries`
	args := []any{}
	if max > 0 {
		query += ` LIMIT ?`
		args = append(args, max)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var title, content string
		if err := rows.Scan(&title, &content); err != nil {
			return fmt.Errorf("scan article: %w", err)
		}
		if err := fn(title, content); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate articles: %w", err)
	}
	return nil
}
