// Package store is the optional SQLite sink: the same tables that go to CSV
// can be mirrored into a single database file for ad-hoc SQL exploration.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/insight-engine/datagen/internal/dataset"
)

// Store wraps the SQLite database holding generated tables.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// WriteTable drops and recreates the domain's table, then inserts all rows
// in one transaction. Cells are stored as the same text the CSV files carry,
// with absent optional values as SQL NULL.
func (s *Store) WriteTable(ctx context.Context, t *dataset.Table) error {
	cols := make([]string, len(t.Header))
	placeholders := make([]string, len(t.Header))
	for i, name := range t.Header {
		cols[i] = quoteIdent(name) + " TEXT"
		placeholders[i] = "?"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction for %s: %w", t.Domain, err)
	}
	defer tx.Rollback()

	table := quoteIdent(t.Domain)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("dropping %s: %w", t.Domain, err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(cols, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating %s: %w", t.Domain, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", t.Domain, err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Header))
	for i, row := range t.Rows {
		for j, v := range row {
			if v == nil {
				args[j] = nil
				continue
			}
			args[j] = dataset.FormatValue(v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting %s row %d: %w", t.Domain, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", t.Domain, err)
	}
	return nil
}

// CountRows returns the number of rows stored for a domain.
func (s *Store) CountRows(ctx context.Context, domain string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(domain)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s rows: %w", domain, err)
	}
	return n, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// quoteIdent wraps an identifier in double quotes. Column names come from
// the fixed domain schemas, so this is shape preservation, not injection
// defense against untrusted input.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
