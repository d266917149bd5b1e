package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on every open. IF NOT EXISTS makes it
// safe to run repeatedly.
const schema = `
CREATE TABLE IF NOT EXISTS figures (
    id         TEXT PRIMARY KEY,
    label      TEXT NOT NULL,
    start_year INTEGER NOT NULL,
    end_year   INTEGER,
    category   TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store persists the figure catalog in a local SQLite database in WAL
// mode. Chart state (lanes, scroll, selection) is deliberately never
// stored here; only the input dataset is.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema if needed.
func OpenStore(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: open database: %w", err)
	}

	// One connection: SQLite has a single writer, and a lone pooled
	// connection keeps the PRAGMA setup consistent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Put inserts or updates a figure.
func (s *Store) Put(ctx context.Context, f Figure) error {
	const q = `
		INSERT INTO figures (id, label, start_year, end_year, category, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			label      = excluded.label,
			start_year = excluded.start_year,
			end_year   = excluded.end_year,
			category   = excluded.category,
			updated_at = CURRENT_TIMESTAMP`
	var end sql.NullInt64
	if f.End != nil {
		end = sql.NullInt64{Int64: int64(*f.End), Valid: true}
	}
	if _, err := s.db.ExecContext(ctx, q, f.ID, f.Label, f.Start, end, f.Category); err != nil {
		return fmt.Errorf("catalog: put figure %q: %w", f.ID, err)
	}
	return nil
}

// Get returns one figure by ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Figure, error) {
	const q = `SELECT id, label, start_year, end_year, category FROM figures WHERE id = ?`
	f, err := scanFigure(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Figure{}, fmt.Errorf("catalog: %w: %q", ErrNotFound, id)
	}
	if err != nil {
		return Figure{}, fmt.Errorf("catalog: get figure %q: %w", id, err)
	}
	return f, nil
}

// Delete removes a figure by ID. Returns ErrNotFound for an unknown ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM figures WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("catalog: delete figure %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("catalog: delete rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("catalog: %w: %q", ErrNotFound, id)
	}
	return nil
}

// List returns every figure ordered by start year, then ID. The order is
// stable so repeated chart builds see identical input order.
func (s *Store) List(ctx context.Context) ([]Figure, error) {
	const q = `SELECT id, label, start_year, end_year, category
		FROM figures ORDER BY start_year, id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("catalog: list figures: %w", err)
	}
	defer rows.Close()

	var out []Figure
	for rows.Next() {
		f, err := scanFigure(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: scan figure: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate figures: %w", err)
	}
	return out, nil
}

// Import upserts a batch of figures in a single transaction.
func (s *Store) Import(ctx context.Context, figures []Figure) error {
	if len(figures) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin import tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	const q = `
		INSERT INTO figures (id, label, start_year, end_year, category, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			label      = excluded.label,
			start_year = excluded.start_year,
			end_year   = excluded.end_year,
			category   = excluded.category,
			updated_at = CURRENT_TIMESTAMP`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return fmt.Errorf("catalog: prepare import: %w", err)
	}
	defer stmt.Close()

	for _, f := range figures {
		var end sql.NullInt64
		if f.End != nil {
			end = sql.NullInt64{Int64: int64(*f.End), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, f.ID, f.Label, f.Start, end, f.Category); err != nil {
			return fmt.Errorf("catalog: import figure %q: %w", f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit import: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanFigure(row scanner) (Figure, error) {
	var f Figure
	var end sql.NullInt64
	if err := row.Scan(&f.ID, &f.Label, &f.Start, &end, &f.Category); err != nil {
		return Figure{}, err
	}
	if end.Valid {
		v := int(end.Int64)
		f.End = &v
	}
	return f, nil
}
