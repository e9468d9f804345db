package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"sudosolve/internal/domain"
	"sudosolve/internal/ports"
)

// Store keeps puzzles in a single-file SQLite database. The grid is
// stored as its JSON encoding; everything queried for listings has its
// own column.
type Store struct{ db *sql.DB }

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	difficulty INTEGER NOT NULL DEFAULT 1,
	grid       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_puzzles_created_at ON puzzles(created_at);
`

// Open creates the database file (and its parent directory) as needed
// and prepares the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	grid, err := json.Marshal(p.Grid)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, notes, difficulty, grid, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			difficulty = excluded.difficulty,
			grid = excluded.grid
	`, p.ID, p.Name, p.Notes, int(p.Difficulty), string(grid), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("save puzzle: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var (
		p    domain.Puzzle
		diff int
		grid string
	)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, notes, difficulty, grid, created_at FROM puzzles WHERE id = ?`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Notes, &diff, &grid, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ports.ErrNotFound, id)
		}
		return nil, err
	}
	p.Difficulty = domain.Difficulty(diff)
	if err := json.Unmarshal([]byte(grid), &p.Grid); err != nil {
		return nil, fmt.Errorf("decode grid for %s: %w", id, err)
	}
	return &p, nil
}

func (s *Store) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, difficulty, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var (
			m    domain.PuzzleMeta
			diff int
		)
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM puzzles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ports.ErrNotFound, id)
	}
	return nil
}
