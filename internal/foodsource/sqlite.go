// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package foodsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

// SQLiteSource serves foods from a local reference database, such as an
// exported nutrition dataset. Matching foods can be imported into the
// catalog with `diet-tracker food import`.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens or creates the reference database at path and ensures
// the schema exists.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening food source database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS foods (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		keywords TEXT,
		calories REAL NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating food source schema: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Close releases the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) Name() string        { return "sqlite" }
func (s *SQLiteSource) Description() string { return "SQLite reference food database" }

// Lookup fetches a single food by ID.
func (s *SQLiteSource) Lookup(ctx context.Context, id string) (*types.Food, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, keywords, calories FROM foods WHERE id = ?`, id)

	f, err := scanFood(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite source lookup %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite source lookup %s: %w", id, err)
	}
	return f, nil
}

// Search returns foods whose name or keyword list contains the query,
// case-insensitively, sorted by ID.
func (s *SQLiteSource) Search(ctx context.Context, query string) ([]types.Food, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, keywords, calories FROM foods
		 WHERE name LIKE ? COLLATE NOCASE OR keywords LIKE ? COLLATE NOCASE
		 ORDER BY id`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("sqlite source search: %w", err)
	}
	defer rows.Close()

	var out []types.Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite source search: %w", err)
		}
		out = append(out, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite source search: %w", err)
	}
	return out, nil
}

// Put inserts or replaces a food in the reference database. Used to build
// reference datasets and by tests.
func (s *SQLiteSource) Put(ctx context.Context, f types.Food) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO foods (id, name, keywords, calories) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, keywords=excluded.keywords, calories=excluded.calories`,
		f.ID, f.Name, strings.Join(f.Keywords, ","), f.Calories)
	if err != nil {
		return fmt.Errorf("storing food %s: %w", f.ID, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFood(s scanner) (*types.Food, error) {
	var f types.Food
	var keywords sql.NullString
	if err := s.Scan(&f.ID, &f.Name, &keywords, &f.Calories); err != nil {
		return nil, err
	}
	if keywords.Valid && keywords.String != "" {
		f.Keywords = types.SplitKeywords(keywords.String)
	}
	return &f, nil
}
