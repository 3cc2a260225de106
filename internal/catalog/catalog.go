// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records generated ribs in a SQLite database so reruns
// can skip unchanged work and operators can inspect past runs.
// Implements: prd005-catalog (R1-R4);
//
//	docs/ARCHITECTURE § Catalog.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ribforge/pkg/types"
)

const exportLimit = 10000

// Store manages the generation catalog database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the catalog database at cfg.Path, creating the
// schema and parent directory as needed (R1.2, R1.3).
func Open(cfg types.CatalogConfig) (*Store, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ribs (
			set_name TEXT NOT NULL,
			rib_name TEXT NOT NULL,
			airfoil TEXT NOT NULL,
			chord REAL NOT NULL,
			incidence REAL NOT NULL,
			outline_points INTEGER NOT NULL,
			hole_count INTEGER NOT NULL,
			dxf_path TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			generated_at TEXT NOT NULL,
			PRIMARY KEY (set_name, rib_name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ribs_airfoil ON ribs(airfoil)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Entry is one catalog row: a generated rib and its provenance (R1.1).
type Entry struct {
	Set           string    `json:"set" yaml:"set"`
	Rib           string    `json:"rib" yaml:"rib"`
	Airfoil       string    `json:"airfoil" yaml:"airfoil"`
	Chord         float64   `json:"chord" yaml:"chord"`
	Incidence     float64   `json:"incidence" yaml:"incidence"`
	OutlinePoints int       `json:"outline_points" yaml:"outline_points"`
	HoleCount     int       `json:"hole_count" yaml:"hole_count"`
	DXFPath       string    `json:"dxf_path" yaml:"dxf_path"`
	Fingerprint   string    `json:"fingerprint" yaml:"fingerprint"`
	GeneratedAt   time.Time `json:"generated_at" yaml:"generated_at"`
}

// Record upserts one catalog entry, keyed by set and rib name (R2.1).
func (s *Store) Record(ctx context.Context, e Entry) error {
	ts := e.GeneratedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ribs (set_name, rib_name, airfoil, chord, incidence,
			outline_points, hole_count, dxf_path, fingerprint, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(set_name, rib_name) DO UPDATE SET
			airfoil=excluded.airfoil, chord=excluded.chord,
			incidence=excluded.incidence, outline_points=excluded.outline_points,
			hole_count=excluded.hole_count, dxf_path=excluded.dxf_path,
			fingerprint=excluded.fingerprint, generated_at=excluded.generated_at`,
		e.Set, e.Rib, e.Airfoil, e.Chord, e.Incidence,
		e.OutlinePoints, e.HoleCount, e.DXFPath, e.Fingerprint,
		ts.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording rib %s/%s: %w", e.Set, e.Rib, err)
	}
	return nil
}

// Unchanged reports whether the stored fingerprint for set/rib matches
// fingerprint (R2.2). Unknown ribs and query errors report false, which
// regenerates.
func (s *Store) Unchanged(ctx context.Context, set, rib, fingerprint string) bool {
	var stored string
	err := s.db.QueryRowContext(ctx,
		`SELECT fingerprint FROM ribs WHERE set_name = ? AND rib_name = ?`,
		set, rib,
	).Scan(&stored)
	return err == nil && stored == fingerprint
}

// Filter narrows List results (R3.2, R3.3).
type Filter struct {
	// Set restricts results to one rib set.
	Set string

	// Airfoil restricts results to ribs cut from one airfoil.
	Airfoil string

	// Limit caps the result count. Zero uses the store default.
	Limit int
}

// List returns catalog entries ordered by set then rib name (R3.1).
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT set_name, rib_name, airfoil, chord, incidence,
			outline_points, hole_count, dxf_path, fingerprint, generated_at
		FROM ribs
		WHERE 1=1`)

	if f.Set != "" {
		qb.WriteString(` AND set_name = ?`)
		args = append(args, f.Set)
	}
	if f.Airfoil != "" {
		qb.WriteString(` AND airfoil = ?`)
		args = append(args, f.Airfoil)
	}

	qb.WriteString(` ORDER BY set_name, rib_name LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts string
		)
		if err := rows.Scan(
			&e.Set, &e.Rib, &e.Airfoil, &e.Chord, &e.Incidence,
			&e.OutlinePoints, &e.HoleCount, &e.DXFPath, &e.Fingerprint, &ts,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.GeneratedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportYAML writes catalog entries to path as YAML (R4.1). It supports
// the same filters as List.
func (s *Store) ExportYAML(ctx context.Context, path string, f Filter) error {
	f.Limit = exportLimit
	entries, err := s.List(ctx, f)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
