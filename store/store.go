// Package store keeps a history of sizing results in SQLite.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ghx_sizing/ghx"
)

// Store wraps a SQLite connection.
type Store struct {
	conn *sqlx.DB
}

// Record is the summary row of one stored sizing.
type Record struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	CreatedUnix    int64          `db:"created_at"`
	NumBoreHoles   int            `db:"num_bore_holes"`
	BoreDepth      float64        `db:"bore_depth"`
	Config         ghx.BoreConfig `db:"bore_config"`
	SpacingToDepth float64        `db:"spacing_to_depth"`
	TotalLength    float64        `db:"total_length"`
	LoopFlow       float64        `db:"loop_flow"`
	Warnings       int            `db:"warnings"`
}

// Created is the time the sizing was saved.
func (r Record) Created() time.Time {
	return time.Unix(r.CreatedUnix, 0)
}

// Open opens or creates a history database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sizings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		num_bore_holes INTEGER NOT NULL,
		bore_depth REAL NOT NULL,
		bore_config TEXT NOT NULL,
		spacing_to_depth REAL NOT NULL,
		total_length REAL NOT NULL,
		loop_flow REAL NOT NULL,
		warnings INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS warnings (
		sizing_id INTEGER NOT NULL REFERENCES sizings(id),
		code TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sizings_name ON sizings(name);
	CREATE INDEX IF NOT EXISTS idx_warnings_sizing ON warnings(sizing_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save stores a sizing result and its warnings, returning the new id.
func (s *Store) Save(res *ghx.SizingResult, at time.Time) (int64, error) {
	body, err := json.Marshal(res)
	if err != nil {
		return 0, fmt.Errorf("encode result: %w", err)
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	r, err := tx.Exec(`INSERT INTO sizings
		(name, created_at, num_bore_holes, bore_depth, bore_config, spacing_to_depth,
		 total_length, loop_flow, warnings, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Name, at.Unix(), res.Layout.NumBoreHoles, res.Layout.BoreDepth, string(res.Layout.Config),
		res.Layout.SpacingToDepthRatio, res.Layout.TotalLength(), res.LoopFlow, len(res.Warnings), string(body),
	)
	if err != nil {
		return 0, fmt.Errorf("insert sizing: %w", err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(res.Warnings) > 0 {
		stmt, err := tx.Preparex("INSERT INTO warnings (sizing_id, code, message) VALUES (?, ?, ?)")
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, w := range res.Warnings {
			if _, err := stmt.Exec(id, string(w.Code), w.Message); err != nil {
				return 0, fmt.Errorf("insert warning: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Recent returns the most recent sizings, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	var records []Record
	err := s.conn.Select(&records,
		`SELECT id, name, created_at, num_bore_holes, bore_depth, bore_config, spacing_to_depth,
		 total_length, loop_flow, warnings
		 FROM sizings ORDER BY id DESC LIMIT ?`,
		limit,
	)
	return records, err
}

// ByName returns every sizing of a project, newest first.
func (s *Store) ByName(name string) ([]Record, error) {
	var records []Record
	err := s.conn.Select(&records,
		`SELECT id, name, created_at, num_bore_holes, bore_depth, bore_config, spacing_to_depth,
		 total_length, loop_flow, warnings
		 FROM sizings WHERE name = ? ORDER BY id DESC`,
		name,
	)
	return records, err
}

// Warnings returns the warnings of a stored sizing in the order they were raised.
func (s *Store) Warnings(id int64) ([]ghx.Warning, error) {
	var ws []ghx.Warning
	err := s.conn.Select(&ws, "SELECT code, message FROM warnings WHERE sizing_id = ? ORDER BY rowid", id)
	return ws, err
}

// Result returns the full stored result.
func (s *Store) Result(id int64) (*ghx.SizingResult, error) {
	var body string
	if err := s.conn.Get(&body, "SELECT result_json FROM sizings WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("sizing %d: %w", id, err)
	}

	var res ghx.SizingResult
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, fmt.Errorf("decode sizing %d: %w", id, err)
	}
	return &res, nil
}
