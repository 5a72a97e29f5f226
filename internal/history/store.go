// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records probe runs in a SQLite database so a researcher
// can compare how the same queries behaved over time. Recorded outcomes are
// never read back into a run.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/search-probe/pkg/types"
)

const defaultLimit = 10

// Run is one recorded probe run.
type Run struct {
	ID            int64
	Started       time.Time
	Authenticated bool
	Outcomes      []types.Outcome
}

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			authenticated INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outcomes (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			query TEXT NOT NULL,
			kind TEXT NOT NULL,
			status_code INTEGER,
			total_count INTEGER,
			item_count INTEGER,
			first_login TEXT,
			message TEXT,
			rate_limit INTEGER,
			rate_remaining INTEGER,
			elapsed_ms INTEGER,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_query ON outcomes(query)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a run and its outcomes in one transaction and returns the run ID.
func (s *Store) Record(ctx context.Context, started time.Time, authenticated bool, outcomes []types.Outcome) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, authenticated) VALUES (?, ?)`,
		started.UTC().Format(time.RFC3339Nano), boolInt(authenticated),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO outcomes (run_id, position, query, kind, status_code, total_count,
			item_count, first_login, message, rate_limit, rate_remaining, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range outcomes {
		_, err := stmt.ExecContext(ctx,
			runID, i, o.Query, string(o.Kind), o.StatusCode, o.TotalCount,
			o.ItemCount, o.FirstLogin, o.Message, o.RateLimit.Limit, o.RateLimit.Remaining,
			o.Elapsed.Milliseconds(),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting outcome %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns up to limit runs, newest first, each with its outcomes in
// query order. A non-positive limit uses 10.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, authenticated FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
			auth    int
		)
		if err := rows.Scan(&r.ID, &started, &auth); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Started, _ = time.Parse(time.RFC3339Nano, started)
		r.Authenticated = auth != 0
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		outcomes, err := s.outcomes(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Outcomes = outcomes
	}
	return runs, nil
}

func (s *Store) outcomes(ctx context.Context, runID int64) ([]types.Outcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT query, kind, status_code, total_count, item_count, first_login,
			message, rate_limit, rate_remaining, elapsed_ms
		 FROM outcomes WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []types.Outcome
	for rows.Next() {
		var (
			o         types.Outcome
			kind      string
			elapsedMS int64
		)
		if err := rows.Scan(&o.Query, &kind, &o.StatusCode, &o.TotalCount, &o.ItemCount,
			&o.FirstLogin, &o.Message, &o.RateLimit.Limit, &o.RateLimit.Remaining, &elapsedMS); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		o.Kind = types.OutcomeKind(kind)
		o.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		out = append(out, o)
	}
	return out, rows.Err()
}

// FormatRuns writes runs as human-readable text to w.
func FormatRuns(runs []Run, w io.Writer) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return
	}

	for _, r := range runs {
		mode := "public"
		if r.Authenticated {
			mode = "token"
		}
		fmt.Fprintf(w, "Run #%d  %s  (%s)\n", r.ID, r.Started.Local().Format("2006-01-02 15:04:05"), mode)
		for _, o := range r.Outcomes {
			fmt.Fprintf(w, "  %-45s  %s\n", truncate(o.Query, 45), summarize(o))
		}
		fmt.Fprintln(w)
	}
}

func summarize(o types.Outcome) string {
	switch o.Kind {
	case types.OutcomeSuccess:
		s := fmt.Sprintf("%d  total=%d items=%d", o.StatusCode, o.TotalCount, o.ItemCount)
		if o.FirstLogin != "" {
			s += " first=" + o.FirstLogin
		}
		return s
	case types.OutcomeHTTPError:
		return fmt.Sprintf("%d  error: %s", o.StatusCode, o.Message)
	default:
		return "exception: " + firstLine(o.Message)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
