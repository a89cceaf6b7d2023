package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS steps (
	step_id     TEXT PRIMARY KEY,
	raw         REAL NOT NULL,
	norm        REAL NOT NULL,
	depth       REAL NOT NULL,
	threshold   REAL NOT NULL,
	level       TEXT NOT NULL,
	reason      TEXT NOT NULL,
	warmth      REAL NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_steps_created_at ON steps(created_at);
`

// #endregion schema

// #region store
// Store appends pipeline results to a SQLite journal. It is a write-only
// observability sink from the pipeline's point of view: the controller
// never reads its state back from here.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region append
// Append writes one pipeline result as a journal row.
func (s *Store) Append(res pipeline.Result) error {
	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO steps (step_id, raw, norm, depth, threshold, level, reason, warmth, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.StepID, res.Raw, res.Norm, res.Depth, res.Threshold,
		string(res.Level), res.Reason, res.Warmth,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append step: %w", err)
	}
	return nil
}

// #endregion append

// #region recent
// Recent returns the most recent journaled steps, newest first.
func (s *Store) Recent(limit int) ([]pipeline.Result, error) {
	rows, err := s.db.Query(
		`SELECT step_id, raw, norm, depth, threshold, level, reason, warmth, created_at
		 FROM steps ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer rows.Close()

	var results []pipeline.Result
	for rows.Next() {
		var res pipeline.Result
		var level string
		var createdStr string
		if err := rows.Scan(&res.StepID, &res.Raw, &res.Norm, &res.Depth,
			&res.Threshold, &level, &res.Reason, &res.Warmth, &createdStr); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		res.Level = gate.Level(level)
		res.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		results = append(results, res)
	}
	return results, rows.Err()
}

// #endregion recent

// #region counts
// CountByLevel returns how many journaled steps landed in each safety level.
func (s *Store) CountByLevel() (map[gate.Level]int, error) {
	rows, err := s.db.Query(`SELECT level, COUNT(*) FROM steps GROUP BY level`)
	if err != nil {
		return nil, fmt.Errorf("count by level: %w", err)
	}
	defer rows.Close()

	counts := make(map[gate.Level]int)
	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[gate.Level(level)] = n
	}
	return counts, rows.Err()
}

// #endregion counts
