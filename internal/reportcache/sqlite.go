package reportcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cwbudde/algo-fluor/efficiency"
)

const schema = `CREATE TABLE IF NOT EXISTS reports (
	key        TEXT PRIMARY KEY,
	config     TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	expires_at INTEGER
)`

// SQLite stores reports as JSON rows in a single table.
type SQLite struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// OpenSQLite opens or creates the cache database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create reports table: %w", err)
	}
	return &SQLite{db: db, path: path, now: time.Now}, nil
}

// Path returns the database file location.
func (s *SQLite) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the report stored under key, if present and not expired.
func (s *SQLite) Get(ctx context.Context, key string) (*efficiency.Report, bool, error) {
	var (
		payload string
		expires sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM reports WHERE key = ?`, key,
	).Scan(&payload, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query report %s: %w", key, err)
	}
	if expires.Valid && s.now().UnixNano() >= expires.Int64 {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE key = ?`, key); err != nil {
			return nil, false, fmt.Errorf("delete expired report %s: %w", key, err)
		}
		return nil, false, nil
	}

	var report efficiency.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, false, fmt.Errorf("decode report %s: %w", key, err)
	}
	return &report, true, nil
}

// Put stores report under key, replacing any previous row. A zero ttl never
// expires.
func (s *SQLite) Put(ctx context.Context, key string, report *efficiency.Report, ttl time.Duration) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report %s: %w", key, err)
	}
	now := s.now()
	var expires sql.NullInt64
	if ttl > 0 {
		expires = sql.NullInt64{Int64: now.Add(ttl).UnixNano(), Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (key, config, payload, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   config = excluded.config,
		   payload = excluded.payload,
		   created_at = excluded.created_at,
		   expires_at = excluded.expires_at`,
		key, report.Config, string(payload), now.UnixNano(), expires,
	)
	if err != nil {
		return fmt.Errorf("store report %s: %w", key, err)
	}
	return nil
}

// Prune deletes expired rows and returns how many were removed.
func (s *SQLite) Prune(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM reports WHERE expires_at IS NOT NULL AND expires_at <= ?`, s.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("prune reports: %w", err)
	}
	return res.RowsAffected()
}
