// Package storage provides SQLite-based persistence for finished session
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished play session.
type SessionRecord struct {
	ID        int64
	Score     int
	Steps     int
	LivesLost int
	Variant   string
	Scheme    string
	AutoPlay  bool
	CreatedAt time.Time
}

// VariantStats contains aggregate statistics for one display variant.
type VariantStats struct {
	Variant    string
	Sessions   int
	HighScore  int
	AvgScore   float64
	AvgSteps   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			lives_lost INTEGER NOT NULL DEFAULT 0,
			variant TEXT NOT NULL,
			scheme TEXT NOT NULL,
			auto_play INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_variant ON sessions(variant);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session. Returns the inserted record ID.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (score, steps, lives_lost, variant, scheme, auto_play)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Score, rec.Steps, rec.LivesLost, rec.Variant, rec.Scheme, boolToInt(rec.AutoPlay),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent finished sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, steps, lives_lost, variant, scheme, auto_play, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// TopSessions retrieves the highest-scoring sessions.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, steps, lives_lost, variant, scheme, auto_play, created_at
		 FROM sessions
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the highest recorded score, or 0 if no sessions exist.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// StatsByVariant retrieves aggregate statistics grouped by display variant.
func (s *Store) StatsByVariant() ([]VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), AVG(score), AVG(steps), MAX(created_at)
		 FROM sessions
		 GROUP BY variant
		 ORDER BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variant stats: %w", err)
	}
	defer rows.Close()

	var stats []VariantStats
	for rows.Next() {
		var vs VariantStats
		var lastPlayed any
		if err := rows.Scan(&vs.Variant, &vs.Sessions, &vs.HighScore, &vs.AvgScore, &vs.AvgSteps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastPlayed = parseDBTime(lastPlayed)
		stats = append(stats, vs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// scanSession reads one session row.
func scanSession(rows *sql.Rows) (SessionRecord, error) {
	var rec SessionRecord
	var autoPlay int
	var createdAt any

	if err := rows.Scan(&rec.ID, &rec.Score, &rec.Steps, &rec.LivesLost,
		&rec.Variant, &rec.Scheme, &autoPlay, &createdAt); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	rec.AutoPlay = autoPlay != 0
	rec.CreatedAt = parseDBTime(createdAt)
	return rec, nil
}

// parseDBTime handles the driver returning datetimes as either time.Time
// or string.
func parseDBTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", val); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
