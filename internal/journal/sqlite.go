// Package journal provides SQLite-based practice history: every resolved
// round is recorded so players can review the problems they missed.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the journal lives unless --journal says otherwise.
const DefaultPath = "~/.racer/journal.db"

// Store manages the SQLite database connection for the round journal.
type Store struct {
	db *sql.DB
}

// Round is one resolved round.
type Round struct {
	ID        int64
	SessionID string
	Num1      int
	Num2      int
	Answer    int
	Chosen    int
	Lane      int
	Correct   bool
	CreatedAt time.Time
}

// ProblemStats aggregates every attempt at one problem.
type ProblemStats struct {
	Num1     int
	Num2     int
	Answer   int
	Attempts int
	Misses   int
	LastSeen time.Time
}

// MissRate returns the fraction of attempts that were missed.
func (p ProblemStats) MissRate() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.Misses) / float64(p.Attempts)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("journal: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}
	// SSH sessions write concurrently; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			num1 INTEGER NOT NULL,
			num2 INTEGER NOT NULL,
			answer INTEGER NOT NULL,
			chosen INTEGER NOT NULL,
			lane INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_problem ON rounds(num1, num2);
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

// SaveRound records a resolved round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r Round) (int64, error) {
	correct := 0
	if r.Correct {
		correct = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (session_id, num1, num2, answer, chosen, lane, correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Num1, r.Num2, r.Answer, r.Chosen, r.Lane, correct,
	)
	if err != nil {
		return 0, fmt.Errorf("journal: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMisses retrieves the most recently missed rounds, newest first.
func (s *Store) RecentMisses(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, num1, num2, answer, chosen, lane, correct, created_at
		 FROM rounds
		 WHERE correct = 0
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query misses: %w", err)
	}
	return scanRounds(rows)
}

// SessionRounds retrieves every round of one session in play order.
func (s *Store) SessionRounds(sessionID string) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, num1, num2, answer, chosen, lane, correct, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query session: %w", err)
	}
	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var correct int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Num1, &r.Num2, &r.Answer, &r.Chosen, &r.Lane, &correct, &createdAt); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}
		r.Correct = correct != 0
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}

	return rounds, nil
}

// MissStats aggregates attempts per problem, most missed first.
// Problems that were never missed are left out.
func (s *Store) MissStats(limit int) ([]ProblemStats, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT num1, num2, answer, COUNT(*), SUM(CASE WHEN correct = 0 THEN 1 ELSE 0 END) AS misses, MAX(created_at)
		 FROM rounds
		 GROUP BY num1, num2, answer
		 HAVING misses > 0
		 ORDER BY misses DESC, num1 ASC, num2 ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query miss stats: %w", err)
	}
	defer rows.Close()

	var stats []ProblemStats
	for rows.Next() {
		var p ProblemStats
		var lastSeen any
		if err := rows.Scan(&p.Num1, &p.Num2, &p.Answer, &p.Attempts, &p.Misses, &lastSeen); err != nil {
			return nil, fmt.Errorf("journal: cannot scan stats row: %w", err)
		}
		p.LastSeen = parseTime(lastSeen)
		stats = append(stats, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}

	return stats, nil
}

// Count returns the number of recorded rounds.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&n); err != nil {
		return 0, fmt.Errorf("journal: cannot count rounds: %w", err)
	}
	return n, nil
}

// Clear deletes the whole history.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("journal: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
