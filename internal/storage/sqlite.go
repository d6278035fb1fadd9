// Package storage provides SQLite-based persistence for round results and
// saved games. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrSnapshotNotFound is returned when a snapshot slot does not exist.
var ErrSnapshotNotFound = errors.New("storage: snapshot not found")

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Round is a finished round as stored in the database.
type Round struct {
	ID            string
	Outcome       string // "win", "lose" or "tie"
	HumanScore    int
	ComputerScore int
	Difficulty    string
	CreatedAt     time.Time
}

// Stats summarizes every stored round.
type Stats struct {
	Rounds int
	Wins   int
	Losses int
	Ties   int
}

// SnapshotInfo describes a saved slot without its payload.
type SnapshotInfo struct {
	Slot      string
	State     string
	Size      int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			outcome TEXT NOT NULL,
			human_score INTEGER NOT NULL,
			computer_score INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);

		CREATE TABLE IF NOT EXISTS snapshots (
			slot TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			state TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
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

// SaveRound records a finished round and returns its generated ID.
func (s *Store) SaveRound(outcome string, human, computer int, difficulty string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds (id, outcome, human_score, computer_score, difficulty, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, outcome, human, computer, difficulty, s.now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// RecentRounds returns the latest rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, human_score, computer_score, difficulty, created_at
		 FROM rounds
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var created int64
		if err := rows.Scan(&r.ID, &r.Outcome, &r.HumanScore, &r.ComputerScore, &r.Difficulty, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.Unix(0, created)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Stats counts stored rounds by outcome.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'win'), 0),
		        COALESCE(SUM(outcome = 'lose'), 0),
		        COALESCE(SUM(outcome = 'tie'), 0)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.Wins, &st.Losses, &st.Ties)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// SaveSnapshot stores data in slot, replacing any previous contents.
func (s *Store) SaveSnapshot(slot string, data []byte, state string) error {
	if slot == "" {
		return errors.New("storage: snapshot slot name is empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO snapshots (slot, data, state, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
			data = excluded.data,
			state = excluded.state,
			updated_at = excluded.updated_at`,
		slot, data, state, s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot %q: %w", slot, err)
	}
	return nil
}

// LoadSnapshot returns the data saved in slot.
// It returns ErrSnapshotNotFound if the slot is empty.
func (s *Store) LoadSnapshot(slot string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM snapshots WHERE slot = ?", slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrSnapshotNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load snapshot %q: %w", slot, err)
	}
	return data, nil
}

// ListSnapshots returns every saved slot, most recently updated first.
func (s *Store) ListSnapshots() ([]SnapshotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, state, length(data), updated_at
		 FROM snapshots
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var infos []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		var updated int64
		if err := rows.Scan(&info.Slot, &info.State, &info.Size, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = time.Unix(0, updated)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteSnapshot removes a slot. It returns ErrSnapshotNotFound if the slot
// does not exist.
func (s *Store) DeleteSnapshot(slot string) error {
	res, err := s.db.Exec("DELETE FROM snapshots WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot %q: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot %q: %w", slot, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrSnapshotNotFound, slot)
	}
	return nil
}
