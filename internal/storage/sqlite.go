// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// Solve records one completed puzzle. Seed plus board parameters are
// enough to generate the same puzzle again.
type Solve struct {
	ID                 int64
	GameID             string
	Seed               string
	Width, Height      int
	Wrapping           bool
	BarrierProbability float64
	Moves              int
	Elapsed            time.Duration
	CreatedAt          time.Time
}

// GameStats aggregates the solve history of one game.
type GameStats struct {
	GameID     string
	Solved     int
	BestMoves  int
	AvgMoves   float64
	BestTime   time.Duration
	LastSolved time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			wrapping INTEGER NOT NULL DEFAULT 0,
			barrier_probability REAL NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_game_id ON solves(game_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(game_id, moves ASC, elapsed_ms ASC);
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

// SaveSolve records a completed puzzle.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(sv Solve) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves
		 (game_id, seed, width, height, wrapping, barrier_probability, moves, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sv.GameID,
		sv.Seed,
		sv.Width,
		sv.Height,
		sv.Wrapping,
		sv.BarrierProbability,
		sv.Moves,
		sv.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the best N solves for the given game.
// Fewer moves rank first; ties go to the faster solve.
func (s *Store) BestSolves(gameID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, width, height, wrapping, barrier_probability,
		        moves, elapsed_ms, created_at
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY moves ASC, elapsed_ms ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var sv Solve
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(
			&sv.ID, &sv.GameID, &sv.Seed, &sv.Width, &sv.Height, &sv.Wrapping,
			&sv.BarrierProbability, &sv.Moves, &elapsedMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sv.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		sv.CreatedAt = parseTime(createdAt)
		solves = append(solves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// Stats returns aggregate statistics for the given game.
// A game with no solves yields zero values.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var bestMoves, bestMS sql.NullInt64
	var avgMoves sql.NullFloat64
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(moves), AVG(moves), MIN(elapsed_ms), MAX(created_at)
		 FROM solves
		 WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Solved, &bestMoves, &avgMoves, &bestMS, &last)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	stats.BestMoves = int(bestMoves.Int64)
	stats.AvgMoves = avgMoves.Float64
	stats.BestTime = time.Duration(bestMS.Int64) * time.Millisecond
	stats.LastSolved = parseTime(last)
	return stats, nil
}

// ClearSolves deletes all solves for the given game.
func (s *Store) ClearSolves(gameID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime handles the datetime forms the driver may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
