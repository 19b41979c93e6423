// Package storage provides SQLite-based persistence for the best score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPlayer is the key used for local play.
const DefaultPlayer = "local"

// Store manages the SQLite database connection for high score persistence.
// Each player has exactly one row holding their best score.
type Store struct {
	db *sql.DB
}

// HighScoreEntry is one player's best score.
type HighScoreEntry struct {
	Player    string
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
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

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			player TEXT PRIMARY KEY,
			score INTEGER NOT NULL CHECK (score >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// HighScore returns the best score for the given player.
// Returns 0 if none has been recorded.
func (s *Store) HighScore(player string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE player = ?",
		player,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore records score for the player if it beats the stored one.
// A lower score leaves the row untouched, so concurrent sessions of the
// same player can only raise it.
func (s *Store) SaveHighScore(player string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative score %d", score)
	}
	_, err := s.db.Exec(
		`INSERT INTO high_scores (player, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
		   score = excluded.score,
		   updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		player, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ResetHighScore deletes the player's best score.
func (s *Store) ResetHighScore(player string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// HighScores lists every player's best score, highest first.
func (s *Store) HighScores(limit int) ([]HighScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT player, score, updated_at
		 FROM high_scores
		 ORDER BY score DESC, player
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []HighScoreEntry
	for rows.Next() {
		var e HighScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.Player, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// For binds the store to one player. The result satisfies the session's
// high score interface.
func (s *Store) For(player string) *PlayerScore {
	return &PlayerScore{store: s, player: player}
}

// PlayerScore is a Store scoped to a single player.
type PlayerScore struct {
	store  *Store
	player string
}

// LoadHighScore returns the player's best score, or 0 when none exists.
func (p *PlayerScore) LoadHighScore() (int, error) {
	return p.store.HighScore(p.player)
}

// SaveHighScore records a new best score for the player.
func (p *PlayerScore) SaveHighScore(score int) error {
	return p.store.SaveHighScore(p.player, score)
}
