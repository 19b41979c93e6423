package storage

import (
	"fmt"
	"sync"
)

// Memory keeps a single best score in process memory. It is used when no
// database is configured or the database cannot be opened.
type Memory struct {
	mu    sync.Mutex
	score int
}

// NewMemory returns a Memory store starting at score.
func NewMemory(score int) *Memory {
	return &Memory{score: max(score, 0)}
}

// LoadHighScore returns the best score seen so far.
func (m *Memory) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SaveHighScore raises the stored score; lower values are ignored.
func (m *Memory) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative score %d", score)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = max(m.score, score)
	return nil
}
