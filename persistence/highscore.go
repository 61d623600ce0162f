package persistence

import (
	"context"
	"log"
	"sync"
)

// HighScores tracks the session high score over a Store
// Storage failures are logged and never surface to the game
type HighScores struct {
	mu    sync.Mutex
	store Store
	high  int
}

// NewHighScores creates a tracker; call Load before reading High
func NewHighScores(store Store) *HighScores {
	return &HighScores{store: store}
}

// Load reads the stored score once; unreadable storage degrades to 0
func (h *HighScores) Load(ctx context.Context) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	score, err := h.store.Load(ctx)
	if err != nil {
		log.Printf("highscore: load failed, starting from 0: %v", err)
		score = 0
	}
	h.high = score
	return score
}

// High returns the current high score
func (h *HighScores) High() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.high
}

// Submit records a finished round's score
// Returns true when score beat the previous high; the new value is kept in memory even if saving fails
func (h *HighScores) Submit(ctx context.Context, score int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if score <= h.high {
		return false
	}
	h.high = score
	if err := h.store.Save(ctx, score); err != nil {
		log.Printf("highscore: save %d failed: %v", score, err)
	}
	return true
}
