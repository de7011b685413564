// internal/store/memory.go
//
// Result store interface and its in-memory implementation.
// The in-memory store backs tests and the stats API when durability is not
// required.
//
// Characteristics:
//   - Keeps game.Result values in insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"strings"
	"sync"

	"github.com/robalobadob/wordle-cli/internal/game"
)

// Store defines the persistence interface for finished games.
// Implementations are backed by a CSV file, SQLite, or memory.
type Store interface {
	// Append persists one finished game.
	Append(ctx context.Context, r game.Result) error

	// AllForUser returns the user's games in the order they were appended.
	// Usernames match case-insensitively.
	AllForUser(ctx context.Context, username string) ([]game.Result, error)
}

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex  // guards results
	results []game.Result // append order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Append adds the result to the end of the slice.
func (m *memory) Append(ctx context.Context, r game.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// AllForUser filters stored results by username.
func (m *memory) AllForUser(ctx context.Context, username string) ([]game.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []game.Result
	for _, r := range m.results {
		if strings.EqualFold(r.Username, username) {
			out = append(out, r)
		}
	}
	return out, nil
}
