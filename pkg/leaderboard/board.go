package leaderboard

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Board stores leaderboard entries
type Board interface {
	// Add stores e and trims the board to MaxEntries.
	Add(ctx context.Context, e Entry) (Entry, error)
	// Top returns up to limit entries, best first.
	Top(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// MemoryBoard keeps a sorted slice in memory
type MemoryBoard struct {
	mutex   sync.RWMutex
	entries []Entry
}

// NewMemoryBoard creates an empty board
func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{}
}

// Add inserts e in order and drops everything past MaxEntries
func (mb *MemoryBoard) Add(_ context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	mb.mutex.Lock()
	defer mb.mutex.Unlock()

	i := sort.Search(len(mb.entries), func(i int) bool {
		return less(e, mb.entries[i])
	})
	mb.entries = append(mb.entries, Entry{})
	copy(mb.entries[i+1:], mb.entries[i:])
	mb.entries[i] = e

	if len(mb.entries) > MaxEntries {
		mb.entries = mb.entries[:MaxEntries]
	}
	return e, nil
}

// Top returns a copy of the best limit entries
func (mb *MemoryBoard) Top(_ context.Context, limit int) ([]Entry, error) {
	mb.mutex.RLock()
	defer mb.mutex.RUnlock()

	n := min(max(limit, 0), len(mb.entries))
	out := make([]Entry, n)
	copy(out, mb.entries[:n])
	return out, nil
}

// Len returns the number of stored entries
func (mb *MemoryBoard) Len() int {
	mb.mutex.RLock()
	defer mb.mutex.RUnlock()
	return len(mb.entries)
}

// Close is a no-op for the memory board
func (mb *MemoryBoard) Close() error {
	return nil
}
