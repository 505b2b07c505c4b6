// Package leaderboard is the remote high-score service of the endless
// bouncer: the HTTP API, its storage boards, a live websocket feed of new
// scores and the best-effort client the game uses.
package leaderboard

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Board limits.
const (
	MaxEntries   = 200 // entries kept after each insert
	DefaultLimit = 10
	MaxLimit     = 50
)

// MaxHeight is the largest storable height (the Postgres column is INTEGER).
const MaxHeight = math.MaxInt32

// ErrInvalidEntry is returned for a submission without a name or with a
// height that is not a number in [0, MaxHeight].
var ErrInvalidEntry = errors.New("invalid payload")

// Entry is one leaderboard row. Timestamp is milliseconds since the epoch.
type Entry struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	Height    int    `json:"height"`
	Timestamp int64  `json:"timestamp"`
}

// Submission is the POST body. Height is a pointer so a missing height can be
// told apart from zero.
type Submission struct {
	Name   string   `json:"name"`
	Height *float64 `json:"height"`
}

// Entry validates s and builds the entry to store, stamped with now.
func (s Submission) Entry(now time.Time) (Entry, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" || s.Height == nil || math.IsNaN(*s.Height) || *s.Height < 0 || *s.Height > MaxHeight {
		return Entry{}, ErrInvalidEntry
	}
	return Entry{
		Name:      name,
		Height:    int(*s.Height),
		Timestamp: now.UnixMilli(),
	}, nil
}

// ClampLimit parses the limit query parameter. Missing, zero or unparsable
// values give DefaultLimit; the result is clamped to [1, MaxLimit].
func ClampLimit(raw string) int {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v == 0 || math.IsNaN(v) {
		return DefaultLimit
	}
	return int(math.Max(1, math.Min(MaxLimit, v)))
}

// less orders entries by height descending, then earliest first.
func less(a, b Entry) bool {
	if a.Height != b.Height {
		return a.Height > b.Height
	}
	return a.Timestamp < b.Timestamp
}
