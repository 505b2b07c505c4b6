// Package scoring turns climb progress and bounce events into the height and
// points scores of the endless bouncer, keeping the bests in the local store.
package scoring

import (
	"fmt"
	"math"

	"turtledepths/pkg/store"
)

// PixelsPerUnit converts climbed pixels to height units.
const PixelsPerUnit = 30

// Milestones are announced once each per run, in order.
var Milestones = []int{10, 25, 50, 100, 200, 300, 500, 750, 1000}

// HeightUpdate describes what changed during one HeightTracker.Update.
type HeightUpdate struct {
	Height     int
	Best       int
	NewRecord  bool
	Milestones []int // reached this update
}

// HeightTracker measures the climb from the start position.
type HeightTracker struct {
	store         store.Store
	startY        float64
	current       int
	best          int
	lastMilestone int
}

// NewHeightTracker starts measuring from startY and loads the stored best height
func NewHeightTracker(s store.Store, startY float64) *HeightTracker {
	return &HeightTracker{
		store:  s,
		startY: startY,
		best:   store.Int(s, store.KeyBestHeight, 0),
	}
}

// HeightAt converts a player y to height units; y grows downwards.
func HeightAt(startY, playerY float64) int {
	return max(0, int(math.Floor((startY-playerY)/PixelsPerUnit)))
}

// Update recomputes the height for playerY, saving a new best when reached.
// The returned error only reports a failed save.
func (h *HeightTracker) Update(playerY float64) (HeightUpdate, error) {
	h.current = HeightAt(h.startY, playerY)
	u := HeightUpdate{Height: h.current}

	var err error
	if h.current > h.best {
		h.best = h.current
		u.NewRecord = true
		if serr := store.SetInt(h.store, store.KeyBestHeight, h.best); serr != nil {
			err = fmt.Errorf("saving best height: %w", serr)
		}
	}

	for _, m := range Milestones {
		if h.current >= m && h.lastMilestone < m {
			u.Milestones = append(u.Milestones, m)
			h.lastMilestone = m
		}
	}

	u.Best = h.best
	return u, err
}

// Current returns the last computed height
func (h *HeightTracker) Current() int {
	return h.current
}

// Best returns the best height, including previous runs
func (h *HeightTracker) Best() int {
	return h.best
}

// Reset starts a new run from startY. The best height is kept.
func (h *HeightTracker) Reset(startY float64) {
	h.startY = startY
	h.current = 0
	h.lastMilestone = 0
}
