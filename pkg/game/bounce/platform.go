package bounce

import (
	"math"

	"turtledepths/pkg/engine/rng"
)

// PlatformID identifies a platform record for the lifetime of a run.
// Renderers look platforms up by ID rather than holding pointers.
type PlatformID uint64

// State is the position of a platform in its bounce lifecycle.
type State int

const (
	Unbounced State = iota
	Bounced
	Removed
)

func (s State) String() string {
	switch s {
	case Unbounced:
		return "Unbounced"
	case Bounced:
		return "Bounced"
	case Removed:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Platform placement and lifecycle constants (pixels and milliseconds).
const (
	SpawnOffset           = 80  // spawn platform sits this far above the viewport bottom
	EdgeMargin            = 80  // new platforms keep this far from either side
	MaxHorizontalDistance = 500 // reachability bound from the previous platform
	MinBaseSpacing        = 180
	MaxBaseSpacing        = 250
	VisualTypes           = 13

	MoveEdgeMargin = 50 // moving platforms reverse this far from either side

	TimedDespawnDelay = 1500
	WiggleDuration    = 60 * 2 * 4 // 60ms swing, yoyo, repeated 3 times
	CleanupMargin     = 500
)

// Platform is the pure data record of one platform.
type Platform struct {
	ID PlatformID

	X float64
	Y float64

	VisualType     int // 1..VisualTypes, cosmetic only
	IsMoving       bool
	MoveDirection  int // -1 or +1 when IsMoving, else 0
	IsTiny         bool
	IsTimedDespawn bool

	State State

	age      float64 // ms since creation
	removeIn float64 // ms until removal once Bounced
}

// Bounced reports whether the platform has taken its one bounce
func (p Platform) Bounced() bool {
	return p.State != Unbounced
}

// Next draws the platform that follows the one generated at (lastX, lastY).
// viewportWidth bounds the horizontal draw; allowMoving is false for the
// first platform after a reset.
func Next(src rng.Source, lastX, lastY float64, d Difficulty, viewportWidth float64, allowMoving bool) Platform {
	baseSpacing := float64(rng.Between(src, MinBaseSpacing, MaxBaseSpacing))
	y := lastY - baseSpacing*d.Multiplier

	x := nextX(src, lastX, viewportWidth)

	moving := rng.Chance(src, d.MovingChance) && allowMoving

	return newPlatform(src, x, y, moving, d)
}

// nextX draws an x within MaxHorizontalDistance of lastX, keeping EdgeMargin
// from both sides. A collapsed window falls back to the centre.
func nextX(src rng.Source, lastX, viewportWidth float64) float64 {
	minX := math.Ceil(math.Max(EdgeMargin, lastX-MaxHorizontalDistance))
	maxX := math.Floor(math.Min(viewportWidth-EdgeMargin, lastX+MaxHorizontalDistance))
	if minX >= maxX {
		return viewportWidth / 2
	}
	return float64(rng.Between(src, int(minX), int(maxX)))
}

// newPlatform rolls the cosmetic type and the tiny, direction and timed flags.
func newPlatform(src rng.Source, x, y float64, moving bool, d Difficulty) Platform {
	p := Platform{
		X:          x,
		Y:          y,
		VisualType: rng.Between(src, 1, VisualTypes),
		IsMoving:   moving,
	}
	p.IsTiny = rng.Chance(src, d.TinyChance)
	if moving {
		p.MoveDirection = 1
		if rng.Chance(src, 0.5) {
			p.MoveDirection = -1
		}
	}
	p.IsTimedDespawn = rng.Chance(src, d.TimedDespawnChance)
	return p
}
