package scoring

import (
	"fmt"
	"math"

	"turtledepths/pkg/game/bounce"
	"turtledepths/pkg/store"
)

// Bounce award values.
const (
	BasePoints   = 10
	MovingBonus  = 8
	TinyBonus    = 12
	TimedBonus   = 16
	StreakLength = 3 // every full streak of this many adds StreakBonus
	StreakBonus  = 3

	DripUnits = 5   // height units per drip point
	TierUnits = 100 // height units per tier bonus
	TierBonus = 100
)

// HeightSource reports the current climb height
type HeightSource interface {
	Current() int
}

// ComboSource reports the active combo multiplier
type ComboSource interface {
	ComboMultiplier() int
}

// BounceAward returns the points for one bounce.
func BounceAward(ev bounce.BounceEvent) int {
	base := BasePoints
	if ev.IsMoving {
		base += MovingBonus
	}
	if ev.IsTiny {
		base += TinyBonus
	}
	if ev.IsTimed {
		base += TimedBonus
	}
	if ev.ConsecutiveBounces >= StreakLength {
		base += ev.ConsecutiveBounces / StreakLength * StreakBonus
	}
	return base * max(1, ev.ComboMultiplier)
}

// TierAward returns the tier bonus at combo multiplier m.
func TierAward(m int) int {
	return int(math.Floor(TierBonus * (1 + 0.5*float64(m-1))))
}

// PointsTracker accumulates points from bounces, height drip and tier bonuses.
// It is registered on the platform manager as a bounce.BounceListener.
type PointsTracker struct {
	store  store.Store
	height HeightSource
	combo  ComboSource

	points            int
	best              int
	lastHeightCounted int
	lastTierAwarded   int
	lastAward         int
}

var _ bounce.BounceListener = (*PointsTracker)(nil)

// NewPointsTracker loads the stored best points
func NewPointsTracker(s store.Store, height HeightSource, combo ComboSource) *PointsTracker {
	return &PointsTracker{
		store:  s,
		height: height,
		combo:  combo,
		best:   store.Int(s, store.KeyBestPoints, 0),
	}
}

// OnBounce awards the points for ev
func (p *PointsTracker) OnBounce(ev bounce.BounceEvent) {
	p.lastAward = BounceAward(ev)
	p.add(p.lastAward)
}

// Update awards the height drip and any tier bonus, then saves a new best.
// It returns the tier bonus awarded this call, if any.
func (p *PointsTracker) Update() (int, error) {
	current := p.height.Current()

	if current > p.lastHeightCounted {
		drip := (current - p.lastHeightCounted) / DripUnits
		if drip > 0 {
			p.add(drip)
			p.lastHeightCounted += drip * DripUnits
		}
	}

	tierBonus := 0
	if tier := current / TierUnits; tier > p.lastTierAwarded {
		tierBonus = TierAward(p.combo.ComboMultiplier())
		p.add(tierBonus)
		p.lastTierAwarded = tier
	}

	if p.points > p.best {
		p.best = p.points
		if err := store.SetInt(p.store, store.KeyBestPoints, p.best); err != nil {
			return tierBonus, fmt.Errorf("saving best points: %w", err)
		}
	}
	return tierBonus, nil
}

func (p *PointsTracker) add(n int) {
	p.points += max(0, n)
}

// Points returns the points of the current run
func (p *PointsTracker) Points() int {
	return p.points
}

// Best returns the best points, including previous runs
func (p *PointsTracker) Best() int {
	return p.best
}

// LastAward returns the points given for the most recent bounce
func (p *PointsTracker) LastAward() int {
	return p.lastAward
}

// Reset starts a new run. The best is kept.
func (p *PointsTracker) Reset() {
	p.points = 0
	p.lastHeightCounted = 0
	p.lastTierAwarded = 0
	p.lastAward = 0
}
