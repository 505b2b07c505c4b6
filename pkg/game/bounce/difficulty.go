// Package bounce generates the climbing platforms of the endless bouncer and
// tracks their bounce lifecycle and the combo counter.
package bounce

import "math"

// Difficulty holds the scalars derived from the current climb height.
// It is recomputed from height alone and carries no other state.
type Difficulty struct {
	Multiplier         float64
	MovingChance       float64
	TinyChance         float64
	TimedDespawnChance float64
	MoveSpeedBase      float64 // px/s before Multiplier
	MinSpacing         float64
	MaxSpacing         float64
}

// interpolation ramps: each feature starts at a height and reaches its cap
// rampLength units later.
const (
	rampLength = 1500

	movingStartHeight = 500
	tinyStartHeight   = 800
	timedStartHeight  = 900
)

// UpdateDifficulty derives the difficulty for height.
func UpdateDifficulty(height float64) Difficulty {
	d := Difficulty{
		Multiplier:    1 + (height/1000)*0.5,
		MoveSpeedBase: 80,
		TinyChance:    0.02,
	}

	spacing := math.Min(height/500, 1)
	d.MinSpacing = 120 + spacing*30
	d.MaxSpacing = 200 + spacing*50

	if height >= movingStartHeight {
		t := ramp(height, movingStartHeight)
		d.MovingChance = 0.1 + 0.2*t
		d.MoveSpeedBase = 80 + 40*t
	}
	if height >= tinyStartHeight {
		d.TinyChance = 0.05 + 0.15*ramp(height, tinyStartHeight)
	}
	if height >= timedStartHeight {
		d.TimedDespawnChance = 0.05 + 0.1*ramp(height, timedStartHeight)
	}

	return d
}

func ramp(height, start float64) float64 {
	return math.Min((height-start)/rampLength, 1)
}
