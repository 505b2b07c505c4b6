package bounce

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUpdateDifficulty_Height0(t *testing.T) {
	d := UpdateDifficulty(0)
	checks := []struct {
		name      string
		got, want float64
	}{
		{"MovingChance", d.MovingChance, 0},
		{"TinyChance", d.TinyChance, 0.02},
		{"TimedDespawnChance", d.TimedDespawnChance, 0},
		{"MinSpacing", d.MinSpacing, 120},
		{"MaxSpacing", d.MaxSpacing, 200},
		{"Multiplier", d.Multiplier, 1},
		{"MoveSpeedBase", d.MoveSpeedBase, 80},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("UpdateDifficulty(0).%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestUpdateDifficulty_Height2000(t *testing.T) {
	d := UpdateDifficulty(2000)
	if !almostEqual(d.MovingChance, 0.3) {
		t.Errorf("MovingChance = %v, want 0.3", d.MovingChance)
	}
	if !almostEqual(d.MoveSpeedBase, 120) {
		t.Errorf("MoveSpeedBase = %v, want 120", d.MoveSpeedBase)
	}
	if !almostEqual(d.Multiplier, 2) {
		t.Errorf("Multiplier = %v, want 2", d.Multiplier)
	}
	if !almostEqual(d.MinSpacing, 150) || !almostEqual(d.MaxSpacing, 250) {
		t.Errorf("spacing = [%v,%v], want [150,250]", d.MinSpacing, d.MaxSpacing)
	}
}

func TestUpdateDifficulty_Thresholds(t *testing.T) {
	tests := []struct {
		height                    float64
		moving, tiny, timedChance float64
	}{
		{499, 0, 0.02, 0},
		{500, 0.1, 0.02, 0},
		{800, 0.14, 0.05, 0},
		{900, 0.1 + 0.2*400.0/1500, 0.05 + 0.15*100.0/1500, 0.05},
		{2400, 0.3, 0.2, 0.15},
		{10000, 0.3, 0.2, 0.15},
	}
	for _, tt := range tests {
		d := UpdateDifficulty(tt.height)
		if !almostEqual(d.MovingChance, tt.moving) {
			t.Errorf("height %v: MovingChance = %v, want %v", tt.height, d.MovingChance, tt.moving)
		}
		if !almostEqual(d.TinyChance, tt.tiny) {
			t.Errorf("height %v: TinyChance = %v, want %v", tt.height, d.TinyChance, tt.tiny)
		}
		if !almostEqual(d.TimedDespawnChance, tt.timedChance) {
			t.Errorf("height %v: TimedDespawnChance = %v, want %v", tt.height, d.TimedDespawnChance, tt.timedChance)
		}
	}
}

func TestUpdateDifficulty_MonotoneAndBounded(t *testing.T) {
	prev := UpdateDifficulty(0)
	for h := 1.0; h <= 5000; h++ {
		d := UpdateDifficulty(h)
		if d.MovingChance < prev.MovingChance || d.TinyChance < prev.TinyChance || d.TimedDespawnChance < prev.TimedDespawnChance {
			t.Fatalf("height %v: chances decreased from %+v to %+v", h, prev, d)
		}
		if d.MovingChance > 0.3+1e-9 || d.TinyChance > 0.2+1e-9 || d.TimedDespawnChance > 0.15+1e-9 {
			t.Fatalf("height %v: chance above cap: %+v", h, d)
		}
		prev = d
	}
}
