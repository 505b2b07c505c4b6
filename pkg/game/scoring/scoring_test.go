package scoring

import (
	"reflect"
	"testing"

	"turtledepths/pkg/game/bounce"
	"turtledepths/pkg/store"
)

type fixedHeight int

func (f *fixedHeight) Current() int { return int(*f) }

type fixedCombo int

func (c fixedCombo) ComboMultiplier() int { return int(c) }

func TestHeightAt(t *testing.T) {
	tests := []struct {
		startY, playerY float64
		want            int
	}{
		{500, 500, 0},
		{500, 600, 0},
		{500, 471, 0},
		{500, 470, 1},
		{500, -2500, 100},
	}
	for _, tt := range tests {
		if got := HeightAt(tt.startY, tt.playerY); got != tt.want {
			t.Errorf("HeightAt(%v, %v) = %d, want %d", tt.startY, tt.playerY, got, tt.want)
		}
	}
}

func TestHeightTracker_BestAndMilestones(t *testing.T) {
	s := store.NewMemoryStore()
	store.SetInt(s, store.KeyBestHeight, 20)
	h := NewHeightTracker(s, 0)

	u, err := h.Update(-30 * 15)
	if err != nil {
		t.Fatal(err)
	}
	if u.Height != 15 || u.NewRecord || u.Best != 20 {
		t.Errorf("Update(15 units) = %+v, want height 15, best 20, no record", u)
	}
	if !reflect.DeepEqual(u.Milestones, []int{10}) {
		t.Errorf("Milestones = %v, want [10]", u.Milestones)
	}

	u, _ = h.Update(-30 * 60)
	if !u.NewRecord || u.Best != 60 {
		t.Errorf("Update(60 units) = %+v, want new record 60", u)
	}
	if !reflect.DeepEqual(u.Milestones, []int{25, 50}) {
		t.Errorf("Milestones = %v, want [25 50]", u.Milestones)
	}
	if got := store.Int(s, store.KeyBestHeight, 0); got != 60 {
		t.Errorf("stored best = %d, want 60", got)
	}

	u, _ = h.Update(-30 * 61)
	if len(u.Milestones) != 0 {
		t.Errorf("Milestones = %v, want none on repeat", u.Milestones)
	}

	h.Reset(0)
	u, _ = h.Update(-30 * 12)
	if !reflect.DeepEqual(u.Milestones, []int{10}) || h.Best() != 61 {
		t.Errorf("after Reset: milestones %v best %d, want [10] and 61", u.Milestones, h.Best())
	}
}

func TestBounceAward(t *testing.T) {
	tests := []struct {
		name string
		ev   bounce.BounceEvent
		want int
	}{
		{"plain", bounce.BounceEvent{ConsecutiveBounces: 1, ComboMultiplier: 1}, 10},
		{"moving", bounce.BounceEvent{IsMoving: true, ConsecutiveBounces: 1, ComboMultiplier: 1}, 18},
		{"all modifiers", bounce.BounceEvent{IsMoving: true, IsTiny: true, IsTimed: true, ConsecutiveBounces: 2, ComboMultiplier: 1}, 46},
		{"streak of 3", bounce.BounceEvent{ConsecutiveBounces: 3, ComboMultiplier: 1}, 13},
		{"streak of 7 x2", bounce.BounceEvent{ConsecutiveBounces: 7, ComboMultiplier: 2}, 32},
		{"zero multiplier", bounce.BounceEvent{ConsecutiveBounces: 1, ComboMultiplier: 0}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BounceAward(tt.ev); got != tt.want {
				t.Errorf("BounceAward = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTierAward(t *testing.T) {
	for m, want := range map[int]int{1: 100, 2: 150, 3: 200} {
		if got := TierAward(m); got != want {
			t.Errorf("TierAward(%d) = %d, want %d", m, got, want)
		}
	}
}

func TestPointsTracker(t *testing.T) {
	s := store.NewMemoryStore()
	var h fixedHeight
	p := NewPointsTracker(s, &h, fixedCombo(2))

	p.OnBounce(bounce.BounceEvent{ConsecutiveBounces: 1, ComboMultiplier: 1})
	if p.Points() != 10 || p.LastAward() != 10 {
		t.Errorf("after bounce: points %d last %d, want 10", p.Points(), p.LastAward())
	}

	h = 12
	bonus, err := p.Update()
	if err != nil {
		t.Fatal(err)
	}
	if bonus != 0 || p.Points() != 12 {
		t.Errorf("drip: bonus %d points %d, want 0 and 12", bonus, p.Points())
	}

	h = 104
	bonus, _ = p.Update()
	// drip: 12 units counted as 10, (104-10)/5 = 18
	if bonus != 150 || p.Points() != 12+18+150 {
		t.Errorf("tier: bonus %d points %d, want 150 and %d", bonus, p.Points(), 12+18+150)
	}
	if got := store.Int(s, store.KeyBestPoints, 0); got != p.Points() {
		t.Errorf("stored best = %d, want %d", got, p.Points())
	}

	p.Reset()
	if p.Points() != 0 || p.Best() != 180 {
		t.Errorf("after Reset: points %d best %d, want 0 and 180", p.Points(), p.Best())
	}
}

func TestPointsTracker_ListensToManager(t *testing.T) {
	var h fixedHeight
	m := bounce.NewManager(nil, bounce.Viewport{})
	p := NewPointsTracker(store.NewMemoryStore(), &h, m)
	m.AddListener(p)

	var _ ComboSource = m
	if p.Points() != 0 {
		t.Errorf("Points() = %d, want 0", p.Points())
	}
}
