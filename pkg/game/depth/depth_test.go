package depth

import "testing"

func TestBandFor(t *testing.T) {
	tests := []struct {
		depth int
		want  Band
	}{
		{-3, Shallows},
		{0, Shallows},
		{1, Shallows},
		{2, Reef},
		{3, Trench},
		{5, Trench},
		{6, Abyss},
		{40, Abyss},
	}
	for _, tt := range tests {
		if got := BandFor(tt.depth); got != tt.want {
			t.Errorf("BandFor(%d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestFeatureGates(t *testing.T) {
	if MerchantAllowed(1) {
		t.Error("MerchantAllowed(1) = true, want false")
	}
	if !MerchantAllowed(2) {
		t.Error("MerchantAllowed(2) = false, want true")
	}
	if TreasureAllowed(2) {
		t.Error("TreasureAllowed(2) = true, want false")
	}
	if !TreasureAllowed(3) {
		t.Error("TreasureAllowed(3) = false, want true")
	}
}

func TestNextDepth(t *testing.T) {
	if got := NextDepth(1); got != 2 {
		t.Errorf("NextDepth(1) = %d, want 2", got)
	}
	if got := NextDepth(0); got != 2 {
		t.Errorf("NextDepth(0) = %d, want 2 (0 normalizes to 1)", got)
	}
}

func TestFlavourKey_BandsDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range []int{1, 2, 3, 6} {
		seen[FlavourKey(d)] = true
	}
	if len(seen) != 4 {
		t.Errorf("FlavourKey produced %d distinct keys for the four bands, want 4", len(seen))
	}
	if FlavourText(1) == "" {
		t.Error("FlavourText(1) is empty")
	}
}
