package rng

import "testing"

func TestNew_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, x, y)
		}
	}
}

func TestBetween_Inclusive(t *testing.T) {
	src := New(1)
	sawMin, sawMax := false, false
	for i := 0; i < 2000; i++ {
		v := Between(src, 1, 13)
		if v < 1 || v > 13 {
			t.Fatalf("Between(1, 13) = %d, out of range", v)
		}
		sawMin = sawMin || v == 1
		sawMax = sawMax || v == 13
	}
	if !sawMin || !sawMax {
		t.Errorf("Between(1, 13) never produced an endpoint (min seen %v, max seen %v)", sawMin, sawMax)
	}
}

func TestBetween_CollapsedRange(t *testing.T) {
	if got := Between(New(1), 5, 5); got != 5 {
		t.Errorf("Between(5, 5) = %d, want 5", got)
	}
	if got := Between(New(1), 7, 3); got != 7 {
		t.Errorf("Between(7, 3) = %d, want 7", got)
	}
}

func TestUniform_Range(t *testing.T) {
	src := New(9)
	for i := 0; i < 1000; i++ {
		v := Uniform(src, 80, 720)
		if v < 80 || v >= 720 {
			t.Fatalf("Uniform(80, 720) = %f, out of range", v)
		}
	}
}
