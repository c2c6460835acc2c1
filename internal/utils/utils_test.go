package utils

import (
	"math"
	"testing"
)

func TestDirection(t *testing.T) {
	dx, dy, dist := Direction(0, 0, 3, 4)
	if dist != 5 || math.Abs(dx-0.6) > 1e-12 || math.Abs(dy-0.8) > 1e-12 {
		t.Errorf("Direction = (%v, %v, %v)", dx, dy, dist)
	}

	for _, p := range [][4]float64{
		{1, 1, 1, 1},
		{math.NaN(), 0, 1, 1},
		{math.Inf(1), 0, 1, 1},
	} {
		dx, dy, dist := Direction(p[0], p[1], p[2], p[3])
		if dx != 0 || dy != 0 || dist != 0 {
			t.Errorf("Direction(%v) = (%v, %v, %v), want zeros", p, dx, dy, dist)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("NormalizeAngle(3π) = %v", got)
	}
	if got := NormalizeAngle(0.5 + 4*math.Pi); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("NormalizeAngle = %v, want 0.5", got)
	}
}

func TestDecay(t *testing.T) {
	if got := Decay(5, 2); got != 3 {
		t.Errorf("Decay(5, 2) = %v", got)
	}
	if got := Decay(1, 2); got != 0 {
		t.Errorf("Decay(1, 2) = %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of range")
	}
}

func TestPRNGIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
	if a.Seed() != 99 {
		t.Errorf("Seed = %d", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed was not replaced")
	}
}

func TestPRNGRanges(t *testing.T) {
	r := NewPRNGService(5)
	for i := 0; i < 1000; i++ {
		if v := r.Range(50, 750); v < 50 || v >= 750 {
			t.Fatalf("Range = %v", v)
		}
		if v := r.Spread(8); v < -4 || v >= 4 {
			t.Fatalf("Spread = %v", v)
		}
	}
}
