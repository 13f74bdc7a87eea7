package utils

import "testing"

func TestIntRangeInclusive(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{name: "symmetric velocity range", min: -3, max: 3},
		{name: "spawn range", min: 20, max: 780},
		{name: "single value", min: 7, max: 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := NewPRNGService(42)
			seen := make(map[int]bool)
			for i := 0; i < 5000; i++ {
				v := rng.IntRange(tc.min, tc.max)
				if v < tc.min || v > tc.max {
					t.Fatalf("IntRange(%d, %d) = %d, out of range", tc.min, tc.max, v)
				}
				seen[v] = true
			}
			if tc.max-tc.min <= 10 {
				for v := tc.min; v <= tc.max; v++ {
					if !seen[v] {
						t.Errorf("value %d never produced in 5000 draws", v)
					}
				}
			}
		})
	}
}

func TestIntRangeInvertedBounds(t *testing.T) {
	rng := NewPRNGService(1)
	if got := rng.IntRange(5, 2); got != 5 {
		t.Errorf("IntRange(5, 2) = %d, expected 5", got)
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := NewPRNGService(12345)
	b := NewPRNGService(12345)
	for i := 0; i < 100; i++ {
		if va, vb := a.IntRange(-3, 3), b.IntRange(-3, 3); va != vb {
			t.Fatalf("draw %d differs: %d != %d", i, va, vb)
		}
	}
}

func TestZeroSeedUsesTime(t *testing.T) {
	rng := NewPRNGService(0)
	if rng.Seed() == 0 {
		t.Error("expected time-based seed, got 0")
	}
}
