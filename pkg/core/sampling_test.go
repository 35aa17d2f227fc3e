package core

import (
	"math"
	"testing"
)

func TestRandomUnitVector_IsUnitLength(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 10000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d has length %f, want 1", i, v.Length())
		}
	}
}

func TestRandomUnitVector_CoversSphere(t *testing.T) {
	sampler := NewSeededSampler(7)
	var sum Vec3
	octants := make(map[[3]bool]int)
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		sum = sum.Add(v)
		octants[[3]bool{v.X > 0, v.Y > 0, v.Z > 0}]++
	}

	// A uniform distribution on the sphere has zero mean
	mean := sum.Divide(n)
	if mean.Length() > 0.03 {
		t.Errorf("Mean direction should be near zero, got %v", mean)
	}
	if len(octants) != 8 {
		t.Errorf("Expected samples in all 8 octants, got %d", len(octants))
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 10000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Sample %d outside unit disk: %v", i, p)
		}
		if p.Z != 0 {
			t.Fatalf("Sample %d should lie in the z=0 plane: %v", i, p)
		}
	}
}

func TestRandomVec3InRange(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		v := RandomVec3InRange(sampler, -2, 3)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("Component %f outside [-2, 3)", c)
			}
		}
		u := RandomVec3(sampler)
		for _, c := range []float64{u.X, u.Y, u.Z} {
			if c < 0 || c >= 1 {
				t.Fatalf("Component %f outside [0, 1)", c)
			}
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with the same seed should produce identical sequences")
		}
	}
}
