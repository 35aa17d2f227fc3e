package core

import (
	"math"
	"testing"
)

func vecApproxEqual(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"DivideVec", b.DivideVec(a), NewVec3(4, -2.5, 2)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Cross anticommutes", NewVec3(0, 1, 0).Cross(NewVec3(1, 0, 0)), NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecApproxEqual(tt.result, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(2, 3, 6)
	if v.Dot(NewVec3(1, 1, 1)) != 11 {
		t.Errorf("Expected dot 11, got %f", v.Dot(NewVec3(1, 1, 1)))
	}
	if v.LengthSquared() != 49 {
		t.Errorf("Expected squared length 49, got %f", v.LengthSquared())
	}
	if v.Length() != 7 {
		t.Errorf("Expected length 7, got %f", v.Length())
	}
	if n := v.Normalize(); math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", n.Length())
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component at threshold", NewVec3(1e-8, 0, 0), false},
		{"regular", NewVec3(0, 0.1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.NearZero() != tt.expected {
				t.Errorf("NearZero(%v) = %v, want %v", tt.v, tt.v.NearZero(), tt.expected)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	// 45 degree incidence on a floor
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	expected := NewVec3(1, 1, 0)
	if got := Reflect(v, n); !vecApproxEqual(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// Head-on reflection reverses the direction
	if got := Reflect(NewVec3(0, 0, -1), NewVec3(0, 0, 1)); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Head-on reflection should reverse direction, got %v", got)
	}
}

func TestRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("ratio 1 passes straight through", func(t *testing.T) {
		uv := NewVec3(1, -1, 0).Normalize()
		got := Refract(uv, n, 1.0)
		if !vecApproxEqual(got, uv, 1e-12) {
			t.Errorf("Expected %v, got %v", uv, got)
		}
	})

	t.Run("snell's law holds", func(t *testing.T) {
		uv := NewVec3(1, -1, 0).Normalize()
		eta := 1.0 / 1.5
		got := Refract(uv, n, eta)

		sinIn := math.Abs(uv.X)
		sinOut := math.Abs(got.X) / got.Length()
		if math.Abs(sinOut-eta*sinIn) > 1e-9 {
			t.Errorf("Expected sin(out) = %f, got %f", eta*sinIn, sinOut)
		}
		if math.Abs(got.Length()-1) > 1e-9 {
			t.Errorf("Refracted unit vector should stay unit length, got %f", got.Length())
		}
		if got.Y >= 0 {
			t.Errorf("Refracted ray should continue below the surface, got %v", got)
		}
	})
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 2, 3), NewVec3(1, 0, -2), 0.25)
	if got := ray.At(2); !got.Equals(NewVec3(3, 2, -1)) {
		t.Errorf("Expected (3,2,-1), got %v", got)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
	if NewRay(Vec3{}, Vec3{}).Time != 0 {
		t.Error("NewRay should default to time 0")
	}
}
