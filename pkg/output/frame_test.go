package output

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected uint8
	}{
		{"black", 0, 0},
		{"negative clamps to zero", -0.5, 0},
		{"NaN is black", math.NaN(), 0},
		{"negative infinity is black", math.Inf(-1), 0},
		{"quarter becomes half after gamma", 0.25, 128},
		{"one saturates below 256", 1.0, 255},
		{"overexposed saturates", 4.0, 255},
		{"positive infinity saturates", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.linear); got != tt.expected {
				t.Errorf("ToByte(%f) = %d, want %d", tt.linear, got, tt.expected)
			}
		})
	}
}

func TestFrame_Image(t *testing.T) {
	frame := NewFrame(3, 2)
	frame.Set(0, 0, core.NewVec3(1, 0, 0.25))
	frame.Set(2, 1, core.NewVec3(0.01, 0.04, 0.09))

	if !frame.At(2, 1).Equals(core.NewVec3(0.01, 0.04, 0.09)) {
		t.Fatalf("At should return what Set stored, got %v", frame.At(2, 1))
	}
	if frame.Pixels[5] != frame.At(2, 1) {
		t.Error("Pixels should be stored in row-major order")
	}

	img := frame.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}

	c := img.RGBAAt(0, 0)
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Errorf("Unexpected pixel (0,0): %+v", c)
	}
	c = img.RGBAAt(2, 1)
	if c.R != 25 || c.G != 51 || c.B != 76 {
		t.Errorf("Unexpected pixel (2,1): %+v", c)
	}
}
