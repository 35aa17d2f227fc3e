package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Frame holds linear, averaged radiance per pixel in row-major order, top row first.
// Distinct rows may be written concurrently.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame creates a black frame of the given size
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// intensity is the displayable range before scaling to bytes
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies gamma 2 correction. Negative and NaN values map to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToByte converts one linear color channel to an 8-bit display value
func ToByte(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}

// ToRGBA converts a linear color to a gamma-corrected, opaque 8-bit color
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: ToByte(c.X),
		G: ToByte(c.Y),
		B: ToByte(c.Z),
		A: 255,
	}
}

// Image returns the frame as a displayable 8-bit image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, ToRGBA(f.At(x, y)))
		}
	}
	return img
}
