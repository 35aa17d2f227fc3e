package output

import (
	"fmt"
	"image"
	"math"

	"github.com/mrjoshuak/go-openexr/exr"
)

// HDR converts the frame to a linear float image without gamma or clamping.
// Non-finite and negative channels are stored as 0.
func (f *Frame) HDR() *exr.RGBAImage {
	img := exr.NewRGBAImage(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, hdrChannel(c.X), hdrChannel(c.Y), hdrChannel(c.Z), 1)
		}
	}
	return img
}

func hdrChannel(v float64) float32 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return float32(v)
}

// WriteEXR writes the linear radiance of the frame as an OpenEXR file
func WriteEXR(path string, frame *Frame) error {
	if err := exr.EncodeFile(path, frame.HDR()); err != nil {
		return fmt.Errorf("failed to encode exr: %w", err)
	}
	return nil
}
