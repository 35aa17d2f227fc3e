package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int64         // Total number of camera rays traced
	AverageSamples float64       // Average samples per pixel
	RowsRendered   int           // Rows completed before the render finished or stopped
	Workers        int           // Number of parallel workers used
	Elapsed        time.Duration // Wall clock render time
}

// renderCounters is updated concurrently by workers and folded into RenderStats at the end
type renderCounters struct {
	rows    atomic.Int64
	pixels  atomic.Int64
	samples atomic.Int64
}

func (rc *renderCounters) addRow(pixels, samples int) {
	rc.rows.Add(1)
	rc.pixels.Add(int64(pixels))
	rc.samples.Add(int64(samples))
}

func (rc *renderCounters) stats(workers int, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		TotalPixels:  int(rc.pixels.Load()),
		TotalSamples: rc.samples.Load(),
		RowsRendered: int(rc.rows.Load()),
		Workers:      workers,
		Elapsed:      elapsed,
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
