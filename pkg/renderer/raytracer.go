package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/output"
)

// Raytracer handles the rendering process
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	logger     core.Logger
	progress   Progress
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NewRaytracer creates a new raytracer using unidirectional path tracing.
// The world and camera must not be modified while a render is running.
func NewRaytracer(world geometry.Shape, camera *Camera, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		config:     config,
		logger:     logger,
		progress:   noProgress{},
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetProgress installs a progress reporter that is advanced once per row
func (rt *Raytracer) SetProgress(progress Progress) {
	if progress == nil {
		progress = noProgress{}
	}
	rt.progress = progress
}

// Camera returns the camera used for rendering
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RenderPixel averages SamplesPerPixel radiance estimates for pixel (i, j)
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
	}
	return ps.GetColor()
}

// RenderRow renders row j into frame. The row has its own sampler seeded from the
// base seed, so its pixels do not depend on which worker renders it or when.
func (rt *Raytracer) RenderRow(j int, frame *output.Frame) {
	sampler := core.NewSeededSampler(rt.config.Seed + int64(j))
	for i := 0; i < frame.Width; i++ {
		frame.Set(i, j, rt.RenderPixel(i, j, sampler))
	}
}

// Render renders the whole image in parallel and returns the averaged linear colors.
// On cancellation it returns the partially rendered frame together with ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*output.Frame, RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	frame := output.NewFrame(width, height)
	pool := NewWorkerPool(rt.config.NumWorkers())

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d (using %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	var counters renderCounters
	startTime := time.Now()

	err := pool.Run(ctx, height, func(task RowTask) error {
		rt.RenderRow(task.Row, frame)
		counters.addRow(width, width*rt.config.SamplesPerPixel)
		if err := rt.progress.Add(1); err != nil {
			rt.logger.Printf("Progress update failed: %v\n", err)
		}
		return nil
	})

	stats := counters.stats(pool.GetNumWorkers(), time.Since(startTime))
	if err != nil {
		rt.logger.Printf("Render stopped after %d of %d rows: %v\n", stats.RowsRendered, height, err)
		return frame, stats, fmt.Errorf("render interrupted: %w", err)
	}

	rt.logger.Printf("Render completed in %v (%d samples, %.1f per pixel)\n",
		stats.Elapsed, stats.TotalSamples, stats.AverageSamples)
	return frame, stats, nil
}
