package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrInvalidConfig is returned when a camera or sampling configuration cannot be rendered
var ErrInvalidConfig = errors.New("invalid render configuration")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point camera is looking at
	Up            core.Vec3 // Up direction (usually 0,1,0)
	Width         int       // Image width in pixels
	AspectRatio   float64   // Aspect ratio (width/height)
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Aperture cone angle in degrees (0 = pinhole)
	FocusDistance float64   // Distance to the plane of perfect focus
	FreezeTime    bool      // Shoot every ray at time 0 instead of sampling the shutter
}

// Validate checks the configuration for values the camera cannot work with
func (c CameraConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.AspectRatio <= 0:
		return fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidConfig, c.AspectRatio)
	case c.VFov <= 0 || c.VFov >= 180:
		return fmt.Errorf("%w: vertical fov must be in (0, 180), got %g", ErrInvalidConfig, c.VFov)
	case c.FocusDistance <= 0:
		return fmt.Errorf("%w: focus distance must be positive, got %g", ErrInvalidConfig, c.FocusDistance)
	case c.Center.Subtract(c.LookAt).NearZero():
		return fmt.Errorf("%w: camera center and look-at point coincide", ErrInvalidConfig)
	case c.Up.Cross(c.Center.Subtract(c.LookAt)).NearZero():
		return fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidConfig)
	}
	return nil
}

// MergeCameraConfig merges a partial camera config with defaults.
// Only non-zero values in the override replace defaults; FreezeTime is sticky.
func MergeCameraConfig(defaults, override CameraConfig) CameraConfig {
	result := defaults

	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.FreezeTime {
		result.FreezeTime = true
	}

	return result
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed; row j uses Seed+j
	Workers         int   // Parallel row workers (0 = use CPU count)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Validate checks the configuration for values the renderer cannot work with
func (c SamplingConfig) Validate() error {
	switch {
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// NumWorkers resolves the worker count, defaulting to the number of CPUs
func (c SamplingConfig) NumWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// MergeSamplingConfig merges a partial sampling config with defaults.
// Only non-zero values in the override replace defaults.
func MergeSamplingConfig(defaults, override SamplingConfig) SamplingConfig {
	result := defaults
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.Workers != 0 {
		result.Workers = override.Workers
	}
	return result
}
