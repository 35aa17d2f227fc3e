package integrator

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for any ray, keeping scattered rays
// from re-hitting the surface they start on
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a sky gradient
// as the only light source
type PathTracingIntegrator struct {
	MaxDepth    int       // Maximum ray bounce depth
	TopColor    core.Vec3 // Sky color straight up
	BottomColor core.Vec3 // Sky color straight down
}

// NewPathTracingIntegrator creates a new path tracing integrator with the default
// white-to-blue sky
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:    maxDepth,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, pt.MaxDepth, world, sampler)
}

// rayColor returns the color for a given ray with at most depth bounces remaining
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, depth int, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.Scattered, depth-1, world, sampler))
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*bottom + a*top
	return pt.BottomColor.Multiply(1.0 - a).Add(pt.TopColor.Multiply(a))
}
