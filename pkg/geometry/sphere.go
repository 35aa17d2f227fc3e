package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Sphere represents a sphere shape. The center travels along a ray over the shutter
// interval [0,1]; a zero direction gives a stationary sphere.
type Sphere struct {
	Center   core.Ray
	Radius   float64
	Material material.Material
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: material,
	}
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0
// to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.At(time)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic a*t² - 2h*t + c = 0 with h = -b/2
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
