package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// finalSceneLayoutSeed fixes the random sphere field so every run renders the same layout
const finalSceneLayoutSeed = 1

// NewFinalScene creates the cover scene: a field of small random spheres around three
// large feature spheres on a huge ground sphere
func NewFinalScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
	}

	return &Scene{
		Name:           "final",
		World:          newFinalWorld(core.NewSeededSampler(finalSceneLayoutSeed)),
		CameraConfig:   applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

func newFinalWorld(sampler core.Sampler) *geometry.ShapeList {
	world := geometry.NewShapeList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep the small spheres out of the way of the metal feature sphere
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse, bouncing during the shutter interval
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				center2 := center.Add(core.NewVec3(0, core.RandomInRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3InRange(sampler, 0.5, 1)
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)))

	return world
}
