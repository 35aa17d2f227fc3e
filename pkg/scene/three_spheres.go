package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewThreeSpheresScene creates a small scene with one sphere per material on a ground sphere.
// The glass sphere is hollow: an inner sphere with the inverse index models the air bubble.
func NewThreeSpheresScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}

	groundMaterial := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerMaterial := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundMaterial),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, centerMaterial),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return &Scene{
		Name:           "three-spheres",
		World:          world,
		CameraConfig:   applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
