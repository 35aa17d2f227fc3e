package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Identifier accepted by New
	Description string // One-line summary for listings
}

// Constructor builds a scene, applying optional camera overrides to its defaults
type Constructor func(cameraOverrides ...renderer.CameraConfig) *Scene

type entry struct {
	info  SceneInfo
	build Constructor
}

// builtInScenes is ordered; the first entry is the default scene
var builtInScenes = []entry{
	{SceneInfo{"final", "Random field of small spheres around three large ones"}, NewFinalScene},
	{SceneInfo{"three-spheres", "Diffuse, hollow glass and fuzzy metal spheres on a ground sphere"}, NewThreeSpheresScene},
	{SceneInfo{"spheregrid", "Grid of colored spheres cycling metal, diffuse and glass"}, NewSphereGridScene},
}

// DefaultSceneName is the scene rendered when none is requested
const DefaultSceneName = "final"

// Names returns the names of all built-in scenes
func Names() []string {
	names := make([]string, len(builtInScenes))
	for i, e := range builtInScenes {
		names[i] = e.info.Name
	}
	return names
}

// List returns name and description of all built-in scenes
func List() []SceneInfo {
	infos := make([]SceneInfo, len(builtInScenes))
	for i, e := range builtInScenes {
		infos[i] = e.info
	}
	return infos
}

// New builds the named scene
func New(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, e := range builtInScenes {
		if e.info.Name == name {
			return e.build(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
}
