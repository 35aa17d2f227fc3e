package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

func TestNew_AllScenesBuild(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene should contain shapes")
			}
			if err := s.CameraConfig.Validate(); err != nil {
				t.Errorf("Scene camera config invalid: %v", err)
			}
			if err := s.SamplingConfig.Validate(); err != nil {
				t.Errorf("Scene sampling config invalid: %v", err)
			}
			if _, err := s.NewCamera(); err != nil {
				t.Errorf("NewCamera failed: %v", err)
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("cornell")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNew_CameraOverrides(t *testing.T) {
	s, err := New("three-spheres", renderer.CameraConfig{Width: 64, FreezeTime: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.CameraConfig.Width != 64 || !s.CameraConfig.FreezeTime {
		t.Errorf("Overrides not applied: %+v", s.CameraConfig)
	}
	if s.CameraConfig.VFov != 20 || s.CameraConfig.FocusDistance != 3.4 {
		t.Errorf("Defaults not preserved: %+v", s.CameraConfig)
	}
}

func TestList_MatchesNames(t *testing.T) {
	names := Names()
	infos := List()
	if len(infos) != len(names) {
		t.Fatalf("Expected %d infos, got %d", len(names), len(infos))
	}
	for i := range infos {
		if infos[i].Name != names[i] || infos[i].Description == "" {
			t.Errorf("Unexpected info %+v for %q", infos[i], names[i])
		}
	}
	if names[0] != DefaultSceneName {
		t.Errorf("Default scene should be listed first, got %q", names[0])
	}
}

func TestFinalScene_Layout(t *testing.T) {
	s := NewFinalScene()
	shapes := s.World.Shapes

	// ground + up to 22x22 small spheres + 3 feature spheres
	if len(shapes) < 4 || len(shapes) > 1+22*22+3 {
		t.Fatalf("Unexpected shape count %d", len(shapes))
	}

	ground, ok := shapes[0].(*geometry.Sphere)
	if !ok || ground.Radius != 1000 {
		t.Fatalf("First shape should be the ground sphere, got %#v", shapes[0])
	}

	moving := 0
	clearing := core.NewVec3(4, 0.2, 0)
	for _, shape := range shapes[1 : len(shapes)-3] {
		sphere := shape.(*geometry.Sphere)
		if sphere.Radius != 0.2 {
			t.Errorf("Small sphere has radius %v", sphere.Radius)
		}
		center := sphere.CenterAt(0)
		if center.Subtract(clearing).Length() <= 0.9 {
			t.Errorf("Small sphere at %v intrudes on the clearing", center)
		}
		if !sphere.Center.Direction.NearZero() {
			moving++
			if _, ok := sphere.Material.(*material.Lambertian); !ok {
				t.Errorf("Only diffuse spheres should move, got %T", sphere.Material)
			}
		}
	}
	if moving == 0 {
		t.Error("Expected some moving diffuse spheres")
	}
}

func TestFinalScene_Reproducible(t *testing.T) {
	a := NewFinalScene().World.Shapes
	b := NewFinalScene().World.Shapes
	if len(a) != len(b) {
		t.Fatalf("Layout sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		sa, sb := a[i].(*geometry.Sphere), b[i].(*geometry.Sphere)
		if sa.Center != sb.Center || sa.Radius != sb.Radius {
			t.Fatalf("Shape %d differs between builds", i)
		}
	}
}

func TestThreeSpheresScene_HollowGlass(t *testing.T) {
	s := NewThreeSpheresScene()
	var outer, inner *geometry.Sphere
	for _, shape := range s.World.Shapes {
		sphere := shape.(*geometry.Sphere)
		if d, ok := sphere.Material.(*material.Dielectric); ok {
			if d.RefractiveIndex > 1 {
				outer = sphere
			} else {
				inner = sphere
			}
		}
	}
	if outer == nil || inner == nil {
		t.Fatal("Expected an outer glass sphere and an inner air bubble")
	}
	if outer.CenterAt(0) != inner.CenterAt(0) || inner.Radius >= outer.Radius {
		t.Errorf("Bubble should sit inside the glass sphere: outer %v/%v inner %v/%v",
			outer.CenterAt(0), outer.Radius, inner.CenterAt(0), inner.Radius)
	}
}

func TestOklchToRGB_InGamut(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		c := oklchToRGB(0.65, 0.25, hue)
		for _, v := range []float64{c.X, c.Y, c.Z} {
			if v < 0 || v > 1 {
				t.Errorf("Hue %v produced out of range color %v", hue, c)
			}
		}
	}
	white := oklchToRGB(1, 0, 0)
	if white.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-3 {
		t.Errorf("Zero chroma at full lightness should be white, got %v", white)
	}
}
