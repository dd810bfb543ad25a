package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains everything the integrator reads while rendering. It must
// not be modified once a render has started.
type Scene struct {
	Name       string
	Background core.Vec3
	Ambient    lights.AmbientLight
	Geometries *geometry.Geometries
	Lights     []lights.LightSource
}

// Options configures a new scene. The zero value gives a black background
// and no ambient light.
type Options struct {
	Background core.Vec3
	Ambient    lights.AmbientLight
}

// New creates an empty scene
func New(name string, options Options) *Scene {
	return &Scene{
		Name:       name,
		Background: options.Background,
		Ambient:    options.Ambient,
		Geometries: geometry.NewGeometries(),
	}
}

// AddSurfaces adds intersectables to the scene aggregate
func (s *Scene) AddSurfaces(surfaces ...geometry.Intersectable) *Scene {
	s.Geometries.Add(surfaces...)
	return s
}

// AddLights adds light sources to the scene
func (s *Scene) AddLights(sources ...lights.LightSource) *Scene {
	s.Lights = append(s.Lights, sources...)
	return s
}

// View is the camera placement a preset is meant to be rendered from
type View struct {
	Position          core.Vec3
	Forward           core.Vec3
	Up                core.Vec3
	ViewPlaneWidth    float64
	ViewPlaneHeight   float64
	ViewPlaneDistance float64
	Roll              float64 // Degrees around the forward axis
}

// Preset is a ready-made scene together with its view and image size
type Preset struct {
	Scene  *Scene
	View   View
	Width  int
	Height int
}
