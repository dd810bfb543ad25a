package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// builtin is a registered preset constructor
type builtin struct {
	displayName string
	description string
	build       func() (*Preset, error)
}

var builtins = map[string]builtin{
	"shadow":    {"Spot Shadow", "Blue sphere shadowed by a small triangle under a spot light", NewShadowScene},
	"soft":      {"Soft Shadow", "Sphere over glossy triangles lit by a point light with a radius", NewSoftShadowScene},
	"mirror":    {"Mirror", "Sphere inside a transparent sphere, reflected by two triangular mirrors", NewMirrorScene},
	"final":     {"Final", "Room of colored walls with mirror and matte spheres and a pyramid, lit by soft point lights", NewFinalScene},
	"cylinders": {"Cylinders", "Capped cylinder, infinite tube and a turned box on a reflective floor next to a glass sphere", NewCylinderScene},
}

// Names returns the names of the built-in presets in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin builds the named preset
func Builtin(name string) (*Preset, error) {
	entry, ok := builtins[name]
	if !ok {
		return nil, core.InvalidArgf("unknown scene %q", name)
	}
	preset, err := entry.build()
	if err != nil {
		return nil, fmt.Errorf("build scene %q: %w", name, err)
	}
	return preset, nil
}

// frontView looks down -z from (0, 0, z) with y up
func frontView(z, size, distance float64) View {
	return View{
		Position:          core.NewVec3(0, 0, z),
		Forward:           core.NewVec3(0, 0, -1),
		Up:                core.NewVec3(0, 1, 0),
		ViewPlaneWidth:    size,
		ViewPlaneHeight:   size,
		ViewPlaneDistance: distance,
	}
}

// builder collects surfaces and lights, remembering the first construction error
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(name string, options Options) *builder {
	return &builder{scene: New(name, options)}
}

func (b *builder) add(surface geometry.Intersectable, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.scene.AddSurfaces(surface)
}

func (b *builder) light(source lights.LightSource, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.scene.AddLights(source)
}

func (b *builder) sphere(center core.Vec3, radius float64, look geometry.Appearance) {
	s, err := geometry.NewSphere(center, radius, look)
	b.add(s, err)
}

func (b *builder) triangle(v0, v1, v2 core.Vec3, look geometry.Appearance) {
	t, err := geometry.NewTriangle(v0, v1, v2, look)
	b.add(t, err)
}

func (b *builder) plane(p0, p1, p2 core.Vec3, look geometry.Appearance) {
	p, err := geometry.NewPlaneFromPoints(p0, p1, p2, look)
	b.add(p, err)
}

func (b *builder) pointLight(config lights.PointLightConfig) {
	l, err := lights.NewPointLight(config)
	b.light(l, err)
}

func (b *builder) spotLight(config lights.SpotLightConfig) {
	l, err := lights.NewSpotLight(config)
	b.light(l, err)
}

func (b *builder) preset(view View, width, height int) (*Preset, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Preset{Scene: b.scene, View: view, Width: width, Height: height}, nil
}

// look is shorthand for an appearance
func look(emission core.Vec3, m material.Material) geometry.Appearance {
	return geometry.Appearance{Emission: emission, Material: m}
}

func whiteAmbient(ka float64) lights.AmbientLight {
	return lights.NewAmbientLight(core.NewColor(255, 255, 255), core.Uniform(ka))
}
