package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene creates a sphere inside a transparent sphere, reflected by
// two large triangular mirrors
func NewMirrorScene() (*Preset, error) {
	b := newBuilder("mirror", Options{Ambient: whiteAmbient(0.1)})
	center := core.NewVec3(-950, -900, -1000)

	b.sphere(center, 400, look(core.NewColor(0, 50, 100), material.NewPhong(0.25, 0.25, 20).WithTransparency(0.5)))
	b.sphere(center, 200, look(core.NewColor(100, 50, 20), material.NewPhong(0.25, 0.25, 20)))
	b.triangle(core.NewVec3(1500, -1500, -1500), core.NewVec3(-1500, 1500, -1500), core.NewVec3(670, 670, 3000),
		look(core.NewColor(20, 20, 20), material.Default().WithReflection(1)))
	b.triangle(core.NewVec3(1500, -1500, -1500), core.NewVec3(-1500, 1500, -1500), core.NewVec3(-1500, -1500, -2000),
		look(core.NewColor(20, 20, 20), material.Default().WithReflection(0.5)))
	b.spotLight(lights.SpotLightConfig{
		PointLightConfig: lights.PointLightConfig{
			Intensity:   core.NewColor(1020, 400, 100),
			Position:    core.NewVec3(-750, -750, -150),
			Attenuation: lights.Attenuation{Kc: 1, Kl: 1e-5, Kq: 5e-6},
		},
		Direction: core.NewVec3(-1, -1, -4),
	})

	return b.preset(frontView(10000, 2500, 10000), 500, 500)
}
