package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShadowScene creates a blue sphere shadowed by a small triangle under a spot light
func NewShadowScene() (*Preset, error) {
	b := newBuilder("shadow", Options{})
	blue := core.NewColor(0, 0, 255)
	phong := material.NewPhong(0.5, 0.5, 30)

	b.sphere(core.NewVec3(0, 0, -200), 60, look(blue, phong))
	b.triangle(core.NewVec3(-70, -40, 0), core.NewVec3(-40, -70, 0), core.NewVec3(-68, -68, -4), look(blue, phong))
	b.spotLight(lights.SpotLightConfig{
		PointLightConfig: lights.PointLightConfig{
			Intensity:   core.NewColor(400, 240, 0),
			Position:    core.NewVec3(-100, -100, 200),
			Attenuation: lights.Attenuation{Kc: 1, Kl: 1e-5, Kq: 1.5e-7},
		},
		Direction: core.NewVec3(1, 1, -3),
	})

	return b.preset(frontView(1000, 200, 1000), 400, 400)
}
