package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSoftShadowScene creates a sphere over two glossy triangles, lit by a
// point light with a radius so the shadow has a penumbra
func NewSoftShadowScene() (*Preset, error) {
	b := newBuilder("soft", Options{Ambient: whiteAmbient(0.15)})
	glossy := material.NewPhong(0, 0.8, 60)

	b.triangle(core.NewVec3(-150, -150, -115), core.NewVec3(150, -150, -135), core.NewVec3(75, 75, -150), look(core.Black, glossy))
	b.triangle(core.NewVec3(-150, -150, -115), core.NewVec3(-70, 70, -140), core.NewVec3(75, 75, -150), look(core.Black, glossy))
	b.sphere(core.NewVec3(0, 0, -115), 30, look(core.NewColor(0, 0, 255), material.NewPhong(0.5, 0.5, 30)))
	b.pointLight(lights.PointLightConfig{
		Intensity:   core.NewColor(700, 400, 400),
		Position:    core.NewVec3(40, 40, 115),
		Attenuation: lights.Attenuation{Kc: 1, Kl: 4e-4, Kq: 2e-5},
		Radius:      10,
	})

	return b.preset(frontView(1000, 200, 1000), 600, 600)
}
