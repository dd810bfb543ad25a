package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCylinderScene creates a capped cylinder, an infinite tube and a turned
// box standing on a slightly reflective floor, next to a glass sphere
func NewCylinderScene() (*Preset, error) {
	b := newBuilder("cylinders", Options{Ambient: whiteAmbient(0.1)})
	phong := material.NewPhong(0.5, 0.5, 30)

	floor, err := geometry.NewPlane(core.NewVec3(0, -60, 0), core.NewVec3(0, 1, 0),
		look(core.NewColor(30, 30, 30), material.NewPhong(0.4, 0.2, 20).WithReflection(0.3)))
	b.add(floor, err)

	cylinder, err := geometry.NewCylinder(core.NewVec3(-50, -60, -150), core.NewVec3(0, 1, 0), 30, 100,
		look(core.NewColor(100, 20, 20), phong))
	b.add(cylinder, err)

	tube, err := geometry.NewTube(core.NewVec3(70, 0, -350), core.NewVec3(0.2, 1, 0), 20,
		look(core.NewColor(20, 60, 20), phong))
	b.add(tube, err)

	box, err := geometry.NewBox(core.NewVec3(-95, -40, -40), core.NewVec3(20, 20, 20), core.NewVec3(0, 30, 0),
		look(core.NewColor(60, 50, 10), material.NewPhong(0.6, 0.3, 20)))
	b.add(box, err)

	b.sphere(core.NewVec3(30, -30, -50), 30, look(core.NewColor(10, 10, 40), material.NewPhong(0.2, 0.6, 100).WithTransparency(0.6)))

	b.pointLight(lights.PointLightConfig{
		Intensity:   core.NewColor(500, 450, 400),
		Position:    core.NewVec3(0, 100, 100),
		Attenuation: lights.Attenuation{Kc: 1, Kl: 4e-4, Kq: 2e-5},
	})
	sun, err := lights.NewDirectionalLight(core.NewColor(100, 100, 120), core.NewVec3(-1, -1, -1))
	b.light(sun, err)

	return b.preset(frontView(1000, 200, 1000), 400, 400)
}
