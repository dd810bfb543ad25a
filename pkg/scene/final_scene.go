package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewFinalScene creates a room of five colored walls holding a mirror
// sphere, two matte spheres and a reflective pyramid, lit by five soft
// point lights
func NewFinalScene() (*Preset, error) {
	b := newBuilder("final", Options{Ambient: whiteAmbient(0.15)})
	wall := material.NewPhong(0, 0.8, 60)

	// Back, left, floor, right, ceiling
	b.plane(core.NewVec3(-150, -150, -500), core.NewVec3(150, 150, -500), core.NewVec3(-150, 150, -500), look(core.NewColor(110, 55, 0), wall))
	b.plane(core.NewVec3(0, 200, 0), core.NewVec3(0, 200, -200), core.NewVec3(0, 0, -200), look(core.NewColor(50, 5, 50), wall))
	b.plane(core.NewVec3(0, 0, 0), core.NewVec3(200, 0, -200), core.NewVec3(0, 0, -200), look(core.NewColor(5, 80, 5), wall))
	b.plane(core.NewVec3(200, 0, 20), core.NewVec3(200, 0, -200), core.NewVec3(200, 200, -200), look(core.NewColor(50, 5, 50), wall))
	b.plane(core.NewVec3(0, 200, 0), core.NewVec3(0, 200, -200), core.NewVec3(200, 200, -200), look(core.NewColor(5, 50, 50), wall))

	b.sphere(core.NewVec3(100, 100, -250), 40, look(core.Black, material.NewPhong(0.5, 0.5, 30).WithReflection(1)))
	matte := material.NewPhong(1, 0.5, 30)
	b.sphere(core.NewVec3(155, 40, 150), 40, look(core.Black, matte))
	b.sphere(core.NewVec3(180, 20, 250), 20, look(core.NewColor(150, 15, 45), material.NewPhong(0.5, 0.2, 10).WithReflection(0.2)))

	apex := core.NewVec3(45, 95, 145)
	pyramid := look(core.NewColor(4, 45, 45), material.Default().WithReflection(0.5))
	b.triangle(apex, core.NewVec3(40, 0, 300), core.NewVec3(90, 0, 140), pyramid)
	b.triangle(apex, core.NewVec3(40, 0, 300), core.NewVec3(5, 0, 140), pyramid)
	b.triangle(apex, core.NewVec3(5, 0, 140), core.NewVec3(90, 0, 140), pyramid)

	for _, position := range []core.Vec3{
		core.NewVec3(20, 20, -300),
		core.NewVec3(180, 20, -300),
		core.NewVec3(180, 180, -300),
		core.NewVec3(20, 180, -300),
		core.NewVec3(100, 100, 300),
	} {
		b.pointLight(lights.PointLightConfig{
			Intensity:   core.NewColor(255, 255, 255),
			Position:    position,
			Attenuation: lights.Attenuation{Kc: 1, Kl: 4e-4, Kq: 2e-5},
			Radius:      5,
		})
	}

	view := View{
		Position:          core.NewVec3(100, 100, 1500),
		Forward:           core.NewVec3(0, 0, -1),
		Up:                core.NewVec3(0, 1, 0),
		ViewPlaneWidth:    200,
		ViewPlaneHeight:   200,
		ViewPlaneDistance: 1000,
	}
	return b.preset(view, 600, 600)
}
