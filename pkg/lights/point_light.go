package lights

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// softGridSize is the number of grid cells across the disc of a soft light
const softGridSize = 10

// Attenuation holds the constant, linear and quadratic falloff factors.
// Intensity at distance d is I / (Kc + Kl*d + Kq*d²).
type Attenuation struct {
	Kc, Kl, Kq float64
}

// NoAttenuation keeps the intensity constant with distance
var NoAttenuation = Attenuation{Kc: 1}

// PointLightConfig describes a point light. The zero Attenuation means
// NoAttenuation; a zero Radius makes a hard light.
type PointLightConfig struct {
	Intensity   core.Vec3
	Position    core.Vec3
	Attenuation Attenuation
	Radius      float64 // Radius of the emitting disc for soft shadows
}

// PointLight emits from a position, optionally spread over a disc for soft shadows
type PointLight struct {
	intensity   core.Vec3
	position    core.Vec3
	attenuation Attenuation
	radius      float64
}

// NewPointLight creates a point light from its config
func NewPointLight(config PointLightConfig) (*PointLight, error) {
	att := config.Attenuation
	if att == (Attenuation{}) {
		att = NoAttenuation
	}
	if att.Kc < 0 || att.Kl < 0 || att.Kq < 0 {
		return nil, core.InvalidArgf("point light attenuation %+v has a negative factor", att)
	}
	if att.Kc == 0 {
		return nil, core.InvalidArgf("point light constant attenuation must be positive")
	}
	if config.Radius < 0 {
		return nil, core.InvalidArgf("point light radius %g is negative", config.Radius)
	}
	return &PointLight{
		intensity:   config.Intensity,
		position:    config.Position,
		attenuation: att,
		radius:      config.Radius,
	}, nil
}

// Position returns the light position
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// Intensity returns the attenuated intensity at p
func (pl *PointLight) Intensity(p core.Vec3) core.Vec3 {
	d := pl.position.Distance(p)
	return pl.intensity.Divide(pl.attenuation.Kc + pl.attenuation.Kl*d + pl.attenuation.Kq*d*d)
}

// Direction returns the unit direction from the light position toward p
func (pl *PointLight) Direction(p core.Vec3) core.Vec3 {
	return p.Subtract(pl.position).Normalize()
}

// Distance returns the distance from the light position to p
func (pl *PointLight) Distance(p core.Vec3) float64 {
	return pl.position.Distance(p)
}

// Directions returns the central direction for a hard light. A soft light
// also samples a disc of its radius, perpendicular to the light-to-point
// axis: the disc is divided into a grid, each cell whose center lies on the
// disc contributes one direction from a random point inside that cell.
func (pl *PointLight) Directions(p core.Vec3) []core.Vec3 {
	central := pl.Direction(p)
	if pl.radius == 0 || central == (core.Vec3{}) {
		return []core.Vec3{central}
	}

	u, w := perpendicularBasis(central)
	step := 2 * pl.radius / softGridSize
	directions := make([]core.Vec3, 0, softGridSize*softGridSize+1)
	for i := 0; i < softGridSize; i++ {
		for j := 0; j < softGridSize; j++ {
			cu := -pl.radius + (float64(i)+0.5)*step
			cw := -pl.radius + (float64(j)+0.5)*step
			if cu*cu+cw*cw > pl.radius*pl.radius {
				continue
			}
			su := cu + (rand.Float64()-0.5)*step
			sw := cw + (rand.Float64()-0.5)*step
			sample := pl.position.Add(u.Multiply(su)).Add(w.Multiply(sw))
			directions = append(directions, p.Subtract(sample).Normalize())
		}
	}
	return append(directions, central)
}

// perpendicularBasis returns two unit vectors perpendicular to axis and to each other
func perpendicularBasis(axis core.Vec3) (core.Vec3, core.Vec3) {
	helper := core.NewVec3(0, 1, 0)
	if core.IsZero(axis.Cross(helper).LengthSquared()) {
		helper = core.NewVec3(1, 0, 0)
	}
	u := axis.Cross(helper).Normalize()
	return u, axis.Cross(u)
}
