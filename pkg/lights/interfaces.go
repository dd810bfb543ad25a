package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// LightSource is a light that illuminates surface points directly
type LightSource interface {
	// Intensity returns the light arriving at p, after attenuation
	Intensity(p core.Vec3) core.Vec3

	// Direction returns the unit direction from the light toward p
	Direction(p core.Vec3) core.Vec3

	// Directions returns one or more unit sample directions from the light
	// toward p. Hard lights return a single direction; soft lights return a
	// set whose contributions are averaged.
	Directions(p core.Vec3) []core.Vec3

	// Distance returns the distance from the light to p, +Inf for lights at infinity
	Distance(p core.Vec3) float64
}
