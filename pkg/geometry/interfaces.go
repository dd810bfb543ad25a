package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersectable is anything a ray can be tested against. Intersect returns
// every hit with parametric distance 0 < t <= maxDistance, or nil when the
// ray misses.
type Intersectable interface {
	Intersect(ray core.Ray, maxDistance float64) []GeoPoint
}

// Surface is a shape with a well-defined unit normal and an appearance
type Surface interface {
	Intersectable
	Normal(point core.Vec3) core.Vec3
	Look() Appearance
}
