package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Appearance is the emitted color and material shared by every surface
type Appearance struct {
	Emission core.Vec3
	Material material.Material
}

// Look returns the appearance itself; embedding Appearance satisfies Surface.Look
func (a Appearance) Look() Appearance {
	return a
}

func (a Appearance) validate() error {
	return a.Material.Validate()
}

// GeoPoint is a resolved intersection: the surface that was hit, the hit
// point and the unit normal there. The normal is computed once on creation.
type GeoPoint struct {
	Surface Surface
	Point   core.Vec3
	Normal  core.Vec3
}

// NewGeoPoint creates a GeoPoint, evaluating the surface normal at point
func NewGeoPoint(surface Surface, point core.Vec3) GeoPoint {
	return GeoPoint{
		Surface: surface,
		Point:   point,
		Normal:  surface.Normal(point),
	}
}

// Equal reports whether both GeoPoints reference the same surface at the same point
func (g GeoPoint) Equal(other GeoPoint) bool {
	return g.Surface == other.Surface && g.Point.Equal(other.Point)
}

// withinRange reports whether t lies in (0, maxDistance]
func withinRange(t, maxDistance float64) bool {
	return core.AlignZero(t) > 0 && core.AlignZero(t-maxDistance) <= 0
}
