package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane through a point with a unit normal
type Plane struct {
	Appearance
	Point  core.Vec3
	normal core.Vec3
}

// NewPlane creates a plane from a point and a (not necessarily unit) normal
func NewPlane(point, normal core.Vec3, look Appearance) (*Plane, error) {
	n, err := core.Direction(normal)
	if err != nil {
		return nil, fmt.Errorf("plane normal: %w", err)
	}
	if err := look.validate(); err != nil {
		return nil, err
	}
	return &Plane{Appearance: look, Point: point, normal: n}, nil
}

// NewPlaneFromPoints creates the plane through three points. The normal is
// (p1-p0) x (p2-p0); coincident or collinear points are rejected.
func NewPlaneFromPoints(p0, p1, p2 core.Vec3, look Appearance) (*Plane, error) {
	n, err := core.Direction(p1.Subtract(p0).Cross(p2.Subtract(p0)))
	if err != nil {
		return nil, core.InvalidArgf("plane points %v %v %v are collinear", p0, p1, p2)
	}
	if err := look.validate(); err != nil {
		return nil, err
	}
	return &Plane{Appearance: look, Point: p0, normal: n}, nil
}

// Normal returns the plane normal, the same everywhere
func (p *Plane) Normal(core.Vec3) core.Vec3 {
	return p.normal
}

// Intersect tests the ray against the plane
func (p *Plane) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	t, ok := p.hitDistance(ray)
	if !ok || !withinRange(t, maxDistance) {
		return nil
	}
	return []GeoPoint{NewGeoPoint(p, ray.At(t))}
}

// hitDistance returns the ray parameter where the ray meets the plane. Rays
// starting on the plane or running parallel to it do not hit.
func (p *Plane) hitDistance(ray core.Ray) (float64, bool) {
	if ray.Origin.Equal(p.Point) {
		return 0, false
	}
	nv := core.AlignZero(p.normal.Dot(ray.Direction))
	if nv == 0 {
		return 0, false
	}
	return core.AlignZero(p.normal.Dot(p.Point.Subtract(ray.Origin)) / nv), true
}
