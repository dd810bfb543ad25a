package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Tube is an infinite cylinder around an axis ray
type Tube struct {
	Appearance
	Axis   core.Ray
	Radius float64
}

// NewTube creates a tube around the axis through origin along direction
func NewTube(origin, direction core.Vec3, radius float64, look Appearance) (*Tube, error) {
	tube, err := newTube(origin, direction, radius, look)
	if err != nil {
		return nil, err
	}
	return &tube, nil
}

func newTube(origin, direction core.Vec3, radius float64, look Appearance) (Tube, error) {
	if radius <= 0 {
		return Tube{}, core.InvalidArgf("tube radius %g must be positive", radius)
	}
	dir, err := core.Direction(direction)
	if err != nil {
		return Tube{}, fmt.Errorf("tube axis direction: %w", err)
	}
	if err := look.validate(); err != nil {
		return Tube{}, err
	}
	return Tube{
		Appearance: look,
		Axis:       core.Ray{Origin: origin, Direction: dir},
		Radius:     radius,
	}, nil
}

// Normal points from the axis to the point, perpendicular to the axis
func (tb *Tube) Normal(point core.Vec3) core.Vec3 {
	return tb.lateralNormal(point)
}

func (tb *Tube) lateralNormal(point core.Vec3) core.Vec3 {
	t := tb.Axis.Direction.Dot(point.Subtract(tb.Axis.Origin))
	if core.IsZero(t) {
		return point.Subtract(tb.Axis.Origin).Normalize()
	}
	return point.Subtract(tb.Axis.At(t)).Normalize()
}

// Intersect tests the ray against the tube's lateral surface
func (tb *Tube) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	var hits []GeoPoint
	for _, t := range tb.lateralHits(ray) {
		if withinRange(t, maxDistance) {
			hits = append(hits, NewGeoPoint(tb, ray.At(t)))
		}
	}
	return hits
}

// lateralHits solves |(O + tD - A) - ((O + tD - A)·V)V|² = r² for t,
// returning the roots in ascending order. Rays parallel to the axis miss.
func (tb *Tube) lateralHits(ray core.Ray) []float64 {
	delta := ray.Origin.Subtract(tb.Axis.Origin)
	dv := ray.Direction.Dot(tb.Axis.Direction)
	deltaV := delta.Dot(tb.Axis.Direction)

	a := core.AlignZero(ray.Direction.LengthSquared() - dv*dv)
	if a == 0 {
		return nil
	}
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	c := delta.LengthSquared() - deltaV*deltaV - tb.Radius*tb.Radius

	discriminant := core.AlignZero(b*b - 4*a*c)
	if discriminant <= 0 {
		// Tangent rays graze the surface without entering it
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
}
