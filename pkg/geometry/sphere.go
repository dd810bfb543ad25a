package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Appearance
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, look Appearance) (*Sphere, error) {
	if radius <= 0 {
		return nil, core.InvalidArgf("sphere radius %g must be positive", radius)
	}
	if err := look.validate(); err != nil {
		return nil, err
	}
	return &Sphere{
		Appearance: look,
		Center:     center,
		Radius:     radius,
	}, nil
}

// Normal returns the outward unit normal at a point on the sphere
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Intersect tests the ray against the sphere, nearer hit first
func (s *Sphere) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	// Project the center onto the ray: tm along the ray, d perpendicular
	tm, d := 0.0, 0.0
	if !ray.Origin.Equal(s.Center) {
		u := s.Center.Subtract(ray.Origin)
		tm = u.Dot(ray.Direction)
		d = core.AlignZero(math.Sqrt(math.Max(0, u.LengthSquared()-tm*tm)))
	}

	if d >= s.Radius {
		return nil
	}

	th := core.AlignZero(math.Sqrt(s.Radius*s.Radius - d*d))
	var hits []GeoPoint
	for _, t := range [2]float64{tm - th, tm + th} {
		if withinRange(t, maxDistance) {
			hits = append(hits, NewGeoPoint(s, ray.At(t)))
		}
	}
	return hits
}
