package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a tube cut to a finite height and closed by two caps. The base
// cap is centered on the axis origin, the top cap at origin + direction*height.
type Cylinder struct {
	Tube
	Height float64
}

// NewCylinder creates a capped cylinder
func NewCylinder(origin, direction core.Vec3, radius, height float64, look Appearance) (*Cylinder, error) {
	if height <= 0 {
		return nil, core.InvalidArgf("cylinder height %g must be positive", height)
	}
	tube, err := newTube(origin, direction, radius, look)
	if err != nil {
		return nil, err
	}
	return &Cylinder{Tube: tube, Height: height}, nil
}

func (c *Cylinder) topCenter() core.Vec3 {
	return c.Axis.At(c.Height)
}

// Normal returns the axis direction for points within the radius of either
// cap center and the tube normal elsewhere. Both caps report the same axis
// direction.
func (c *Cylinder) Normal(point core.Vec3) core.Vec3 {
	if point.Distance(c.Axis.Origin) < c.Radius || point.Distance(c.topCenter()) < c.Radius {
		return c.Axis.Direction
	}
	return c.lateralNormal(point)
}

// Intersect collects lateral hits between the caps plus hits on each cap
// disc, nearest first
func (c *Cylinder) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	var ts []float64
	for _, t := range c.Tube.lateralHits(ray) {
		h := c.Axis.Direction.Dot(ray.At(t).Subtract(c.Axis.Origin))
		if core.AlignZero(h) >= 0 && core.AlignZero(h-c.Height) <= 0 {
			ts = append(ts, t)
		}
	}
	for _, center := range [2]core.Vec3{c.Axis.Origin, c.topCenter()} {
		if t, ok := c.capHit(ray, center); ok {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)

	var hits []GeoPoint
	for _, t := range ts {
		if withinRange(t, maxDistance) {
			hits = append(hits, NewGeoPoint(c, ray.At(t)))
		}
	}
	return hits
}

// capHit intersects the ray with the cap disc around center
func (c *Cylinder) capHit(ray core.Ray, center core.Vec3) (float64, bool) {
	nv := core.AlignZero(c.Axis.Direction.Dot(ray.Direction))
	if nv == 0 {
		return 0, false
	}
	t := c.Axis.Direction.Dot(center.Subtract(ray.Origin)) / nv
	if core.AlignZero(ray.At(t).Distance(center)-c.Radius) >= 0 {
		return 0, false
	}
	return t, true
}
