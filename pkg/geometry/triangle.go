package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Polygon is a flat convex polygon. Its vertices lie on one plane, in order.
type Polygon struct {
	Appearance
	Vertices []core.Vec3
	plane    *Plane
}

// NewPolygon creates a convex polygon from at least three coplanar vertices
func NewPolygon(look Appearance, vertices ...core.Vec3) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, core.InvalidArgf("polygon needs at least 3 vertices, got %d", len(vertices))
	}
	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2], look)
	if err != nil {
		return nil, err
	}

	n := plane.normal
	var orientation float64
	for i := range vertices {
		if !core.IsZero(n.Dot(vertices[i].Subtract(vertices[0]))) {
			return nil, core.InvalidArgf("polygon vertex %v is not on the plane of the first three", vertices[i])
		}
		edge := vertices[(i+1)%len(vertices)].Subtract(vertices[i])
		next := vertices[(i+2)%len(vertices)].Subtract(vertices[(i+1)%len(vertices)])
		turn := core.AlignZero(edge.Cross(next).Dot(n))
		if turn == 0 {
			return nil, core.InvalidArgf("polygon has collinear consecutive vertices at %v", vertices[(i+1)%len(vertices)])
		}
		if orientation != 0 && (turn > 0) != (orientation > 0) {
			return nil, core.InvalidArgf("polygon is not convex at %v", vertices[(i+1)%len(vertices)])
		}
		orientation = turn
	}

	return &Polygon{
		Appearance: look,
		Vertices:   append([]core.Vec3(nil), vertices...),
		plane:      plane,
	}, nil
}

// Normal returns the normal of the polygon's plane
func (p *Polygon) Normal(core.Vec3) core.Vec3 {
	return p.plane.normal
}

// Intersect hits the polygon's plane and keeps the point only if it is
// strictly inside every edge. Points on an edge or vertex miss.
func (p *Polygon) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	t, ok := p.plane.hitDistance(ray)
	if !ok || !withinRange(t, maxDistance) {
		return nil
	}
	point := ray.At(t)

	var sign float64
	for i := range p.Vertices {
		vi := p.Vertices[i].Subtract(point)
		vj := p.Vertices[(i+1)%len(p.Vertices)].Subtract(point)
		s := core.AlignZero(ray.Direction.Dot(vi.Cross(vj)))
		if s == 0 {
			return nil
		}
		if sign != 0 && (s > 0) != (sign > 0) {
			return nil
		}
		sign = s
	}

	return []GeoPoint{NewGeoPoint(p, point)}
}

// Triangle is a polygon with exactly three vertices
type Triangle struct {
	*Polygon
}

// NewTriangle creates a triangle from three non-collinear points
func NewTriangle(v0, v1, v2 core.Vec3, look Appearance) (*Triangle, error) {
	polygon, err := NewPolygon(look, v0, v1, v2)
	if err != nil {
		return nil, err
	}
	return &Triangle{Polygon: polygon}, nil
}

// Intersect reports hits as belonging to the triangle rather than its polygon
func (t *Triangle) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	hits := t.Polygon.Intersect(ray, maxDistance)
	for i := range hits {
		hits[i].Surface = t
	}
	return hits
}
