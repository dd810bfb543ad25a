package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Geometries is a composite of intersectables, itself intersectable so
// aggregates can nest
type Geometries struct {
	members []Intersectable
}

// NewGeometries creates an aggregate holding the given members
func NewGeometries(members ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(members...)
	return g
}

// Add appends members to the aggregate
func (g *Geometries) Add(members ...Intersectable) {
	g.members = append(g.members, members...)
}

// Len returns the number of direct members
func (g *Geometries) Len() int {
	return len(g.members)
}

// Intersect concatenates the hits of every member. An aggregate where no
// member is hit returns nil, never an empty slice.
func (g *Geometries) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	var hits []GeoPoint
	for _, member := range g.members {
		if points := member.Intersect(ray, maxDistance); len(points) > 0 {
			hits = append(hits, points...)
		}
	}
	return hits
}

// FindClosest returns the point nearest to origin. It reports false for an
// empty list.
func FindClosest(points []GeoPoint, origin core.Vec3) (GeoPoint, bool) {
	if len(points) == 0 {
		return GeoPoint{}, false
	}
	closest := points[0]
	best := closest.Point.DistanceSquared(origin)
	for _, p := range points[1:] {
		if d := p.Point.DistanceSquared(origin); d < best {
			closest, best = p, d
		}
	}
	return closest, true
}
