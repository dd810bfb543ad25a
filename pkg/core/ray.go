package core

// RayOffsetDelta is how far secondary ray origins are pushed off a surface
const RayOffsetDelta = 0.1

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewOffsetRay creates a ray leaving a surface point. The origin is moved by
// RayOffsetDelta along the normal, toward the side the direction points to,
// so the new ray cannot immediately re-hit the surface it starts on.
func NewOffsetRay(point, direction, normal Vec3) Ray {
	delta := RayOffsetDelta
	if normal.Dot(direction) < 0 {
		delta = -delta
	}
	return Ray{
		Origin:    point.Add(normal.Multiply(delta)),
		Direction: direction.Normalize(),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
