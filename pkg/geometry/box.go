package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Box is a rectangular box made of 6 polygon faces with optional rotation
type Box struct {
	*Geometries
	Center   core.Vec3 // Center point of the box
	Size     core.Vec3 // Half-extents along each axis
	Rotation core.Vec3 // Rotation in degrees around X, Y then Z
	faces    [6]*Polygon
}

// NewBox creates a box. Size holds half-extents, so a size of (1,1,1) creates
// a 2x2x2 box. Every face shares the same appearance.
func NewBox(center, size, rotation core.Vec3, look Appearance) (*Box, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, core.InvalidArgf("box half-extents %v must be positive", size)
	}

	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}
	for i := range corners {
		corners[i] = corners[i].MultiplyVec(size).
			RotateAround(core.NewVec3(1, 0, 0), rotation.X).
			RotateAround(core.NewVec3(0, 1, 0), rotation.Y).
			RotateAround(core.NewVec3(0, 0, 1), rotation.Z).
			Add(center)
	}

	// Counter-clockwise seen from outside, so every plane normal points out
	faceCorners := [6][4]int{
		{4, 5, 6, 7}, // front (Z+)
		{1, 0, 3, 2}, // back (Z-)
		{5, 1, 2, 6}, // right (X+)
		{0, 4, 7, 3}, // left (X-)
		{7, 6, 2, 3}, // top (Y+)
		{0, 1, 5, 4}, // bottom (Y-)
	}

	box := &Box{Geometries: NewGeometries(), Center: center, Size: size, Rotation: rotation}
	for i, idx := range faceCorners {
		face, err := NewPolygon(look, corners[idx[0]], corners[idx[1]], corners[idx[2]], corners[idx[3]])
		if err != nil {
			return nil, err
		}
		box.faces[i] = face
		box.Add(face)
	}
	return box, nil
}

// NewAxisAlignedBox creates a box without rotation
func NewAxisAlignedBox(center, size core.Vec3, look Appearance) (*Box, error) {
	return NewBox(center, size, core.Vec3{}, look)
}

// Faces returns the six faces: front, back, right, left, top, bottom
func (b *Box) Faces() [6]*Polygon {
	return b.faces
}
