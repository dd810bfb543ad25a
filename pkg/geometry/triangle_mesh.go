package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TriangleMesh is an aggregate of triangles built from shared vertices
type TriangleMesh struct {
	*Geometries
	triangles []*Triangle
	skipped   int
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Scale    float64    // Uniform scale applied before rotation; 0 means 1
	Rotation *core.Vec3 // Optional rotation in degrees around X, Y then Z
	Center   *core.Vec3 // Optional pivot for rotation
	Offset   core.Vec3  // Translation applied last
}

// NewTriangleMesh creates a mesh from vertices and face indices. Every three
// indices form one triangle. Degenerate triangles are skipped and counted.
func NewTriangleMesh(vertices []core.Vec3, faces []int, look Appearance, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, core.InvalidArgf("face index count %d is not a multiple of 3", len(faces))
	}
	if err := look.validate(); err != nil {
		return nil, err
	}

	working := vertices
	if options != nil {
		working = make([]core.Vec3, len(vertices))
		for i, v := range vertices {
			working[i] = transformVertex(v, options)
		}
	}

	mesh := &TriangleMesh{Geometries: NewGeometries()}
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(working) {
				return nil, core.InvalidArgf("face %d references vertex %d of %d", i/3, idx, len(working))
			}
		}

		triangle, err := NewTriangle(working[i0], working[i1], working[i2], look)
		if errors.Is(err, core.ErrInvalidArgument) {
			mesh.skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i/3, err)
		}
		mesh.triangles = append(mesh.triangles, triangle)
		mesh.Add(triangle)
	}
	return mesh, nil
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// SkippedCount returns the number of degenerate faces that were dropped
func (tm *TriangleMesh) SkippedCount() int {
	return tm.skipped
}

// Triangles returns the individual triangles
func (tm *TriangleMesh) Triangles() []*Triangle {
	return tm.triangles
}

// transformVertex scales, rotates around the pivot (X, Y, Z in that order)
// and then translates
func transformVertex(v core.Vec3, options *TriangleMeshOptions) core.Vec3 {
	if options.Scale != 0 {
		v = v.Multiply(options.Scale)
	}
	if options.Rotation != nil {
		if options.Center != nil {
			v = v.Subtract(*options.Center)
		}
		v = v.RotateAround(core.NewVec3(1, 0, 0), options.Rotation.X).
			RotateAround(core.NewVec3(0, 1, 0), options.Rotation.Y).
			RotateAround(core.NewVec3(0, 0, 1), options.Rotation.Z)
		if options.Center != nil {
			v = v.Add(*options.Center)
		}
	}
	return v.Add(options.Offset)
}
