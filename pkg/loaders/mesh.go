// Package loaders reads triangle models from disk for use as scene geometry.
package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// MeshData is the raw triangle data of a model: vertex positions and three
// vertex indices per triangle
type MeshData struct {
	Name     string
	Vertices []core.Vec3
	Faces    []int
}

// TriangleCount returns the number of triangles in the face list
func (m *MeshData) TriangleCount() int {
	return len(m.Faces) / 3
}

// ToTriangleMesh builds scene geometry from the data. Degenerate faces are
// skipped by the mesh.
func (m *MeshData) ToTriangleMesh(look geometry.Appearance, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	mesh, err := geometry.NewTriangleMesh(m.Vertices, m.Faces, look, options)
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
	}
	return mesh, nil
}

// modelExtensions maps supported file extensions to their loader
var modelExtensions = map[string]func(string) (*MeshData, error){
	".ply":  LoadPLY,
	".gltf": LoadGLTF,
	".glb":  LoadGLTF,
}

// IsModelFile reports whether path has an extension LoadMesh understands
func IsModelFile(path string) bool {
	_, ok := modelExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// LoadMesh reads a PLY, glTF or GLB file, chosen by extension
func LoadMesh(path string) (*MeshData, error) {
	load, ok := modelExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, core.InvalidArgf("unsupported model format %q", filepath.Ext(path))
	}
	return load(path)
}
