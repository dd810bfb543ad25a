package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// modelExtent is the size of the cube a loaded model is fitted into
const modelExtent = 2.0

// NewModelScene loads a PLY, glTF or GLB model and stages it on a floor,
// scaled to fit a 2x2x2 cube at the origin and lit from the front right
func NewModelScene(path string) (*Preset, error) {
	data, err := loaders.LoadMesh(path)
	if err != nil {
		return nil, err
	}
	return NewMeshScene(data)
}

// NewMeshScene stages already loaded mesh data the way NewModelScene does
func NewMeshScene(data *loaders.MeshData) (*Preset, error) {
	if len(data.Vertices) == 0 || data.TriangleCount() == 0 {
		return nil, core.InvalidArgf("model %q has no triangles", data.Name)
	}

	mesh, err := data.ToTriangleMesh(
		look(core.Black, material.NewPhong(0.6, 0.3, 40)),
		fitOptions(data.Vertices),
	)
	if err != nil {
		return nil, err
	}
	if mesh.TriangleCount() == 0 {
		return nil, core.InvalidArgf("model %q has only degenerate triangles", data.Name)
	}

	b := newBuilder(data.Name, Options{
		Background: core.NewColor(20, 20, 30),
		Ambient:    whiteAmbient(0.1),
	})
	b.add(mesh, nil)
	b.plane(core.NewVec3(0, -modelExtent/2, 0), core.NewVec3(0, -modelExtent/2, -1), core.NewVec3(1, -modelExtent/2, 0),
		look(core.NewColor(30, 30, 30), material.NewPhong(0.5, 0.2, 20).WithReflection(0.2)))
	b.pointLight(lights.PointLightConfig{
		Intensity:   core.NewColor(400, 400, 400),
		Position:    core.NewVec3(3, 4, 5),
		Attenuation: lights.Attenuation{Kc: 1, Kl: 0.01, Kq: 0.005},
		Radius:      0.3,
	})

	return b.preset(frontView(6, 3, 5), 400, 400)
}

// fitOptions centers the bounding box of vertices on the origin and scales
// its largest side to modelExtent
func fitOptions(vertices []core.Vec3) *geometry.TriangleMeshOptions {
	lo := core.Uniform(math.Inf(1))
	hi := core.Uniform(math.Inf(-1))
	for _, v := range vertices {
		lo = core.NewVec3(math.Min(lo.X, v.X), math.Min(lo.Y, v.Y), math.Min(lo.Z, v.Z))
		hi = core.NewVec3(math.Max(hi.X, v.X), math.Max(hi.Y, v.Y), math.Max(hi.Z, v.Z))
	}

	size := hi.Subtract(lo)
	largest := math.Max(size.X, math.Max(size.Y, size.Z))
	scale := 1.0
	if largest > 0 {
		scale = modelExtent / largest
	}
	center := lo.Add(hi).Multiply(0.5)
	return &geometry.TriangleMeshOptions{
		Scale:  scale,
		Offset: center.Multiply(-scale),
	}
}

// modelSceneID returns the scene ID under which a model file is listed
func modelSceneID(name string) string {
	return fmt.Sprintf("%s%s", modelPrefix, name)
}
