package renderer

import (
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// CornerTolerance is how far corner colors may differ, per 8-bit channel,
// before a pixel is subdivided
const CornerTolerance = 10

// AdaptiveSampler computes pixel colors with adaptive supersampling. Depth 0
// casts a single ray through the pixel center. Otherwise the four corners are
// traced; if they agree within CornerTolerance, or the maximum depth is
// reached, the pixel is their average, else the pixel is split 2x2 and each
// quadrant is sampled the same way.
type AdaptiveSampler struct {
	camera     *Camera
	integrator integrator.Integrator
	maxDepth   int
	rays       atomic.Int64
}

// NewAdaptiveSampler creates a sampler with the given maximum subdivision depth
func NewAdaptiveSampler(camera *Camera, integ integrator.Integrator, maxDepth int) *AdaptiveSampler {
	return &AdaptiveSampler{camera: camera, integrator: integ, maxDepth: maxDepth}
}

// Sample returns the color of pixel (col, row) of an nx by ny image
func (s *AdaptiveSampler) Sample(nx, ny, col, row int) core.Vec3 {
	if s.maxDepth == 0 {
		return s.trace(s.camera.ConstructRay(nx, ny, col, row))
	}
	return s.sampleAdaptive(nx, ny, col, row, 1)
}

// RayCount returns the number of primary rays traced so far
func (s *AdaptiveSampler) RayCount() int64 {
	return s.rays.Load()
}

func (s *AdaptiveSampler) trace(ray core.Ray) core.Vec3 {
	s.rays.Add(1)
	return s.integrator.TraceRay(ray)
}

func (s *AdaptiveSampler) sampleAdaptive(nx, ny, col, row, depth int) core.Vec3 {
	var colors [4]core.Vec3
	for i, corner := range corners {
		colors[i] = s.trace(s.camera.ConstructCornerRay(nx, ny, col, row, corner))
	}

	if depth >= s.maxDepth || cornersAgree(colors) {
		return average(colors)
	}

	var quadrants [4]core.Vec3
	for i, offset := range [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		quadrants[i] = s.sampleAdaptive(nx*2, ny*2, col*2+offset[0], row*2+offset[1], depth+1)
	}
	return average(quadrants)
}

func cornersAgree(colors [4]core.Vec3) bool {
	for _, c := range colors[1:] {
		if !core.WithinTolerance(colors[0], c, CornerTolerance) {
			return false
		}
	}
	return true
}

func average(colors [4]core.Vec3) core.Vec3 {
	sum := core.Black
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.Divide(4)
}
