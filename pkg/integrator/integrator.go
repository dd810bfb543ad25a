package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms. It must
// be safe to call TraceRay from many goroutines at once.
type Integrator interface {
	// TraceRay returns the color seen along a primary ray, on the 0-255 scale
	TraceRay(ray core.Ray) core.Vec3
}
