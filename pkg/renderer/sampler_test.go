package renderer

import (
	"sync/atomic"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// fakeIntegrator returns color(ray) and counts how often it was asked
type fakeIntegrator struct {
	color func(ray core.Ray) core.Vec3
	calls atomic.Int64
}

func (f *fakeIntegrator) TraceRay(ray core.Ray) core.Vec3 {
	f.calls.Add(1)
	return f.color(ray)
}

func constantIntegrator(c core.Vec3) *fakeIntegrator {
	return &fakeIntegrator{color: func(core.Ray) core.Vec3 { return c }}
}

// splitIntegrator is white on the right half of the view and black on the left
func splitIntegrator() *fakeIntegrator {
	return &fakeIntegrator{color: func(ray core.Ray) core.Vec3 {
		if ray.Direction.X > 0 {
			return core.Uniform(255)
		}
		return core.Black
	}}
}

func TestAdaptiveSampler_RayCounts(t *testing.T) {
	tests := []struct {
		name     string
		integ    *fakeIntegrator
		maxDepth int
		expected int64
	}{
		{"single center ray", splitIntegrator(), 0, 1},
		{"uniform corners stop at first level", constantIntegrator(core.NewVec3(10, 20, 30)), 3, 4},
		{"split corners subdivide once", splitIntegrator(), 2, 20},
		{"split corners stop at depth one", splitIntegrator(), 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := NewAdaptiveSampler(unitCamera(t), tt.integ, tt.maxDepth)
			sampler.Sample(1, 1, 0, 0)
			if got := tt.integ.calls.Load(); got != tt.expected {
				t.Errorf("Expected %d trace calls, got %d", tt.expected, got)
			}
			if got := sampler.RayCount(); got != tt.expected {
				t.Errorf("Expected ray count %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAdaptiveSampler_ConstantColor(t *testing.T) {
	color := core.NewVec3(10, 20, 30)
	sampler := NewAdaptiveSampler(unitCamera(t), constantIntegrator(color), 2)

	got := sampler.Sample(3, 3, 1, 1)
	if !vecNear(got, color, 1e-9) {
		t.Errorf("Expected %v, got %v", color, got)
	}
}

func TestAdaptiveSampler_SplitPixelIsBlended(t *testing.T) {
	sampler := NewAdaptiveSampler(unitCamera(t), splitIntegrator(), 1)

	// Two corners see white and two see black
	got := sampler.Sample(1, 1, 0, 0)
	if !vecNear(got, core.Uniform(127.5), 1e-9) {
		t.Errorf("Expected half white, got %v", got)
	}
}

func TestCornersAgree(t *testing.T) {
	base := core.NewVec3(100, 100, 100)

	tests := []struct {
		name     string
		other    core.Vec3
		expected bool
	}{
		{"identical", base, true},
		{"within tolerance", core.NewVec3(108, 95, 100), true},
		{"outside tolerance", core.NewVec3(100, 100, 120), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := [4]core.Vec3{base, base, tt.other, base}
			if got := cornersAgree(colors); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
