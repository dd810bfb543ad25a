package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along a fixed direction
type DirectionalLight struct {
	intensity core.Vec3
	direction core.Vec3
}

// NewDirectionalLight creates a directional light; the direction must be non-zero
func NewDirectionalLight(intensity, direction core.Vec3) (*DirectionalLight, error) {
	dir, err := core.Direction(direction)
	if err != nil {
		return nil, fmt.Errorf("directional light direction: %w", err)
	}
	return &DirectionalLight{intensity: intensity, direction: dir}, nil
}

// Intensity is the same everywhere
func (dl *DirectionalLight) Intensity(core.Vec3) core.Vec3 {
	return dl.intensity
}

// Direction is the same everywhere
func (dl *DirectionalLight) Direction(core.Vec3) core.Vec3 {
	return dl.direction
}

// Directions returns the single light direction
func (dl *DirectionalLight) Directions(p core.Vec3) []core.Vec3 {
	return []core.Vec3{dl.direction}
}

// Distance is infinite, so every occluder along the shadow ray counts
func (dl *DirectionalLight) Distance(core.Vec3) float64 {
	return math.Inf(1)
}
