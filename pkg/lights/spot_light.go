package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SpotLightConfig describes a spot light. A zero NarrowBeam means 1.
type SpotLightConfig struct {
	PointLightConfig
	Direction  core.Vec3
	NarrowBeam float64 // Beam exponent; larger values narrow the beam
}

// SpotLight is a point light that only shines along a cone around its direction
type SpotLight struct {
	*PointLight
	direction  core.Vec3
	narrowBeam float64
}

// NewSpotLight creates a spot light from its config
func NewSpotLight(config SpotLightConfig) (*SpotLight, error) {
	point, err := NewPointLight(config.PointLightConfig)
	if err != nil {
		return nil, err
	}
	dir, err := core.Direction(config.Direction)
	if err != nil {
		return nil, fmt.Errorf("spot light direction: %w", err)
	}
	beam := config.NarrowBeam
	if beam == 0 {
		beam = 1
	}
	if beam < 1 {
		return nil, core.InvalidArgf("spot light narrow beam %g is below 1", beam)
	}
	return &SpotLight{PointLight: point, direction: dir, narrowBeam: beam}, nil
}

// Intensity scales the point light intensity by (direction·l)^NarrowBeam,
// black for points behind the spot
func (sl *SpotLight) Intensity(p core.Vec3) core.Vec3 {
	dot := core.AlignZero(sl.direction.Dot(sl.PointLight.Direction(p)))
	if dot <= 0 {
		return core.Black
	}
	if sl.narrowBeam != 1 {
		dot = math.Pow(dot, sl.narrowBeam)
	}
	return sl.PointLight.Intensity(p).Multiply(dot)
}
