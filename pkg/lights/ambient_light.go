package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// AmbientLight is a constant light added to every traced ray
type AmbientLight struct {
	Intensity core.Vec3
}

// NewAmbientLight creates an ambient light of intensity ia scaled by the attenuation ka
func NewAmbientLight(ia, ka core.Vec3) AmbientLight {
	return AmbientLight{Intensity: ia.MultiplyVec(ka)}
}
