package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong coefficients of a surface. Every coefficient is
// an RGB triple in [0,1].
type Material struct {
	KD        core.Vec3 // Diffuse attenuation
	KS        core.Vec3 // Specular attenuation
	KT        core.Vec3 // Transparency
	KR        core.Vec3 // Reflectivity
	Shininess int       // Specular exponent
}

// Default returns a fully opaque, non-reflective material with no specular term
func Default() Material {
	return Material{}
}

// NewPhong creates an opaque material with uniform diffuse and specular coefficients
func NewPhong(kd, ks float64, shininess int) Material {
	return Material{
		KD:        core.Uniform(kd),
		KS:        core.Uniform(ks),
		Shininess: shininess,
	}
}

// WithTransparency returns a copy with a uniform transparency coefficient
func (m Material) WithTransparency(kt float64) Material {
	m.KT = core.Uniform(kt)
	return m
}

// WithReflection returns a copy with a uniform reflectivity coefficient
func (m Material) WithReflection(kr float64) Material {
	m.KR = core.Uniform(kr)
	return m
}

// Validate checks that every coefficient is within [0,1] and shininess is not negative
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value core.Vec3
	}{
		{"kD", m.KD},
		{"kS", m.KS},
		{"kT", m.KT},
		{"kR", m.KR},
	}
	for _, c := range coefficients {
		if !inUnitRange(c.value) {
			return core.InvalidArgf("material %s %v outside [0,1]", c.name, c.value)
		}
	}
	if m.Shininess < 0 {
		return core.InvalidArgf("material shininess %d is negative", m.Shininess)
	}
	return nil
}

func inUnitRange(v core.Vec3) bool {
	return v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1 && v.Z >= 0 && v.Z <= 1
}
