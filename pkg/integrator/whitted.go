package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config bounds the recursion of the Whitted integrator
type Config struct {
	MaxLevel int     // Maximum shading depth, counting the primary hit
	MinK     float64 // Paths whose accumulated attenuation falls below this are cut
}

// DefaultConfig returns the standard recursion limits
func DefaultConfig() Config {
	return Config{
		MaxLevel: 10,
		MinK:     0.001,
	}
}

// Validate checks the recursion limits
func (c Config) Validate() error {
	if c.MaxLevel < 1 {
		return core.InvalidArgf("max level %d must be at least 1", c.MaxLevel)
	}
	if c.MinK <= 0 || c.MinK >= 1 {
		return core.InvalidArgf("min k %g must be in (0,1)", c.MinK)
	}
	return nil
}

// Whitted implements recursive Whitted-style ray tracing: Phong local
// lighting with graded shadows plus reflection and refraction rays
type Whitted struct {
	scene  *scene.Scene
	config Config
}

// NewWhitted creates a Whitted integrator over a scene
func NewWhitted(s *scene.Scene, config Config) (*Whitted, error) {
	if s == nil {
		return nil, fmt.Errorf("whitted integrator: %w", core.ErrNotReady)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Whitted{scene: s, config: config}, nil
}

// TraceRay returns the background when nothing is hit, otherwise the shaded
// closest hit plus the scene's ambient light
func (w *Whitted) TraceRay(ray core.Ray) core.Vec3 {
	hit, ok := w.findClosest(ray)
	if !ok {
		return w.scene.Background
	}
	return w.shade(hit, ray, w.config.MaxLevel, core.Uniform(1)).Add(w.scene.Ambient.Intensity)
}

func (w *Whitted) findClosest(ray core.Ray) (geometry.GeoPoint, bool) {
	return geometry.FindClosest(w.scene.Geometries.Intersect(ray, math.Inf(1)), ray.Origin)
}

// shade evaluates emission and local lighting at a hit, then recurses into
// the global effects until level reaches 1
func (w *Whitted) shade(gp geometry.GeoPoint, ray core.Ray, level int, k core.Vec3) core.Vec3 {
	color := gp.Surface.Look().Emission.Add(w.localEffects(gp, ray, k))
	if level == 1 {
		return color
	}
	return color.Add(w.globalEffects(gp, ray, level, k))
}

// localEffects sums the diffuse and specular contributions of every light.
// Multi-sample lights contribute the average over their sample directions.
func (w *Whitted) localEffects(gp geometry.GeoPoint, ray core.Ray, k core.Vec3) core.Vec3 {
	v := ray.Direction
	n := gp.Normal
	nv := core.AlignZero(n.Dot(v))
	if nv == 0 {
		return core.Black
	}

	mat := gp.Surface.Look().Material
	color := core.Black
	for _, light := range w.scene.Lights {
		directions := light.Directions(gp.Point)
		sum := core.Black
		for _, l := range directions {
			nl := core.AlignZero(n.Dot(l))
			if nl*nv <= 0 {
				continue
			}
			ktr := w.transparency(gp, light, l, n)
			if ktr.MultiplyVec(k).Below(w.config.MinK) {
				continue
			}
			iL := light.Intensity(gp.Point).MultiplyVec(ktr)
			diffuse := mat.KD.Multiply(math.Abs(nl))
			specular := mat.KS.Multiply(specularFactor(l, n, nl, v, mat.Shininess))
			sum = sum.Add(iL.MultiplyVec(diffuse.Add(specular)))
		}
		color = color.Add(sum.Divide(float64(len(directions))))
	}
	return color
}

// specularFactor is max(0, -v·r)^shininess with r the reflection of l about n
func specularFactor(l, n core.Vec3, nl float64, v core.Vec3, shininess int) float64 {
	r := l.Subtract(n.Multiply(2 * nl))
	minusVR := core.AlignZero(-v.Dot(r))
	if minusVR <= 0 {
		return 0
	}
	return math.Pow(minusVR, float64(shininess))
}

// transparency returns the product of the transparency coefficients of
// everything between the point and the light. It is zero once the product
// falls below MinK.
func (w *Whitted) transparency(gp geometry.GeoPoint, light lights.LightSource, l, n core.Vec3) core.Vec3 {
	shadowRay := core.NewOffsetRay(gp.Point, l.Negate(), n)
	hits := w.scene.Geometries.Intersect(shadowRay, light.Distance(gp.Point))

	ktr := core.Uniform(1)
	for _, hit := range hits {
		ktr = ktr.MultiplyVec(hit.Surface.Look().Material.KT)
		if ktr.Below(w.config.MinK) {
			return core.Black
		}
	}
	return ktr
}

// globalEffects casts the reflected and refracted rays whose accumulated
// attenuation is still above MinK
func (w *Whitted) globalEffects(gp geometry.GeoPoint, ray core.Ray, level int, k core.Vec3) core.Vec3 {
	mat := gp.Surface.Look().Material
	v := ray.Direction
	n := gp.Normal

	color := core.Black
	if kkr := mat.KR.MultiplyVec(k); !kkr.Below(w.config.MinK) {
		reflected := core.NewOffsetRay(gp.Point, v.Reflect(n), n)
		color = color.Add(w.globalEffect(reflected, level, kkr, mat.KR))
	}
	if kkt := mat.KT.MultiplyVec(k); !kkt.Below(w.config.MinK) {
		refracted := core.NewOffsetRay(gp.Point, v, n)
		color = color.Add(w.globalEffect(refracted, level, kkt, mat.KT))
	}
	return color
}

func (w *Whitted) globalEffect(ray core.Ray, level int, kk, kx core.Vec3) core.Vec3 {
	hit, ok := w.findClosest(ray)
	if !ok {
		return w.scene.Background.MultiplyVec(kx)
	}
	return w.shade(hit, ray, level-1, kk).MultiplyVec(kx)
}
