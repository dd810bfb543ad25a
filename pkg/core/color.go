package core

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors are Vec3 triples on the 0-255 scale. Light intensities may exceed
// 255; values are clamped only when quantized.

// Black is the zero color
var Black = Vec3{}

// NewColor creates a color from red, green and blue on the 0-255 scale
func NewColor(r, g, b float64) Vec3 {
	return Vec3{X: r, Y: g, Z: b}
}

// toColorful maps a 0-255 color onto go-colorful's unit range, clamped
func toColorful(c Vec3) colorful.Color {
	return colorful.Color{R: c.X / 255.0, G: c.Y / 255.0, B: c.Z / 255.0}.Clamped()
}

// ToRGBA quantizes a color to 8 bits per channel
func ToRGBA(c Vec3) color.RGBA {
	r, g, b := toColorful(c).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WithinTolerance reports whether two colors agree within tol on the 8-bit scale in every channel
func WithinTolerance(a, b Vec3, tol int) bool {
	ar, ag, ab := toColorful(a).RGB255()
	br, bg, bb := toColorful(b).RGB255()
	return absDiff(ar, br) <= tol && absDiff(ag, bg) <= tol && absDiff(ab, bb) <= tol
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
