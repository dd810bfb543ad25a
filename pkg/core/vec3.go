package core

import (
	"fmt"
	"math"
)

// zeroEpsilon is the tolerance for IsZero and AlignZero
const zeroEpsilon = 1e-10

// IsZero reports whether x is zero within floating point tolerance
func IsZero(x float64) bool {
	return math.Abs(x) < zeroEpsilon
}

// AlignZero snaps values within tolerance of zero to exactly zero
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

// Vec3 represents a 3D vector, point or RGB color triple
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Uniform returns a vector with the same value in every component
func Uniform(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Direction returns v normalized, rejecting zero-length vectors
func Direction(v Vec3) (Vec3, error) {
	if IsZero(v.LengthSquared()) {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrZeroVector)
	}
	return v.Normalize(), nil
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the euclidean distance between two points
func (v Vec3) Distance(other Vec3) float64 {
	return v.Subtract(other).Length()
}

// DistanceSquared returns the squared distance between two points
func (v Vec3) DistanceSquared(other Vec3) float64 {
	return v.Subtract(other).LengthSquared()
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Reflect mirrors v about the unit normal n: v - 2(v·n)n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// RotateAround rotates v around a unit axis by the given angle in degrees (Rodrigues' formula)
func (v Vec3) RotateAround(axis Vec3, degrees float64) Vec3 {
	theta := degrees * math.Pi / 180.0
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return v.Multiply(cos).
		Add(axis.Cross(v).Multiply(sin)).
		Add(axis.Multiply(axis.Dot(v) * (1 - cos)))
}

// Equal reports whether two vectors match within tolerance in every component
func (v Vec3) Equal(other Vec3) bool {
	return IsZero(v.X-other.X) && IsZero(v.Y-other.Y) && IsZero(v.Z-other.Z)
}

// Below reports whether every component is strictly less than threshold
func (v Vec3) Below(threshold float64) bool {
	return v.X < threshold && v.Y < threshold && v.Z < threshold
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// String formats the vector as (x, y, z)
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
