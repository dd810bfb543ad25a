package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes the camera position and view plane
type CameraConfig struct {
	Position          core.Vec3 // Camera location
	Forward           core.Vec3 // Viewing direction
	Up                core.Vec3 // Up direction, orthogonal to Forward
	ViewPlaneWidth    float64   // View plane width in scene units
	ViewPlaneHeight   float64   // View plane height in scene units
	ViewPlaneDistance float64   // Distance from the camera to the view plane
}

// Camera maps pixel coordinates to primary rays. It is immutable once built
// and may be shared between goroutines.
type Camera struct {
	position core.Vec3
	forward  core.Vec3
	up       core.Vec3
	right    core.Vec3
	width    float64
	height   float64
	distance float64
}

// Corner selects one corner of a pixel
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// corners lists every corner in sampling order
var corners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

// NewCamera validates the config and derives the orthonormal view basis
func NewCamera(config CameraConfig) (*Camera, error) {
	forward, err := core.Direction(config.Forward)
	if err != nil {
		return nil, fmt.Errorf("camera forward: %w", err)
	}
	up, err := core.Direction(config.Up)
	if err != nil {
		return nil, fmt.Errorf("camera up: %w", err)
	}
	if !core.IsZero(forward.Dot(up)) {
		return nil, core.InvalidArgf("camera forward %v and up %v are not orthogonal", config.Forward, config.Up)
	}
	if config.ViewPlaneWidth <= 0 || config.ViewPlaneHeight <= 0 {
		return nil, core.InvalidArgf("view plane size %gx%g must be positive", config.ViewPlaneWidth, config.ViewPlaneHeight)
	}
	if core.IsZero(config.ViewPlaneDistance) {
		return nil, core.InvalidArgf("view plane distance must not be zero")
	}

	return &Camera{
		position: config.Position,
		forward:  forward,
		up:       up,
		right:    forward.Cross(up).Normalize(),
		width:    config.ViewPlaneWidth,
		height:   config.ViewPlaneHeight,
		distance: config.ViewPlaneDistance,
	}, nil
}

// Position returns the camera location
func (c *Camera) Position() core.Vec3 { return c.position }

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Up returns the unit up direction
func (c *Camera) Up() core.Vec3 { return c.up }

// Right returns the unit right direction, forward × up
func (c *Camera) Right() core.Vec3 { return c.right }

// Roll returns a copy of the camera rotated around its forward axis
func (c *Camera) Roll(degrees float64) *Camera {
	rolled := *c
	rolled.up = c.up.RotateAround(c.forward, degrees).Normalize()
	rolled.right = rolled.forward.Cross(rolled.up).Normalize()
	return &rolled
}

// ConstructRay returns the ray through the center of pixel (col, row) of an
// nx by ny grid. Row 0 is the top of the image.
func (c *Camera) ConstructRay(nx, ny, col, row int) core.Ray {
	x, y := c.pixelCenter(nx, ny, col, row)
	return c.rayThrough(x, y)
}

// ConstructCornerRay returns the ray through one corner of pixel (col, row)
func (c *Camera) ConstructCornerRay(nx, ny, col, row int, corner Corner) core.Ray {
	x, y := c.pixelCenter(nx, ny, col, row)
	halfX := c.width / float64(nx) / 2
	halfY := c.height / float64(ny) / 2

	switch corner {
	case TopLeft:
		x, y = x-halfX, y+halfY
	case TopRight:
		x, y = x+halfX, y+halfY
	case BottomRight:
		x, y = x+halfX, y-halfY
	case BottomLeft:
		x, y = x-halfX, y-halfY
	}
	return c.rayThrough(x, y)
}

// pixelCenter returns the offset of the pixel center from the view plane
// center, along right and up
func (c *Camera) pixelCenter(nx, ny, col, row int) (float64, float64) {
	rx := c.width / float64(nx)
	ry := c.height / float64(ny)
	x := core.AlignZero((float64(col) - float64(nx-1)/2) * rx)
	y := core.AlignZero(-(float64(row) - float64(ny-1)/2) * ry)
	return x, y
}

func (c *Camera) rayThrough(x, y float64) core.Ray {
	p := c.position.Add(c.forward.Multiply(c.distance))
	if x != 0 {
		p = p.Add(c.right.Multiply(x))
	}
	if y != 0 {
		p = p.Add(c.up.Multiply(y))
	}
	return core.NewRay(c.position, p.Subtract(c.position))
}
