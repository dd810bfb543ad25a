package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// CameraForView builds the camera a preset view describes, with extra roll
// in degrees added to the view's own
func CameraForView(view scene.View, extraRoll float64) (*Camera, error) {
	camera, err := NewCamera(CameraConfig{
		Position:          view.Position,
		Forward:           view.Forward,
		Up:                view.Up,
		ViewPlaneWidth:    view.ViewPlaneWidth,
		ViewPlaneHeight:   view.ViewPlaneHeight,
		ViewPlaneDistance: view.ViewPlaneDistance,
	})
	if err != nil {
		return nil, err
	}
	if roll := view.Roll + extraRoll; roll != 0 {
		camera = camera.Roll(roll)
	}
	return camera, nil
}

// NewPresetRenderer wires a preset's camera and a Whitted integrator over its
// scene to writer
func NewPresetRenderer(preset *scene.Preset, writer ImageWriter, config Config, tracer integrator.Config, extraRoll float64, logger core.Logger) (*Renderer, error) {
	if preset == nil {
		return nil, fmt.Errorf("preset not set: %w", core.ErrNotReady)
	}
	camera, err := CameraForView(preset.View, extraRoll)
	if err != nil {
		return nil, fmt.Errorf("camera for %q: %w", preset.Scene.Name, err)
	}
	whitted, err := integrator.NewWhitted(preset.Scene, tracer)
	if err != nil {
		return nil, err
	}
	return NewRenderer(camera, whitted, writer, config, logger), nil
}
