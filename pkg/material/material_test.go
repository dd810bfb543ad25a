package material

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestDefault_IsOpaqueAndMatte(t *testing.T) {
	m := Default()

	if m.KT != (core.Vec3{}) {
		t.Errorf("Expected opaque default, got kT=%v", m.KT)
	}
	if m.KR != (core.Vec3{}) {
		t.Errorf("Expected non-reflective default, got kR=%v", m.KR)
	}
	if m.KS != (core.Vec3{}) || m.Shininess != 0 {
		t.Errorf("Expected no specular term, got kS=%v shininess=%d", m.KS, m.Shininess)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Default material should validate, got %v", err)
	}
}

func TestNewPhong_WithCopies(t *testing.T) {
	base := NewPhong(0.5, 0.5, 300)
	glass := base.WithTransparency(0.6)
	mirror := base.WithReflection(1)

	if base.KT != (core.Vec3{}) || base.KR != (core.Vec3{}) {
		t.Error("With* should not modify the receiver")
	}
	if glass.KT != core.Uniform(0.6) {
		t.Errorf("Expected kT 0.6, got %v", glass.KT)
	}
	if mirror.KR != core.Uniform(1) {
		t.Errorf("Expected kR 1, got %v", mirror.KR)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		valid    bool
	}{
		{"phong", NewPhong(0.2, 0.8, 60), true},
		{"diffuse above one", Material{KD: core.NewVec3(0.5, 1.2, 0)}, false},
		{"negative transparency", Material{KT: core.NewVec3(-0.1, 0, 0)}, false},
		{"negative shininess", Material{Shininess: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid material, got %v", err)
			}
			if !tt.valid && !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
