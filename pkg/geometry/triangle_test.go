package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	triangle, err := NewTriangle(core.NewVec3(1, 1, 0), core.NewVec3(2, 2, 0), core.NewVec3(3, 1, 0), Appearance{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		hit       bool
		expected  core.Vec3
	}{
		{"inside", core.NewVec3(2, 0.5, -1), core.NewVec3(0, 1, 1), true, core.NewVec3(2, 1.5, 0)},
		{"on edge", core.NewVec3(2, 0, -1), core.NewVec3(0, 1, 1), false, core.Vec3{}},
		{"at vertex", core.NewVec3(1, 0, -1), core.NewVec3(0, 1, 1), false, core.Vec3{}},
		{"on edge continuation", core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 1), false, core.Vec3{}},
		{"outside against edge", core.NewVec3(1, 1, -1), core.NewVec3(0, 1, 1), false, core.Vec3{}},
		{"outside against vertex", core.NewVec3(2, 1, -1), core.NewVec3(0, 2, 1), false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := triangle.Intersect(core.NewRay(tt.origin, tt.direction), math.Inf(1))
			if !tt.hit {
				if hits != nil {
					t.Errorf("Expected no hits, got %v", hits[0].Point)
				}
				return
			}
			if len(hits) != 1 {
				t.Fatalf("Expected 1 hit, got %d", len(hits))
			}
			assertVec(t, "hit point", hits[0].Point, tt.expected, 1e-9)
			if hits[0].Surface != triangle {
				t.Error("Expected hit to reference the triangle")
			}
		})
	}
}

func TestNewPolygon_Validation(t *testing.T) {
	tests := []struct {
		name     string
		vertices []core.Vec3
	}{
		{"too few vertices", []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)}},
		{"collinear", []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0)}},
		{"not coplanar", []core.Vec3{
			core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 1),
		}},
		{"concave", []core.Vec3{
			core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(1, 0.5, 0), core.NewVec3(2, 2, 0), core.NewVec3(0, 2, 0),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(Appearance{}, tt.vertices...)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestPolygon_IntersectSquare(t *testing.T) {
	square, err := NewPolygon(Appearance{},
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}

	hits := square.Intersect(core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)), math.Inf(1))
	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit, got %d", len(hits))
	}
	assertVec(t, "hit point", hits[0].Point, core.NewVec3(0.5, 0.5, 0), 1e-9)

	if hits := square.Intersect(core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)), math.Inf(1)); hits != nil {
		t.Errorf("Expected miss outside the square, got %v", hits[0].Point)
	}
}
