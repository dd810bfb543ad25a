package core

import "testing"

func TestToRGBA_Clamps(t *testing.T) {
	tests := []struct {
		name    string
		color   Vec3
		r, g, b uint8
	}{
		{"black", Black, 0, 0, 0},
		{"in range", NewColor(10, 128, 255), 10, 128, 255},
		{"overexposed", NewColor(800, 500, 250), 255, 255, 250},
		{"negative", NewColor(-20, 0, 5), 0, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ToRGBA(tt.color)
			if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
				t.Errorf("Expected (%d,%d,%d,255), got (%d,%d,%d,%d)", tt.r, tt.g, tt.b, c.R, c.G, c.B, c.A)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	base := NewColor(100, 100, 100)

	if !WithinTolerance(base, NewColor(110, 90, 100), 10) {
		t.Error("Colors 10 apart should be within tolerance 10")
	}
	if WithinTolerance(base, NewColor(100, 100, 111), 10) {
		t.Error("Colors 11 apart should not be within tolerance 10")
	}
	if !WithinTolerance(NewColor(300, 0, 0), NewColor(900, 0, 0), 0) {
		t.Error("Colors that both saturate should compare equal")
	}
}
