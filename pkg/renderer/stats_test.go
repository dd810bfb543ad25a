package renderer

import "testing"

func TestRenderStats_RaysPerPixel(t *testing.T) {
	tests := []struct {
		name     string
		stats    RenderStats
		expected float64
	}{
		{"empty", RenderStats{}, 0},
		{"single ray", RenderStats{TotalPixels: 100, PrimaryRays: 100}, 1},
		{"supersampled", RenderStats{TotalPixels: 4, PrimaryRays: 28}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.RaysPerPixel(); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
