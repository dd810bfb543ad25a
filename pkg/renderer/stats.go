package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	PrimaryRays int64         // Rays cast from the camera, corners included
	Workers     int           // Number of parallel workers used
	Duration    time.Duration // Wall time of the render
}

// RaysPerPixel returns the average number of primary rays per pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.PrimaryRays) / float64(s.TotalPixels)
}
