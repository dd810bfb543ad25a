package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ImageWriter is the pixel sink a render writes into. WritePixel is called
// concurrently, at most once per pixel.
type ImageWriter interface {
	Width() int
	Height() int
	WritePixel(col, row int, color core.Vec3) error
	Flush() error
}

// Config contains render configuration
type Config struct {
	Threads       int  // Worker goroutines; 0 picks DefaultThreads
	AdaptiveDepth int  // Maximum supersampling depth; 0 casts one ray per pixel
	DebugProgress bool // Log the dispatched percentage while rendering
}

// DefaultConfig returns a single-ray-per-pixel render on automatic threads
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the render configuration
func (c Config) Validate() error {
	if c.Threads < 0 {
		return core.InvalidArgf("threads %d must be 0 or higher", c.Threads)
	}
	if c.AdaptiveDepth < 0 {
		return core.InvalidArgf("adaptive depth %d must be 0 or higher", c.AdaptiveDepth)
	}
	return nil
}

// Renderer renders a scene through a camera into an image writer
type Renderer struct {
	Camera     *Camera
	Integrator integrator.Integrator
	Writer     ImageWriter
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer. A nil logger uses NewDefaultLogger.
func NewRenderer(camera *Camera, integ integrator.Integrator, writer ImageWriter, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		Camera:     camera,
		Integrator: integ,
		Writer:     writer,
		config:     config,
		logger:     logger,
	}
}

// ready reports which required collaborator is missing
func (r *Renderer) ready() error {
	switch {
	case r.Writer == nil:
		return fmt.Errorf("image writer not set: %w", core.ErrNotReady)
	case r.Camera == nil:
		return fmt.Errorf("camera not set: %w", core.ErrNotReady)
	case r.Integrator == nil:
		return fmt.Errorf("integrator not set: %w", core.ErrNotReady)
	}
	return nil
}

// Render computes every pixel and writes it to the image writer. It does not
// flush the writer. The first pixel error aborts the whole render.
func (r *Renderer) Render(ctx context.Context) (RenderStats, error) {
	if err := r.ready(); err != nil {
		return RenderStats{}, err
	}
	if err := r.config.Validate(); err != nil {
		return RenderStats{}, err
	}

	width, height := r.Writer.Width(), r.Writer.Height()
	counter := NewPixelCounter(height, width)
	sampler := NewAdaptiveSampler(r.Camera, r.Integrator, r.config.AdaptiveDepth)

	var onProgress func(int)
	if r.config.DebugProgress {
		onProgress = func(percent int) {
			r.logger.Printf("\r %02d%%", percent)
		}
	}
	pool := NewWorkerPool(counter, r.config.Threads, onProgress)

	r.logger.Printf("Rendering %dx%d with %d workers (adaptive depth %d)\n",
		width, height, pool.NumWorkers(), r.config.AdaptiveDepth)
	start := time.Now()

	err := pool.Run(ctx, func(p Pixel) error {
		color := sampler.Sample(width, height, p.Col, p.Row)
		return r.Writer.WritePixel(p.Col, p.Row, color)
	})

	stats := RenderStats{
		TotalPixels: counter.Total(),
		PrimaryRays: sampler.RayCount(),
		Workers:     pool.NumWorkers(),
		Duration:    time.Since(start),
	}
	if r.config.DebugProgress {
		r.logger.Printf("\n")
	}
	if err != nil {
		return stats, fmt.Errorf("render aborted: %w", err)
	}

	r.logger.Printf("Render completed in %v: %d primary rays, %.2f per pixel\n",
		stats.Duration, stats.PrimaryRays, stats.RaysPerPixel())
	return stats, nil
}

// PrintGrid overwrites every pixel on a row or column that is a multiple of
// interval with color. It does not flush the writer.
func PrintGrid(writer ImageWriter, interval int, color core.Vec3) error {
	if writer == nil {
		return fmt.Errorf("image writer not set: %w", core.ErrNotReady)
	}
	if interval <= 0 {
		return core.InvalidArgf("grid interval %d must be positive", interval)
	}
	for row := 0; row < writer.Height(); row++ {
		for col := 0; col < writer.Width(); col++ {
			if row%interval == 0 || col%interval == 0 {
				if err := writer.WritePixel(col, row, color); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
