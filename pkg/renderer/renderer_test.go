package renderer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// memoryWriter records pixels in memory and counts writes per pixel
type memoryWriter struct {
	mu     sync.Mutex
	width  int
	height int
	pixels map[Pixel]core.Vec3
	writes map[Pixel]int
	failAt *Pixel
}

func newMemoryWriter(width, height int) *memoryWriter {
	return &memoryWriter{
		width:  width,
		height: height,
		pixels: make(map[Pixel]core.Vec3),
		writes: make(map[Pixel]int),
	}
}

func (w *memoryWriter) Width() int  { return w.width }
func (w *memoryWriter) Height() int { return w.height }
func (w *memoryWriter) Flush() error {
	return nil
}

func (w *memoryWriter) WritePixel(col, row int, color core.Vec3) error {
	p := Pixel{Row: row, Col: col}
	if w.failAt != nil && *w.failAt == p {
		return fmt.Errorf("disk full")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pixels[p] = color
	w.writes[p]++
	return nil
}

// captureLogger collects log output
type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *captureLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "")
}

func TestRenderer_WritesEveryPixelOnce(t *testing.T) {
	color := core.NewVec3(1, 2, 3)
	writer := newMemoryWriter(8, 5)
	logger := &captureLogger{}
	r := NewRenderer(unitCamera(t), constantIntegrator(color), writer, Config{Threads: 3}, logger)

	stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(writer.writes) != 40 {
		t.Errorf("Expected 40 pixels written, got %d", len(writer.writes))
	}
	for p, n := range writer.writes {
		if n != 1 {
			t.Errorf("Pixel %v written %d times", p, n)
		}
		if writer.pixels[p] != color {
			t.Errorf("Pixel %v: expected %v, got %v", p, color, writer.pixels[p])
		}
	}

	if stats.TotalPixels != 40 || stats.PrimaryRays != 40 || stats.Workers != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if !strings.Contains(logger.String(), "Render completed") {
		t.Errorf("Expected completion log, got %q", logger.String())
	}
}

func TestRenderer_AdaptiveStats(t *testing.T) {
	writer := newMemoryWriter(4, 4)
	r := NewRenderer(unitCamera(t), constantIntegrator(core.Black), writer, Config{Threads: 2, AdaptiveDepth: 3}, &captureLogger{})

	stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.RaysPerPixel() != 4 {
		t.Errorf("Expected 4 rays per pixel for a uniform image, got %f", stats.RaysPerPixel())
	}
}

func TestRenderer_DebugProgress(t *testing.T) {
	logger := &captureLogger{}
	r := NewRenderer(unitCamera(t), constantIntegrator(core.Black), newMemoryWriter(10, 10), Config{Threads: 1, DebugProgress: true}, logger)

	if _, err := r.Render(context.Background()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(logger.String(), "\r 100%") {
		t.Errorf("Expected progress output, got %q", logger.String())
	}
}

func TestRenderer_NotReady(t *testing.T) {
	camera := unitCamera(t)
	integ := constantIntegrator(core.Black)
	writer := newMemoryWriter(2, 2)

	tests := []struct {
		name     string
		renderer *Renderer
	}{
		{"missing writer", NewRenderer(camera, integ, nil, Config{}, &captureLogger{})},
		{"missing camera", NewRenderer(nil, integ, writer, Config{}, &captureLogger{})},
		{"missing integrator", NewRenderer(camera, nil, writer, Config{}, &captureLogger{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.renderer.Render(context.Background()); !errors.Is(err, core.ErrNotReady) {
				t.Errorf("Expected ErrNotReady, got %v", err)
			}
		})
	}
}

func TestRenderer_InvalidConfig(t *testing.T) {
	r := NewRenderer(unitCamera(t), constantIntegrator(core.Black), newMemoryWriter(2, 2), Config{AdaptiveDepth: -1}, &captureLogger{})
	if _, err := r.Render(context.Background()); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestRenderer_PanicBecomesError(t *testing.T) {
	integ := &fakeIntegrator{color: func(core.Ray) core.Vec3 { panic("bad geometry") }}
	r := NewRenderer(unitCamera(t), integ, newMemoryWriter(4, 4), Config{Threads: 2}, &captureLogger{})

	_, err := r.Render(context.Background())
	if err == nil || !strings.Contains(err.Error(), "bad geometry") {
		t.Errorf("Expected panic to surface as error, got %v", err)
	}
}

func TestRenderer_WriterErrorAborts(t *testing.T) {
	writer := newMemoryWriter(4, 4)
	writer.failAt = &Pixel{Row: 2, Col: 1}
	r := NewRenderer(unitCamera(t), constantIntegrator(core.Black), writer, Config{Threads: 1}, &captureLogger{})

	_, err := r.Render(context.Background())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Expected writer error, got %v", err)
	}
	// A single worker stops at the failing pixel
	if len(writer.writes) != 9 {
		t.Errorf("Expected 9 pixels before the failure, got %d", len(writer.writes))
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	writer := newMemoryWriter(4, 4)
	r := NewRenderer(unitCamera(t), constantIntegrator(core.Black), writer, Config{Threads: 2}, &captureLogger{})

	if _, err := r.Render(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(writer.writes) != 0 {
		t.Errorf("Expected no pixels written, got %d", len(writer.writes))
	}
}

func TestPrintGrid(t *testing.T) {
	writer := newMemoryWriter(7, 5)
	yellow := core.NewColor(255, 255, 0)

	if err := PrintGrid(writer, 3, yellow); err != nil {
		t.Fatalf("PrintGrid failed: %v", err)
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 7; col++ {
			_, written := writer.pixels[Pixel{Row: row, Col: col}]
			onGrid := row%3 == 0 || col%3 == 0
			if written != onGrid {
				t.Errorf("Pixel (%d,%d): written=%v, expected %v", col, row, written, onGrid)
			}
		}
	}

	if err := PrintGrid(writer, 0, yellow); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero interval, got %v", err)
	}
	if err := PrintGrid(nil, 3, yellow); !errors.Is(err, core.ErrNotReady) {
		t.Errorf("Expected ErrNotReady for missing writer, got %v", err)
	}
}

func TestDefaultThreads(t *testing.T) {
	if n := DefaultThreads(); n < 1 {
		t.Errorf("Expected at least one thread, got %d", n)
	}
}
