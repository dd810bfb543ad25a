// Package imagewriter turns rendered colors into PNG images.
package imagewriter

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/fogleman/gg"
)

// PNGWriter is an in-memory RGBA canvas that is saved as a PNG file on Flush.
// WritePixel is safe for concurrent use.
type PNGWriter struct {
	mu     sync.Mutex
	path   string
	width  int
	height int
	img    *image.RGBA
	dc     *gg.Context
}

// NewPNGWriter creates a width by height canvas that flushes to path.
// An empty path is allowed for writers that are only encoded to a stream.
func NewPNGWriter(path string, width, height int) (*PNGWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, core.InvalidArgf("image size %dx%d must be positive", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &PNGWriter{
		path:   path,
		width:  width,
		height: height,
		img:    img,
		dc:     gg.NewContextForRGBA(img),
	}, nil
}

func (w *PNGWriter) Width() int  { return w.width }
func (w *PNGWriter) Height() int { return w.height }

// Path returns the file Flush writes to
func (w *PNGWriter) Path() string { return w.path }

// WritePixel quantizes color to 8 bits per channel and stores it at (col, row)
func (w *PNGWriter) WritePixel(col, row int, color core.Vec3) error {
	if col < 0 || col >= w.width || row < 0 || row >= w.height {
		return core.InvalidArgf("pixel (%d,%d) outside %dx%d image", col, row, w.width, w.height)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dc.SetColor(core.ToRGBA(color))
	w.dc.SetPixel(col, row)
	return nil
}

// Image returns the canvas
func (w *PNGWriter) Image() image.Image {
	return w.img
}

// Encode writes the canvas as PNG to out
func (w *PNGWriter) Encode(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dc.EncodePNG(out)
}

// Flush saves the canvas to the writer's path, creating parent directories
func (w *PNGWriter) Flush() error {
	if w.path == "" {
		return fmt.Errorf("png writer has no output path: %w", core.ErrNotReady)
	}
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.dc.SavePNG(w.path); err != nil {
		return fmt.Errorf("save %s: %w", w.path, err)
	}
	return nil
}
