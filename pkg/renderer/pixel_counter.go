package renderer

import "sync"

// Pixel identifies one image pixel
type Pixel struct {
	Row, Col int
}

// PixelCounter hands out every pixel of an image exactly once, row by row.
// It is the only mutable state workers share.
type PixelCounter struct {
	mu       sync.Mutex
	rows     int
	cols     int
	next     int
	reported int // Last whole percentage returned by Next
}

// NewPixelCounter creates a counter over a rows by cols image
func NewPixelCounter(rows, cols int) *PixelCounter {
	return &PixelCounter{rows: rows, cols: cols}
}

// Next returns the next pixel, or false once all pixels have been handed
// out. percent is the dispatched percentage when this call crossed a whole
// percent boundary, otherwise -1.
func (pc *PixelCounter) Next() (pixel Pixel, percent int, ok bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.rows * pc.cols
	if pc.next >= total {
		return Pixel{}, -1, false
	}
	pixel = Pixel{Row: pc.next / pc.cols, Col: pc.next % pc.cols}
	pc.next++

	percent = -1
	if p := pc.next * 100 / total; p > pc.reported {
		pc.reported = p
		percent = p
	}
	return pixel, percent, true
}

// Total returns the number of pixels the counter covers
func (pc *PixelCounter) Total() int {
	return pc.rows * pc.cols
}
