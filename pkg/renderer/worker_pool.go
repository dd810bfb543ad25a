package renderer

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"
)

// spareThreads is how many cores the automatic thread count leaves free
const spareThreads = 2

// PixelTask renders one pixel
type PixelTask func(pixel Pixel) error

// WorkerPool runs pixel tasks on a fixed number of goroutines pulling from a
// shared PixelCounter
type WorkerPool struct {
	numWorkers int
	counter    *PixelCounter
	onProgress func(percent int)
}

// NewWorkerPool creates a worker pool. numWorkers 0 picks DefaultThreads.
func NewWorkerPool(counter *PixelCounter, numWorkers int, onProgress func(percent int)) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultThreads()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		counter:    counter,
		onProgress: onProgress,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run executes task for every pixel of the counter. The first error, or a
// panic inside a task, stops every worker and is returned.
func (wp *WorkerPool) Run(ctx context.Context, task PixelTask) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			return wp.work(ctx, task)
		})
	}
	return g.Wait()
}

func (wp *WorkerPool) work(ctx context.Context, task PixelTask) (err error) {
	var current Pixel
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render pixel (%d,%d): panic: %v", current.Col, current.Row, r)
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		pixel, percent, ok := wp.counter.Next()
		if !ok {
			return nil
		}
		if percent >= 0 && wp.onProgress != nil {
			wp.onProgress(percent)
		}
		current = pixel
		if err := task(pixel); err != nil {
			return err
		}
	}
}

// DefaultThreads returns the automatic worker count: the number of logical
// cores minus two, at least one
func DefaultThreads() int {
	cores, err := cpu.Counts(true)
	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}
	return max(1, cores-spareThreads)
}
