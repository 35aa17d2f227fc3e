package renderer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RowTask represents one image row for the worker pool
type RowTask struct {
	Row int
}

// RowFunc renders a single row. It is called concurrently for distinct rows.
type RowFunc func(task RowTask) error

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run feeds rows [0, rows) to the workers and waits for them to finish.
// Workers check ctx before each row, so cancellation stops the render within one row
// per worker. The first error from render or ctx is returned.
func (wp *WorkerPool) Run(ctx context.Context, rows int, render RowFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan RowTask, rows)

	g.Go(func() error {
		defer close(taskQueue)
		for row := 0; row < rows; row++ {
			select {
			case taskQueue <- RowTask{Row: row}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for task := range taskQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := render(task); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
