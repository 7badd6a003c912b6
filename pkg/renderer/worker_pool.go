package renderer

import (
	"runtime"
	"sync"

	"rayscene/pkg/core"
)

// RowTask represents one raster row to render. Pixels is the caller's slot
// for that row; rows never overlap, so workers write without locking.
type RowTask struct {
	Row    int
	Pixels []core.Vec3
}

// RowResult contains the per-row statistics from a finished task
type RowResult struct {
	Row  int
	Hits int
}

// WorkerPool distributes row rendering across goroutines
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders row tasks from the shared queue
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative numWorkers selects one worker per CPU; totalRows sizes
// the queues so that submission and collection never block.
func NewWorkerPool(raytracer *Raytracer, numWorkers, totalRows int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, totalRows),
		resultQueue: make(chan RowResult, totalRows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop signals that no more tasks will be submitted and waits for the
// workers to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		hits := w.raytracer.renderRow(task.Row, task.Pixels)
		w.resultQueue <- RowResult{Row: task.Row, Hits: hits}
	}
}
