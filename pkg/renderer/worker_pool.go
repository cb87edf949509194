package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-direct-raytracer/pkg/integrator"
)

// SpanTask represents a contiguous range of pixel indices [Start, End)
type SpanTask struct {
	TaskID int
	Start  int
	End    int
}

// SpanResult contains the result from rendering a span
type SpanResult struct {
	TaskID int
	Stats  SpanStats
}

// WorkerPool manages parallel span rendering for one pass
type WorkerPool struct {
	taskQueue   chan SpanTask
	resultQueue chan SpanResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders spans into the shared buffer
type Worker struct {
	ID          int
	scene       integrator.Scene
	integrator  integrator.Integrator
	view        view
	buffer      []uint32
	taskQueue   chan SpanTask
	resultQueue chan SpanResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the number of spans that will be submitted.
func NewWorkerPool(scene integrator.Scene, cfg integrator.Config, v view, buffer []uint32, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan SpanTask, maxTasks),
		resultQueue: make(chan SpanResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			scene:       scene,
			integrator:  integrator.NewDirectLightingIntegrator(cfg),
			view:        v,
			buffer:      buffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
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

// Stop closes the task queue and waits for every submitted span to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a span to the worker pool
func (wp *WorkerPool) SubmitTask(task SpanTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed span result
func (wp *WorkerPool) GetResult() (SpanResult, bool) {
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
		// Spans never overlap, so each index is written by exactly one worker
		var stats SpanStats
		for i := task.Start; i < task.End; i++ {
			pixel := w.integrator.RayColor(w.view.primaryRay(i), w.scene).Pack()
			w.buffer[i] = pixel
			stats.Pixels++
			if pixel != 0 {
				stats.LitPixels++
			}
		}

		w.resultQueue <- SpanResult{TaskID: task.TaskID, Stats: stats}
	}
}
