package services

import (
	"context"
	"log"
	"sync"
)

// RecomputeWorker runs fire-and-forget tasks submitted by the write
// path. Submission never blocks the caller and task failures are
// reported to the log sink instead of any request.
type RecomputeWorker struct {
	tasks  chan recomputeTask
	logger *log.Logger

	startOnce sync.Once
	done      chan struct{}
}

type recomputeTask struct {
	name string
	run  func() error
}

func NewRecomputeWorker(logger *log.Logger) *RecomputeWorker {
	if logger == nil {
		logger = log.Default()
	}
	return &RecomputeWorker{
		tasks:  make(chan recomputeTask, 64),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start launches the worker loop. It stops draining once ctx is
// cancelled; queued tasks left behind are dropped.
func (worker *RecomputeWorker) Start(ctx context.Context) {
	worker.startOnce.Do(func() {
		go worker.loop(ctx)
	})
}

func (worker *RecomputeWorker) loop(ctx context.Context) {
	defer close(worker.done)
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-worker.tasks:
			if err := task.run(); err != nil {
				worker.logger.Printf("background %s failed: %v", task.name, err)
			}
		}
	}
}

// Submit queues a task. When the queue is full the task is dropped and
// logged rather than blocking the write that triggered it.
func (worker *RecomputeWorker) Submit(name string, run func() error) {
	select {
	case worker.tasks <- recomputeTask{name: name, run: run}:
	default:
		worker.logger.Printf("background %s dropped: queue full", name)
	}
}

// Wait blocks until the worker loop has exited. Tests use it to assert
// shutdown behavior.
func (worker *RecomputeWorker) Wait() {
	<-worker.done
}
