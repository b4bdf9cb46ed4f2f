package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRecomputeWorkerRunsSubmittedTasks(t *testing.T) {
	t.Parallel()

	worker := NewRecomputeWorker(log.New(&strings.Builder{}, "", 0))
	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)

	ran := make(chan struct{})
	worker.Submit("test task", func() error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the submitted task to run")
	}

	cancel()
	worker.Wait()
}

func TestRecomputeWorkerLogsFailuresWithoutStopping(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var output strings.Builder
	logger := log.New(lockedWriter{mu: &mu, target: &output}, "", 0)

	worker := NewRecomputeWorker(logger)
	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)

	worker.Submit("doomed task", func() error { return errors.New("boom") })

	ran := make(chan struct{})
	worker.Submit("follow-up", func() error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the worker to survive a failing task")
	}

	cancel()
	worker.Wait()

	mu.Lock()
	logged := output.String()
	mu.Unlock()
	if !strings.Contains(logged, "doomed task failed: boom") {
		t.Fatalf("expected the failure to be logged, got %q", logged)
	}
}

func TestRecomputeWorkerDropsWhenQueueIsFull(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var output strings.Builder
	logger := log.New(lockedWriter{mu: &mu, target: &output}, "", 0)

	// Never started, so the queue only drains into its buffer.
	worker := NewRecomputeWorker(logger)
	for index := 0; index < 65; index++ {
		worker.Submit("queued task", func() error { return nil })
	}

	mu.Lock()
	logged := output.String()
	mu.Unlock()
	if !strings.Contains(logged, "queued task dropped: queue full") {
		t.Fatalf("expected the overflow submission to be dropped, got %q", logged)
	}
}

type lockedWriter struct {
	mu     *sync.Mutex
	target *strings.Builder
}

func (writer lockedWriter) Write(p []byte) (int, error) {
	writer.mu.Lock()
	defer writer.mu.Unlock()
	return writer.target.Write(p)
}
