package worker

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	emptyQueuePause = 100 * time.Millisecond
	errorPause      = time.Second
)

// StepFunc processes one batch and reports how many messages it consumed.
type StepFunc func(ctx context.Context) (int, error)

// BaseWorker содержит общую логику stream-воркеров: остановку, имя consumer'а и цикл опроса
type BaseWorker struct {
	name          string
	consumerGroup string
	consumerName  string
	logger        *zap.Logger

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
}

// NewBaseWorker names the consumer after the host and process so several
// worker processes can share one consumer group.
func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "worker"
	}

	return &BaseWorker{
		name:          name,
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		logger:        logger.With(zap.String("worker", name)),
		stopChan:      make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

func (w *BaseWorker) ConsumerName() string {
	return w.consumerName
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// Stop is idempotent.
func (w *BaseWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.logger.Info("Stopping worker")
	close(w.stopChan)
	w.stopped = true
	return nil
}

func (w *BaseWorker) IsStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// Run calls step until Stop or ctx cancellation. It pauses briefly when the
// queue is empty and longer after a failed step.
func (w *BaseWorker) Run(ctx context.Context, step StepFunc) error {
	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			w.logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := step(ctx)
		pause := time.Duration(0)
		switch {
		case err != nil:
			w.logger.Error("Failed to process batch", zap.Error(err))
			pause = errorPause
		case processed == 0:
			pause = emptyQueuePause
		}

		if pause > 0 {
			w.sleep(ctx, pause)
		}
	}
}

// sleep waits for d, returning early on Stop or ctx cancellation.
func (w *BaseWorker) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.stopChan:
	case <-ctx.Done():
	}
}
