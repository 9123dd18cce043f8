package worker

import (
	"context"
)

// Worker - фоновый процесс, управляемый Manager
type Worker interface {
	// Start blocks until the worker is stopped or ctx is cancelled.
	Start(ctx context.Context) error

	// Stop signals the worker to finish its current batch and return.
	Stop() error

	Name() string
}
