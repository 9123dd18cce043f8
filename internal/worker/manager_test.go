package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingWorker struct {
	*BaseWorker
	steps atomic.Int64
}

func newCountingWorker(name string) *countingWorker {
	return &countingWorker{BaseWorker: NewBaseWorker(name, "group", zap.NewNop())}
}

func (w *countingWorker) Start(ctx context.Context) error {
	return w.Run(ctx, func(context.Context) (int, error) {
		w.steps.Add(1)
		return 0, nil
	})
}

// stuckWorker ignores Stop.
type stuckWorker struct {
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error { <-w.release; return nil }
func (w *stuckWorker) Stop() error                 { return nil }
func (w *stuckWorker) Name() string                { return "stuck" }

func TestManager_StartRequiresWorkers(t *testing.T) {
	m := NewManager(zap.NewNop(), time.Second)
	assert.Error(t, m.Start(context.Background()))
}

func TestManager_StartAndStop(t *testing.T) {
	m := NewManager(zap.NewNop(), time.Second)
	a, b := newCountingWorker("a"), newCountingWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, func() bool {
		return a.steps.Load() > 0 && b.steps.Load() > 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

func TestManager_StopTimesOut(t *testing.T) {
	m := NewManager(zap.NewNop(), 50*time.Millisecond)
	stuck := &stuckWorker{release: make(chan struct{})}
	defer close(stuck.release)
	m.Register(stuck)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Stop())
}

func TestBaseWorker_RunStopsOnContextCancel(t *testing.T) {
	w := NewBaseWorker("ctx", "group", zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) (int, error) { return 1, nil })
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}

func TestBaseWorker_StopIsIdempotent(t *testing.T) {
	w := NewBaseWorker("idempotent", "group", zap.NewNop())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
	assert.NotEmpty(t, w.ConsumerName())
}
