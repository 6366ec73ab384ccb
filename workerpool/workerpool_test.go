package workerpool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andyle182810/cinemadash/testutil"
	"github.com/andyle182810/cinemadash/workerpool"
	"github.com/stretchr/testify/require"
)

var errExecutor = errors.New("executor error")

type mockExecutor struct {
	execCount    atomic.Int32
	execErr      error
	execDuration time.Duration
}

func (m *mockExecutor) Execute(ctx context.Context) error {
	m.execCount.Add(1)

	if m.execDuration > 0 {
		select {
		case <-time.After(m.execDuration):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return m.execErr
}

func newMockExecutor(execErr error, execDuration time.Duration) *mockExecutor {
	return &mockExecutor{
		execCount:    atomic.Int32{},
		execErr:      execErr,
		execDuration: execDuration,
	}
}

func TestWorkerPool_Name(t *testing.T) {
	t.Parallel()

	require.Equal(t, "worker-pool", workerpool.New(newMockExecutor(nil, 0)).Name())
	require.Equal(t, "backend-probe", workerpool.New(newMockExecutor(nil, 0), workerpool.WithName("backend-probe")).Name())
	require.Equal(t, "worker-pool", workerpool.New(newMockExecutor(nil, 0), workerpool.WithName("")).Name())
}

func TestWorkerPool_StartsAndStopsWorkers(t *testing.T) {
	t.Parallel()

	executor := newMockExecutor(nil, 0)
	pool := workerpool.New(executor,
		workerpool.WithWorkerCount(3),
		workerpool.WithTickInterval(50*time.Millisecond),
	)

	require.NoError(t, pool.Start(t.Context()))

	time.Sleep(150 * time.Millisecond)

	require.NoError(t, pool.Stop())
	require.Positive(t, executor.execCount.Load())
}

func TestWorkerPool_RunOnStartExecutesBeforeFirstTick(t *testing.T) {
	t.Parallel()

	executor := newMockExecutor(nil, 0)
	pool := workerpool.New(executor,
		workerpool.WithTickInterval(time.Hour),
		workerpool.WithRunOnStart(),
	)

	require.NoError(t, pool.Start(t.Context()))

	testutil.Eventually(t, func() bool { return executor.execCount.Load() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, pool.Stop())
}

func TestWorkerPool_ExecutorFunc(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	pool := workerpool.New(workerpool.ExecutorFunc(func(_ context.Context) error {
		calls.Add(1)

		return nil
	}), workerpool.WithTickInterval(10*time.Millisecond))

	require.NoError(t, pool.Start(t.Context()))

	testutil.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, pool.Stop())
}

func TestWorkerPool_MultipleStartCallsAreRejected(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(newMockExecutor(nil, 0), workerpool.WithTickInterval(50*time.Millisecond))

	require.NoError(t, pool.Start(t.Context()))
	require.ErrorIs(t, pool.Start(t.Context()), workerpool.ErrAlreadyRunning)

	require.NoError(t, pool.Stop())
	require.NoError(t, pool.Stop())
}

func TestWorkerPool_StopWithoutStartIsSafe(t *testing.T) {
	t.Parallel()

	require.NoError(t, workerpool.New(newMockExecutor(nil, 0)).Stop())
}

func TestWorkerPool_ContinuesOnExecutorError(t *testing.T) {
	t.Parallel()

	executor := newMockExecutor(errExecutor, 0)
	pool := workerpool.New(executor,
		workerpool.WithWorkerCount(1),
		workerpool.WithTickInterval(50*time.Millisecond),
	)

	require.NoError(t, pool.Start(t.Context()))

	time.Sleep(150 * time.Millisecond)

	require.NoError(t, pool.Stop())
	require.Greater(t, executor.execCount.Load(), int32(1))
}

func TestWorkerPool_RespectsParentContextCancellation(t *testing.T) {
	t.Parallel()

	executor := newMockExecutor(nil, 0)
	pool := workerpool.New(executor,
		workerpool.WithWorkerCount(2),
		workerpool.WithTickInterval(50*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(t.Context())

	require.NoError(t, pool.Start(ctx))

	time.Sleep(100 * time.Millisecond)
	cancel()
	time.Sleep(100 * time.Millisecond)

	countAfterCancel := executor.execCount.Load()

	time.Sleep(100 * time.Millisecond)

	require.Positive(t, countAfterCancel)
	require.Equal(t, countAfterCancel, executor.execCount.Load())

	require.NoError(t, pool.Stop())
}

func TestWorkerPool_AllWorkersBusyCausesTickToWait(t *testing.T) {
	t.Parallel()

	executor := newMockExecutor(nil, 200*time.Millisecond)
	pool := workerpool.New(executor,
		workerpool.WithWorkerCount(2),
		workerpool.WithTickInterval(20*time.Millisecond),
	)

	require.NoError(t, pool.Start(t.Context()))

	time.Sleep(150 * time.Millisecond)

	require.NoError(t, pool.Stop())
	require.Equal(t, int32(2), executor.execCount.Load())
}

func TestWorkerPool_ExecutionTimeoutCancelsLongRunningTasks(t *testing.T) {
	t.Parallel()

	executor := newMockExecutor(nil, 500*time.Millisecond)
	pool := workerpool.New(executor,
		workerpool.WithWorkerCount(1),
		workerpool.WithTickInterval(50*time.Millisecond),
		workerpool.WithExecutionTimeout(100*time.Millisecond),
	)

	require.NoError(t, pool.Start(t.Context()))

	time.Sleep(300 * time.Millisecond)

	require.NoError(t, pool.Stop())
	require.Greater(t, executor.execCount.Load(), int32(1))
}
