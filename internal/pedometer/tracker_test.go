package pedometer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorderStub struct {
	mu       sync.Mutex
	recorded []int
	err      error
}

func (r *recorderStub) RecordSteps(_ context.Context, steps int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, steps)
	return r.err
}

func (r *recorderStub) samples() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.recorded))
	copy(out, r.recorded)
	return out
}

func TestRunRecordsSamples(t *testing.T) {
	rec := &recorderStub{}
	tracker := NewTracker(rec, zap.NewNop())

	samples := make(chan int)
	done := make(chan error, 1)
	go func() { done <- tracker.Run(context.Background(), samples) }()

	samples <- 1000
	require.Eventually(t, func() bool { return len(rec.samples()) == 1 }, time.Second, time.Millisecond)
	samples <- 2500
	require.Eventually(t, func() bool { return len(rec.samples()) == 2 }, time.Second, time.Millisecond)
	close(samples)

	require.NoError(t, <-done)
	assert.Equal(t, []int{1000, 2500}, rec.samples())
}

// Samples queued behind a slow write are cumulative; only the newest one
// should reach the recorder.
func TestRunCoalescesBufferedSamples(t *testing.T) {
	rec := &recorderStub{}
	tracker := NewTracker(rec, zap.NewNop())

	samples := make(chan int, 8)
	samples <- 1000
	samples <- 1200
	samples <- 1800
	samples <- 4500
	close(samples)

	require.NoError(t, tracker.Run(context.Background(), samples))
	assert.Equal(t, []int{4500}, rec.samples())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	rec := &recorderStub{}
	tracker := NewTracker(rec, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	samples := make(chan int)
	done := make(chan error, 1)
	go func() { done <- tracker.Run(ctx, samples) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("tracker did not stop after cancel")
	}
}

func TestRunContinuesAfterWriteFailure(t *testing.T) {
	rec := &recorderStub{err: errors.New("disk full")}
	tracker := NewTracker(rec, zap.NewNop())

	samples := make(chan int, 2)
	samples <- 1000
	samples <- 2000
	close(samples)

	// Two buffered samples coalesce to one failing write; Run still
	// returns nil because ingestion outlives individual write errors.
	require.NoError(t, tracker.Run(context.Background(), samples))
	assert.Equal(t, []int{2000}, rec.samples())
}

func TestRunReturnsNilOnClose(t *testing.T) {
	rec := &recorderStub{}
	tracker := NewTracker(rec, zap.NewNop())

	samples := make(chan int)
	close(samples)

	require.NoError(t, tracker.Run(context.Background(), samples))
	assert.Empty(t, rec.samples())
}
