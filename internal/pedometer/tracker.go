// Package pedometer ingests cumulative step-count samples from a device
// sensor and feeds them to the state store. The sensor delivers "total
// steps today is N"; the tracker has no interface back into sensor
// configuration.
package pedometer

import (
	"context"

	"go.uber.org/zap"
)

// StepRecorder is the store-side sink for cumulative step readings.
type StepRecorder interface {
	RecordSteps(ctx context.Context, steps int) error
}

// Tracker consumes a sample stream and persists readings through the
// recorder. Samples are cumulative, so when they arrive faster than
// writes complete the intermediate values carry no information: the
// tracker coalesces by draining the channel and persisting only the
// latest pending sample.
type Tracker struct {
	recorder StepRecorder
	logger   *zap.Logger
}

func NewTracker(recorder StepRecorder, logger *zap.Logger) *Tracker {
	return &Tracker{recorder: recorder, logger: logger}
}

// Run blocks until ctx is cancelled or samples is closed. Write failures
// are logged and do not stop ingestion; the next sample supersedes the
// lost one.
func (t *Tracker) Run(ctx context.Context, samples <-chan int) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-samples:
			if !ok {
				return nil
			}
			n, closed := drainLatest(samples, n)
			if err := t.recorder.RecordSteps(ctx, n); err != nil {
				t.logger.Warn("step sample write failed", zap.Int("steps", n), zap.Error(err))
			}
			if closed {
				return nil
			}
		}
	}
}

// drainLatest empties any queued samples, returning the most recent one
// and whether the channel was closed while draining.
func drainLatest(samples <-chan int, latest int) (int, bool) {
	for {
		select {
		case n, ok := <-samples:
			if !ok {
				return latest, true
			}
			latest = n
		default:
			return latest, false
		}
	}
}
