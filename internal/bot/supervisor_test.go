package bot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoop fails a configured number of times and then blocks until
// cancellation.
type fakeLoop struct {
	name     string
	failures int32
	panics   bool
	runs     atomic.Int32
}

func (f *fakeLoop) Name() string { return f.name }

func (f *fakeLoop) Run(ctx context.Context) error {
	run := f.runs.Add(1)
	if run <= f.failures {
		if f.panics {
			panic("worker blew up")
		}
		return errors.New("worker failed")
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestSupervisor_RestartsFailedLoop(t *testing.T) {
	loop := &fakeLoop{name: "flaky", failures: 3}
	sup := NewSupervisor(discardLogger())
	sup.Add(loop)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sup.Run(ctx) }()

	require.Eventually(t, func() bool {
		return loop.runs.Load() >= 4
	}, 5*time.Second, time.Millisecond, "loop should be restarted after each failure")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestSupervisor_RecoversPanics(t *testing.T) {
	loop := &fakeLoop{name: "panicky", failures: 2, panics: true}
	sup := NewSupervisor(discardLogger())
	sup.Add(loop)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sup.Run(ctx) }()

	require.Eventually(t, func() bool {
		return loop.runs.Load() >= 3
	}, 5*time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestSupervisor_LoopsAreIndependent(t *testing.T) {
	flaky := &fakeLoop{name: "flaky", failures: 5}
	steady := &fakeLoop{name: "steady"}
	sup := NewSupervisor(discardLogger())
	sup.Add(flaky)
	sup.Add(steady)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sup.Run(ctx) }()

	require.Eventually(t, func() bool {
		return flaky.runs.Load() >= 6
	}, 5*time.Second, time.Millisecond)

	// The steady loop was started exactly once despite its sibling's
	// restarts.
	assert.Equal(t, int32(1), steady.runs.Load())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestSupervisor_StopsOnCancel(t *testing.T) {
	loop := &fakeLoop{name: "steady"}
	sup := NewSupervisor(discardLogger())
	sup.Add(loop)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sup.Run(ctx) }()

	require.Eventually(t, func() bool {
		return loop.runs.Load() == 1
	}, 5*time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
