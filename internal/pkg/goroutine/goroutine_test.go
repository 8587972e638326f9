package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_RunsAllTasksWithinLimit(t *testing.T) {
	t.Parallel()

	// Arrange
	const limit = 2
	g := NewManager(limit)
	var running, peak, done atomic.Int32

	// Act
	for range 10 {
		g.Go(context.Background(), func(context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
			done.Add(1)
			return nil
		})
	}
	err := g.Wait()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int32(10), done.Load())
	assert.LessOrEqual(t, peak.Load(), int32(limit))
}

func TestManager_CollectsErrorsAndPanics(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	g := NewManager(0)

	g.Go(context.Background(), func(context.Context) error { return errBoom })
	g.Go(context.Background(), func(context.Context) error { panic("kaboom") })
	g.Go(context.Background(), func(context.Context) error { return nil })

	err := g.Wait()

	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, ErrPanic)
}

func TestManager_CanceledContext(t *testing.T) {
	t.Parallel()

	g := NewManager(1)
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	g.Go(context.Background(), func(context.Context) error {
		<-release
		return nil
	})

	cancel()
	ran := false
	g.Go(ctx, func(context.Context) error {
		ran = true
		return nil
	})
	close(release)

	err := g.Wait()

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}
