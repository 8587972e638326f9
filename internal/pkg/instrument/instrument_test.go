package instrument

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepDefaultLogger restores the process logger replaced by New.
func keepDefaultLogger(t *testing.T) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func shutdownQuickly(t *testing.T, ins Instrumentation) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	// Nothing listens on the collector address, so flushing may fail.
	_ = ins.Shutdown(ctx)
}

func TestNew_NilConfig(t *testing.T) {
	ins, err := New(context.Background(), nil)

	require.NoError(t, err)
	assert.IsType(t, &noopInstrumentation{}, ins)
	assert.NoError(t, ins.Shutdown(context.Background()))
}

func TestNew_Disabled(t *testing.T) {
	keepDefaultLogger(t)

	ins, err := New(context.Background(), &Config{ServiceName: "finvalidate", LogLevel: slog.LevelWarn})

	require.NoError(t, err)
	assert.IsType(t, &noopInstrumentation{}, ins)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	_, span := ins.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.IsRecording())
	span.End()
}

func TestNew_Enabled(t *testing.T) {
	keepDefaultLogger(t)

	tests := []struct {
		name      string
		ratio     float64
		recording bool
	}{
		{name: "sample everything", ratio: 1, recording: true},
		{name: "ratio above one", ratio: 7, recording: true},
		{name: "ratio below zero", ratio: -3, recording: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := &Config{
				Enabled:          true,
				ServiceName:      "finvalidate",
				ServiceVersion:   "test",
				Environment:      "test",
				OTLPEndpoint:     "127.0.0.1:1",
				TraceSampleRatio: tt.ratio,
				MetricsInterval:  time.Hour,
				LogLevel:         slog.LevelError,
			}

			// Act
			ins, err := New(context.Background(), cfg)

			// Assert
			require.NoError(t, err)
			t.Cleanup(func() { shutdownQuickly(t, ins) })
			assert.IsType(t, &otelInstrumentation{}, ins)

			_, span := ins.Tracer("ruleset.usecase").Start(context.Background(), "validate")
			assert.True(t, span.SpanContext().IsValid())
			assert.Equal(t, tt.recording, span.IsRecording())
			span.End()

			counter, err := ins.Meter("ruleset.usecase").Int64Counter("ruleset.validation.total")
			require.NoError(t, err)
			counter.Add(context.Background(), 1)
		})
	}
}

func TestSampleRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, sampleRatio(-0.5))
	assert.Equal(t, 0.0, sampleRatio(0))
	assert.Equal(t, 0.25, sampleRatio(0.25))
	assert.Equal(t, 1.0, sampleRatio(1))
	assert.Equal(t, 1.0, sampleRatio(math.Inf(1)))
}
