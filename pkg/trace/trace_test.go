package trace

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrace(windowSeconds float64) *Trace {
	cfg := config.Default()
	cfg.Scope.WindowSeconds = windowSeconds
	return New(cfg)
}

// feed processes one sample per clock level, 100ms apart.
func feed(tr *Trace, start time.Time, levels ...bool) {
	for i, level := range levels {
		tr.processSample(Sample{
			Timestamp: start.Add(time.Duration(i) * 100 * time.Millisecond),
			Clock:     level,
		})
	}
}

func TestNew(t *testing.T) {
	tr := newTrace(10)
	assert.Empty(t, tr.Samples())
	assert.Empty(t, tr.Markers())
	assert.Equal(t, time.Duration(0), tr.ClockPeriod())
}

func TestTrace_MarksRisingEdges(t *testing.T) {
	tr := newTrace(10)
	now := time.Now()

	feed(tr, now, false, true, true, false, true)

	markers := tr.Markers()
	require.Len(t, markers, 2)
	assert.Equal(t, 1, markers[0].Index)
	assert.Equal(t, 4, markers[1].Index)
	assert.True(t, markers[1].Time.Equal(now.Add(400*time.Millisecond)))
	assert.Equal(t, 300*time.Millisecond, tr.ClockPeriod())
}

func TestTrace_NoPhantomEdgeWhenStartingHigh(t *testing.T) {
	tr := newTrace(10)

	feed(tr, time.Now(), true, true, false)

	assert.Empty(t, tr.Markers())
}

func TestTrace_FallingEdge(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.ClockEdge = "falling"
	tr := New(cfg)

	feed(tr, time.Now(), false, true, false, true, false)

	markers := tr.Markers()
	require.Len(t, markers, 2)
	assert.Equal(t, 2, markers[0].Index)
	assert.Equal(t, 4, markers[1].Index)
}

func TestTrace_SetEdge(t *testing.T) {
	tr := newTrace(10)
	tr.SetEdge(trigger.Falling)

	feed(tr, time.Now(), false, true, false)

	markers := tr.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, 2, markers[0].Index)
}

func TestTrace_WindowRemoval(t *testing.T) {
	tr := newTrace(0.5)
	now := time.Now()

	// 10 samples over 900ms; only those newer than 400ms survive.
	feed(tr, now, false, true, false, false, false, false, true, false, false, false)

	samples := tr.Samples()
	require.Len(t, samples, 5)
	assert.True(t, samples[0].Timestamp.Equal(now.Add(500*time.Millisecond)))

	// The edge at 100ms is gone and the one at 600ms shifted to index 1.
	markers := tr.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, 1, markers[0].Index)
	assert.True(t, markers[0].Time.Equal(now.Add(600*time.Millisecond)))
}

func TestTrace_Callbacks(t *testing.T) {
	tr := newTrace(10)

	var calls atomic.Int32
	var lastMarkers []Marker
	tr.OnUpdate(func(samples []Sample, markers []Marker) {
		calls.Add(1)
		lastMarkers = markers
		assert.NotEmpty(t, samples)
	})

	feed(tr, time.Now(), false, true)

	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, lastMarkers, 1)
}

func TestTrace_GracefulShutdown(t *testing.T) {
	tr := newTrace(10)

	var calls atomic.Int32
	tr.OnUpdate(func([]Sample, []Marker) { calls.Add(1) })

	input := make(chan Sample, 3)
	now := time.Now()
	for i := range 3 {
		input <- Sample{Timestamp: now.Add(time.Duration(i) * time.Second)}
	}
	close(input)

	done := make(chan struct{})
	go func() {
		defer close(done)
		tr.ProcessSamples(input)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ProcessSamples did not return after input closed")
	}

	assert.Equal(t, int32(3), calls.Load())

	// No callbacks after shutdown until Reset.
	tr.processSample(Sample{Timestamp: now.Add(4 * time.Second)})
	assert.Equal(t, int32(3), calls.Load())

	tr.Reset()
	assert.Empty(t, tr.Samples())
	tr.processSample(Sample{Timestamp: now.Add(5 * time.Second)})
	assert.Equal(t, int32(4), calls.Load())
}

func TestClockPeriod(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		markers []Marker
		want    time.Duration
	}{
		{"none", nil, 0},
		{"one", []Marker{{Time: now}}, 0},
		{"steady", []Marker{{Time: now}, {Time: now.Add(time.Second)}, {Time: now.Add(2 * time.Second)}}, time.Second},
		{"uneven", []Marker{{Time: now}, {Time: now.Add(time.Second)}, {Time: now.Add(4 * time.Second)}}, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clockPeriod(tt.markers))
		})
	}
}
