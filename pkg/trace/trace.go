package trace

import (
	"sync"
	"time"

	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/trigger"
)

// Marker is a clock edge found in the trace.
type Marker struct {
	Index int       // Sample index in the buffer
	Time  time.Time // Sample timestamp
}

// UpdateFunc receives the current samples and markers after each update.
type UpdateFunc func(samples []Sample, markers []Marker)

// Trace keeps a time window of samples and marks the clock edges in it.
// Samples and markers are ordered oldest first.
type Trace struct {
	mu      sync.RWMutex
	samples []Sample
	markers []Marker

	edge    trigger.Edge
	clock   trigger.Detector
	started bool

	callbacks []UpdateFunc
	cbMu      sync.RWMutex

	window   time.Duration
	shutdown bool
}

// New creates a trace using the scope window and the configured clock edge.
func New(cfg *config.Config) *Trace {
	edge, err := trigger.ParseEdge(cfg.Engine.ClockEdge)
	if err != nil {
		edge = trigger.Rising
	}
	return &Trace{
		edge:   edge,
		window: time.Duration(cfg.Scope.WindowSeconds * float64(time.Second)),
	}
}

// ProcessSamples consumes input until it is closed. No callbacks run after
// that.
func (t *Trace) ProcessSamples(input <-chan Sample) {
	for s := range input {
		t.processSample(s)
	}
	t.mu.Lock()
	t.shutdown = true
	t.mu.Unlock()
}

func (t *Trace) processSample(s Sample) {
	t.mu.Lock()

	t.samples = append(t.samples, s)

	cutoff := s.Timestamp.Add(-t.window)
	drop := 0
	for drop < len(t.samples) && !t.samples[drop].Timestamp.After(cutoff) {
		drop++
	}
	if drop > 0 {
		t.samples = t.samples[drop:]
		kept := t.markers[:0]
		for _, m := range t.markers {
			m.Index -= drop
			if m.Index >= 0 {
				kept = append(kept, m)
			}
		}
		t.markers = kept
	}

	// Seed from the first level seen so a trace that starts with the clock
	// high does not mark a phantom edge.
	if !t.started {
		t.clock = trigger.NewDetector(s.Clock)
		t.started = true
	}
	if t.clock.Poll(s.Clock, t.edge) && len(t.samples) > 0 {
		t.markers = append(t.markers, Marker{
			Index: len(t.samples) - 1,
			Time:  s.Timestamp,
		})
	}

	notify := !t.shutdown
	t.mu.Unlock()

	if notify {
		t.notifyCallbacks()
	}
}

// SetEdge changes which clock edge is marked.
func (t *Trace) SetEdge(edge trigger.Edge) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.edge = edge
}

// Samples returns a copy of the current samples buffer.
func (t *Trace) Samples() []Sample {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Sample(nil), t.samples...)
}

// Markers returns a copy of the current clock markers.
func (t *Trace) Markers() []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Marker(nil), t.markers...)
}

// ClockPeriod returns the mean time between the marked edges in the window,
// or 0 with fewer than two markers.
func (t *Trace) ClockPeriod() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return clockPeriod(t.markers)
}

func clockPeriod(markers []Marker) time.Duration {
	if len(markers) < 2 {
		return 0
	}
	span := markers[len(markers)-1].Time.Sub(markers[0].Time)
	return span / time.Duration(len(markers)-1)
}

// OnUpdate registers a callback invoked after every processed sample.
// The callback should copy what it needs and return quickly.
func (t *Trace) OnUpdate(callback UpdateFunc) {
	t.cbMu.Lock()
	defer t.cbMu.Unlock()
	t.callbacks = append(t.callbacks, callback)
}

// Reset clears the buffers and re-arms callbacks for a new chain.
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples = nil
	t.markers = nil
	t.started = false
	t.shutdown = false
}

func (t *Trace) notifyCallbacks() {
	samples := t.Samples()
	markers := t.Markers()

	t.cbMu.RLock()
	callbacks := append([]UpdateFunc(nil), t.callbacks...)
	t.cbMu.RUnlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(samples, markers)
		}
	}
}
