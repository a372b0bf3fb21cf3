// Package monitor plays the module's voice on the host. Audio does not fit
// through the telemetry link, so it is rebuilt from the reported parameters
// with the same oscillator the firmware runs.
package monitor

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/link"
	"github.com/itohio/gograins/pkg/pwm"
)

// Volume scales a full-duty period to the playback level.
const Volume = 0.5

// Resynth renders float32 mono audio from telemetry frames. It is an
// io.Reader of little-endian float32 samples.
type Resynth struct {
	rate uint32
	sim  *pwm.Sim
	drv  *pwm.Driver
	osc  engine.Oscillator

	mu     sync.Mutex
	block  []uint32
	floats []float32
}

// NewResynth creates a resynthesizer producing sampleRate samples per second.
func NewResynth(sampleRate int) (*Resynth, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	r := &Resynth{
		rate: uint32(sampleRate),
		sim:  pwm.NewSim(0),
	}
	r.drv = pwm.New(r.sim, r.rate)
	r.drv.OnPeriod(r.osc.Render)
	if err := r.drv.Enable(); err != nil {
		return nil, fmt.Errorf("failed to start resynth: %w", err)
	}
	r.osc.SetTop(r.drv.Top())
	return r, nil
}

// Submit updates the voice from a frame. The phase increment is recomputed
// for the local rate; amplitude and width are used as reported.
func (r *Resynth) Submit(f link.Frame) {
	p := engine.Pack(engine.PhaseInc(f.Freq, r.rate), f.Params.Amp(), f.Params.Width())
	r.drv.Submit(uint32(p))
}

// Render fills dst with the next len(dst) samples.
func (r *Resynth) Render(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.render(dst)
}

func (r *Resynth) render(dst []float32) {
	if cap(r.block) < len(dst) {
		r.block = make([]uint32, len(dst))
	}
	block := r.block[:len(dst)]
	r.sim.Tick(block)

	top := float32(r.sim.Top())
	for i, v := range block {
		dst[i] = float32(v) * Volume / top
	}
}

// Read renders len(p)/4 samples into p.
func (r *Resynth) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p) / 4
	if cap(r.floats) < n {
		r.floats = make([]float32, n)
	}
	samples := r.floats[:n]
	r.render(samples)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return n * 4, nil
}

// SampleRate returns the playback rate.
func (r *Resynth) SampleRate() int { return int(r.rate) }

// Close stops the simulated timer.
func (r *Resynth) Close() {
	r.drv.Disable()
}

// Tap passes frames through while feeding them to r.
func Tap(r *Resynth, in <-chan link.Frame) <-chan link.Frame {
	out := make(chan link.Frame, cap(in))
	go func() {
		defer close(out)
		for f := range in {
			r.Submit(f)
			out <- f
		}
	}()
	return out
}
