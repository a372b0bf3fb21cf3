package engine

import "sync/atomic"

// Params is everything the period interrupt needs for one sample, packed so
// it crosses the hand-off in a single register-width store:
// bits 0-15 phase increment, 16-23 amplitude, 24-31 pulse width.
type Params uint32

func Pack(inc uint16, amp, width uint8) Params {
	return Params(uint32(inc) | uint32(amp)<<16 | uint32(width)<<24)
}

func (p Params) Inc() uint16  { return uint16(p) }
func (p Params) Amp() uint8   { return uint8(p >> 16) }
func (p Params) Width() uint8 { return uint8(p >> 24) }

// PhaseInc converts a frequency to a 16-bit phase increment at sampleRate,
// limited to Nyquist.
func PhaseInc(freq uint16, sampleRate uint32) uint16 {
	if sampleRate == 0 {
		return 0
	}
	inc := uint32(freq) << 16 / sampleRate
	if inc > 1<<15 {
		inc = 1 << 15
	}
	return uint16(inc)
}

// Oscillator is the interrupt side of the voice: a pulse wave from a 16-bit
// phase accumulator, scaled to the timer's compare range.
type Oscillator struct {
	phase uint16
	top   atomic.Uint32
}

// SetTop sets the compare value for full amplitude.
func (o *Oscillator) SetTop(top uint32) {
	o.top.Store(top)
}

// Render advances one sample period using the packed params in next and
// returns the compare value.
func (o *Oscillator) Render(next uint32) uint32 {
	p := Params(next)
	o.phase += p.Inc()
	if uint8(o.phase>>8) >= p.Width() {
		return 0
	}
	return uint32(p.Amp()) * o.top.Load() / 255
}
