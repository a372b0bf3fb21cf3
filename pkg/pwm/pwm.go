// Package pwm drives the audio output through a timer's output-compare
// register.
//
// The timer interrupt fires once per sample period and performs the only
// write to the compare register. The control loop hands values to it through
// a single-slot Handoff, so neither side ever blocks or locks.
package pwm

import (
	"fmt"
	"sync/atomic"
)

// Device is the timer/output-compare peripheral behind the audio pin.
type Device interface {
	// Start puts the timer in free-running periodic mode at sampleRate and
	// arms an interrupt that calls onPeriod once per period.
	Start(sampleRate uint32, onPeriod func()) error
	// Stop disarms the interrupt and returns the pin to its idle level.
	Stop()
	// SetCompare writes the duty-cycle register.
	SetCompare(value uint32)
	// Top is the compare value for a 100% duty cycle.
	Top() uint32
}

// Handoff passes one value from the control loop to the interrupt.
// Store always overwrites; Load always sees the most recent store.
type Handoff struct {
	v atomic.Uint32
}

func (h *Handoff) Store(v uint32) { h.v.Store(v) }

func (h *Handoff) Load() uint32 { return h.v.Load() }

// Driver owns one PWM audio channel.
type Driver struct {
	dev        Device
	sampleRate uint32

	enabled atomic.Bool
	next    Handoff
	render  func(next uint32) uint32
	isr     func()
}

// New creates a driver for dev running at sampleRate periods per second.
// The driver starts disabled.
func New(dev Device, sampleRate uint32) *Driver {
	d := &Driver{
		dev:        dev,
		sampleRate: sampleRate,
	}
	d.isr = d.period
	return d
}

// OnPeriod installs fn as the per-period renderer. It receives the last
// submitted value and returns the compare value to write. Without a renderer
// the submitted value is written as is, so the output holds the last sample
// until a new one arrives. Must be called before Enable.
func (d *Driver) OnPeriod(fn func(next uint32) uint32) {
	d.render = fn
}

// Enable starts the timer and arms the period interrupt. Calling it on an
// enabled driver does nothing.
func (d *Driver) Enable() error {
	if d.enabled.Load() {
		return nil
	}
	if err := d.dev.Start(d.sampleRate, d.isr); err != nil {
		return fmt.Errorf("failed to start pwm at %d Hz: %w", d.sampleRate, err)
	}
	d.enabled.Store(true)
	return nil
}

// Disable stops the timer; the pin rests at its idle level.
func (d *Driver) Disable() {
	if !d.enabled.Swap(false) {
		return
	}
	d.dev.Stop()
}

func (d *Driver) Enabled() bool { return d.enabled.Load() }

// SetLevel writes value straight into the compare register. It is safe to
// call from the period interrupt.
func (d *Driver) SetLevel(value uint32) {
	d.dev.SetCompare(value)
}

// Submit hands value to the next period interrupt, replacing any value not
// yet consumed.
func (d *Driver) Submit(value uint32) {
	d.next.Store(value)
}

func (d *Driver) Top() uint32 { return d.dev.Top() }

func (d *Driver) SampleRate() uint32 { return d.sampleRate }

func (d *Driver) period() {
	v := d.next.Load()
	if d.render != nil {
		v = d.render(v)
	}
	d.SetLevel(v)
}
