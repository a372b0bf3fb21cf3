// Package engine is the control loop shared by the firmware and the host
// simulator. It smooths the panel inputs, watches the clock input, maps the
// results through the lookup tables and hands packed oscillator parameters
// to the PWM driver.
package engine

import (
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/pwm"
	"github.com/itohio/gograins/pkg/sampler"
	"github.com/itohio/gograins/pkg/trigger"
)

// Input is an analog input index as wired on the Grains panel.
type Input uint8

const (
	Knob3 Input = iota
	Knob2
	Knob1
	CV

	NumInputs
)

const (
	envMax = 0xFFFF
	// Knob3 sweeps the pulse width between 25% and 75%.
	minWidth = 64
)

// Config selects the patch behaviour.
type Config struct {
	SampleRate uint32
	PitchTable mapping.Table
	ClockEdge  trigger.Edge
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		SampleRate: 31250,
		PitchTable: mapping.Semitone,
		ClockEdge:  trigger.Rising,
	}
}

// Inputs are the raw 10-bit readings and the clock level for one step.
type Inputs struct {
	Raw   [NumInputs]uint16
	Clock bool
}

// Status reports what a Step computed.
type Status struct {
	Smoothed  [NumInputs]uint16
	Clock     bool
	Triggered bool
	LED       bool
	Freq      uint16
	Params    Params
}

// Engine runs one voice: Knob1 plus CV set the pitch, Knob2 the decay and
// Knob3 the pulse width; every clock edge restarts the envelope and toggles
// the LED.
type Engine struct {
	cfg Config
	drv *pwm.Driver
	osc Oscillator

	windows [NumInputs]sampler.Window
	clock   trigger.Detector
	env     uint16
	led     bool
}

// New wires an engine to drv. The driver must not be enabled yet.
func New(cfg Config, drv *pwm.Driver) *Engine {
	e := &Engine{cfg: cfg, drv: drv}
	drv.OnPeriod(e.osc.Render)
	return e
}

// Start enables audio output.
func (e *Engine) Start() error {
	if err := e.drv.Enable(); err != nil {
		return err
	}
	e.osc.SetTop(e.drv.Top())
	return nil
}

// Stop silences audio output.
func (e *Engine) Stop() {
	e.drv.Disable()
}

func (e *Engine) Config() Config { return e.cfg }

// Step runs one control loop iteration.
func (e *Engine) Step(in Inputs) Status {
	var st Status
	for i := range e.windows {
		st.Smoothed[i] = e.windows[i].Add(in.Raw[i])
	}

	st.Clock = in.Clock
	if e.clock.Poll(in.Clock, e.cfg.ClockEdge) {
		st.Triggered = true
		e.env = envMax
		e.led = !e.led
	}
	st.LED = e.led

	pitch := uint32(st.Smoothed[Knob1]) + uint32(st.Smoothed[CV])
	if pitch > mapping.MaxIndex {
		pitch = mapping.MaxIndex
	}
	st.Freq = mapping.Map(e.cfg.PitchTable, uint16(pitch))

	e.decay(mapping.MapExp(st.Smoothed[Knob2]))
	width := minWidth + uint8(mapping.MapLog(st.Smoothed[Knob3])>>3)

	st.Params = Pack(PhaseInc(st.Freq, e.cfg.SampleRate), uint8(e.env>>8), width)
	e.drv.Submit(uint32(st.Params))
	return st
}

// decay lowers the envelope by a step that shrinks as the knob turns up;
// fully clockwise holds the level.
func (e *Engine) decay(knob uint16) {
	rate := (mapping.MaxIndex - mapping.Clamp(knob)) >> 2
	if e.env < rate {
		e.env = 0
		return
	}
	e.env -= rate
}
