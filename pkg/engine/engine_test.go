package engine

import (
	"testing"

	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/pwm"
	"github.com/itohio/gograins/pkg/sampler"
	"github.com/itohio/gograins/pkg/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, table mapping.Table) (*Engine, *pwm.Sim) {
	t.Helper()
	sim := pwm.NewSim(0)
	drv := pwm.New(sim, 31250)
	e := New(Config{SampleRate: 31250, PitchTable: table, ClockEdge: trigger.Rising}, drv)
	require.NoError(t, e.Start())
	return e, sim
}

// settle runs enough steps for every smoothing window to hold only in.
func settle(e *Engine, in Inputs) Status {
	var st Status
	for range sampler.WindowLen {
		st = e.Step(in)
	}
	return st
}

func TestParams_Pack(t *testing.T) {
	p := Pack(0x1234, 0xAB, 0xCD)
	assert.Equal(t, uint16(0x1234), p.Inc())
	assert.Equal(t, uint8(0xAB), p.Amp())
	assert.Equal(t, uint8(0xCD), p.Width())
	assert.Equal(t, Params(0xCDAB1234), p)
}

func TestPhaseInc(t *testing.T) {
	tests := []struct {
		name string
		freq uint16
		rate uint32
		want uint16
	}{
		{"lowest pitch", 55, 31250, 115},
		{"highest pitch", 1760, 31250, 3690},
		{"limited to nyquist", 1760, 1000, 1 << 15},
		{"zero rate", 440, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhaseInc(tt.freq, tt.rate))
		})
	}
}

func TestOscillator_Render(t *testing.T) {
	var o Oscillator
	o.SetTop(255)

	next := uint32(Pack(0x4000, 255, 128))
	got := []uint32{o.Render(next), o.Render(next), o.Render(next), o.Render(next)}
	assert.Equal(t, []uint32{255, 0, 0, 255}, got)

	o.SetTop(1023)
	half := uint32(Pack(0, 128, 255))
	assert.Equal(t, uint32(128*1023/255), o.Render(half))
}

func TestEngine_Smoothing(t *testing.T) {
	e, _ := newTestEngine(t, mapping.Freq)

	st := e.Step(Inputs{Raw: [NumInputs]uint16{0, 0, 400, 0}})
	assert.Equal(t, uint16(100), st.Smoothed[Knob1])

	st = settle(e, Inputs{Raw: [NumInputs]uint16{0, 0, 400, 0}})
	assert.Equal(t, uint16(400), st.Smoothed[Knob1])
}

func TestEngine_Pitch(t *testing.T) {
	tests := []struct {
		name  string
		table mapping.Table
		knob1 uint16
		cv    uint16
		want  uint16
	}{
		{"bottom", mapping.Freq, 0, 0, mapping.FreqMin},
		{"knob plus cv saturates", mapping.Freq, 600, 600, mapping.FreqMax},
		{"semitone table", mapping.Semitone, 600, 14, 440},
		{"major table", mapping.Major, 205, 0, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, tt.table)

			var in Inputs
			in.Raw[Knob1] = tt.knob1
			in.Raw[CV] = tt.cv
			st := settle(e, in)

			assert.Equal(t, tt.want, st.Freq)
			assert.Equal(t, PhaseInc(tt.want, 31250), st.Params.Inc())
		})
	}
}

func TestEngine_ClockEnvelope(t *testing.T) {
	e, _ := newTestEngine(t, mapping.Freq)

	var in Inputs
	st := settle(e, in)
	assert.False(t, st.Triggered)
	assert.Equal(t, uint8(0), st.Params.Amp())
	assert.False(t, st.LED)

	in.Clock = true
	st = e.Step(in)
	assert.True(t, st.Triggered)
	assert.True(t, st.LED)
	assert.Equal(t, uint8(255), st.Params.Amp())

	// Knob2 fully counter-clockwise: fastest decay.
	st = e.Step(in)
	assert.False(t, st.Triggered)
	assert.Equal(t, uint8(254), st.Params.Amp())

	in.Clock = false
	st = e.Step(in)
	assert.False(t, st.Triggered)
	assert.True(t, st.LED)

	in.Clock = true
	st = e.Step(in)
	assert.True(t, st.Triggered)
	assert.False(t, st.LED)
}

func TestEngine_FallingEdge(t *testing.T) {
	e, _ := newTestEngine(t, mapping.Freq)
	e.Apply(Command{PitchTable: mapping.Freq, ClockEdge: trigger.Falling})
	assert.Equal(t, trigger.Falling, e.Config().ClockEdge)

	assert.False(t, e.Step(Inputs{Clock: true}).Triggered)
	assert.True(t, e.Step(Inputs{Clock: false}).Triggered)
}

func TestEngine_EnvelopeHold(t *testing.T) {
	e, _ := newTestEngine(t, mapping.Freq)

	var in Inputs
	in.Raw[Knob2] = mapping.MaxIndex
	settle(e, in)

	in.Clock = true
	for range 100 {
		st := e.Step(in)
		assert.Equal(t, uint8(255), st.Params.Amp())
	}
}

func TestEngine_EnvelopeDecaysToSilence(t *testing.T) {
	e, _ := newTestEngine(t, mapping.Freq)

	in := Inputs{Clock: true}
	var st Status
	for range 300 {
		st = e.Step(in)
	}
	assert.Equal(t, uint8(0), st.Params.Amp())
}

func TestEngine_Width(t *testing.T) {
	e, _ := newTestEngine(t, mapping.Freq)

	var in Inputs
	st := settle(e, in)
	assert.Equal(t, uint8(minWidth), st.Params.Width())

	in.Raw[Knob3] = mapping.MaxIndex
	st = settle(e, in)
	assert.Equal(t, uint8(minWidth+127), st.Params.Width())
}

func TestEngine_DrivesPWM(t *testing.T) {
	e, sim := newTestEngine(t, mapping.Freq)

	var in Inputs
	in.Raw[Knob2] = mapping.MaxIndex
	settle(e, in)
	in.Clock = true
	st := e.Step(in)
	require.True(t, st.Triggered)

	out := make([]uint32, 31250/mapping.FreqMin*2)
	sim.Tick(out)

	var high, low int
	for _, v := range out {
		switch v {
		case 255:
			high++
		case 0:
			low++
		default:
			t.Fatalf("unexpected level %d", v)
		}
	}
	assert.Greater(t, high, 0)
	assert.Greater(t, low, 0)

	e.Stop()
	assert.False(t, sim.State().Running)
}
