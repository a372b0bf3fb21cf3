package link

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/pwm"
	"github.com/itohio/gograins/pkg/trigger"
)

// Mock simulates a Grains module: a panel with knobs, an LFO on the CV
// input and a square clock feeds a real engine running over a simulated
// PWM timer.
type Mock struct {
	cfg  config.MockConfig
	ecfg engine.Config

	frames    chan Frame
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool

	sim   *pwm.Sim
	eng   *engine.Engine
	steps int
	block []uint32
}

// NewMock creates a simulated module. The panel settings are copied; later
// changes to cfg take effect on the next NewMock.
func NewMock(cfg *config.MockConfig, ecfg engine.Config) *Mock {
	panel := config.Default().Mock
	if cfg != nil {
		panel = *cfg
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Mock{
		cfg:    panel,
		ecfg:   ecfg,
		frames: make(chan Frame, DefaultBufferSize),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Connect powers up the simulated module.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}

	if err := m.start(); err != nil {
		return err
	}
	m.connected = true

	go m.generateFrames()

	return nil
}

func (m *Mock) start() error {
	m.sim = pwm.NewSim(0)
	m.eng = engine.New(m.ecfg, pwm.New(m.sim, m.ecfg.SampleRate))
	if err := m.eng.Start(); err != nil {
		return fmt.Errorf("failed to start engine: %w", err)
	}
	m.steps = 0
	m.block = make([]uint32, m.periodsPerStep())
	return nil
}

// Close stops the simulated module.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.cancel()
	m.eng.Stop()
	m.connected = false
	close(m.frames)

	return nil
}

// Frames returns the channel for reading telemetry frames.
func (m *Mock) Frames() <-chan Frame {
	return m.frames
}

// Configure switches the simulated engine's pitch table and clock edge.
func (m *Mock) Configure(table mapping.Table, edge trigger.Edge) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}
	if !table.Valid() {
		return fmt.Errorf("unknown pitch table %d", table)
	}

	m.ecfg.PitchTable = table
	m.ecfg.ClockEdge = edge
	m.eng.Apply(engine.Command{PitchTable: table, ClockEdge: edge})

	return nil
}

// IsConnected returns whether the simulated module is running.
func (m *Mock) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// output returns the compare values rendered during the last step.
func (m *Mock) output() []uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]uint32(nil), m.block...)
}

// generateFrames runs the control loop at the configured step rate.
func (m *Mock) generateFrames() {
	ticker := time.NewTicker(m.cfg.StepRate)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			if !m.connected {
				m.mu.Unlock()
				return
			}
			frame, ok := m.step(time.Now())
			if ok {
				select {
				case m.frames <- frame:
				default:
					// Channel full, skip
				}
			}
			m.mu.Unlock()
		}
	}
}

// step advances the simulation by one control period. It reports a frame
// every FrameEvery steps. The caller holds m.mu.
func (m *Mock) step(now time.Time) (Frame, bool) {
	t := time.Duration(m.steps) * m.cfg.StepRate
	m.steps++

	st := m.eng.Step(m.inputs(t))
	m.sim.Tick(m.block)

	every := max(m.cfg.FrameEvery, 1)
	if (m.steps-1)%every != 0 {
		return Frame{}, false
	}
	return FrameFromStatus(now, st), true
}

// inputs samples the simulated panel at time t since power-up.
func (m *Mock) inputs(t time.Duration) engine.Inputs {
	sec := float32(t.Seconds())

	// Pseudo-random ADC noise
	noise := (math32.Sin(sec*7919) + math32.Cos(sec*104729)) * 0.5 * float32(m.cfg.NoiseLevel)

	var in engine.Inputs
	in.Raw[engine.Knob1] = toADC(float32(m.cfg.Knobs[0]) + noise)
	in.Raw[engine.Knob2] = toADC(float32(m.cfg.Knobs[1]) + noise)
	in.Raw[engine.Knob3] = toADC(float32(m.cfg.Knobs[2]) + noise)

	lfo := 0.5 + 0.5*math32.Sin(2*math32.Pi*float32(m.cfg.CVRate)*sec)
	in.Raw[engine.CV] = toADC(float32(m.cfg.CVDepth)*lfo + noise)

	if m.cfg.ClockPeriod > 0 {
		in.Clock = t%m.cfg.ClockPeriod < m.cfg.ClockPeriod/2
	}
	return in
}

// periodsPerStep is the number of PWM periods in one control step.
func (m *Mock) periodsPerStep() int {
	n := int(time.Duration(m.ecfg.SampleRate) * m.cfg.StepRate / time.Second)
	return max(n, 1)
}

// toADC converts a 0..1 panel position to a 10-bit reading.
func toADC(v float32) uint16 {
	v = math32.Max(0, math32.Min(1, v))
	return uint16(v*mapping.MaxIndex + 0.5)
}
