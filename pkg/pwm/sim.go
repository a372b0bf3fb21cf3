package pwm

import (
	"errors"
	"sync"
	"sync/atomic"
)

// DefaultTop is the compare range of an 8-bit timer.
const DefaultTop = 255

var errZeroRate = errors.New("sample rate must be positive")

// SimState is a snapshot of the simulated timer configuration.
type SimState struct {
	Running    bool
	SampleRate uint32
	Compare    uint32
	Starts     int
}

// Sim is an in-memory Device. Tick stands in for the timer interrupt.
type Sim struct {
	top     uint32
	compare atomic.Uint32

	mu         sync.Mutex
	running    bool
	sampleRate uint32
	starts     int
	onPeriod   func()
}

var _ Device = (*Sim)(nil)

// NewSim creates a simulated timer with the given compare range. Zero selects
// DefaultTop.
func NewSim(top uint32) *Sim {
	if top == 0 {
		top = DefaultTop
	}
	return &Sim{top: top}
}

func (s *Sim) Start(sampleRate uint32, onPeriod func()) error {
	if sampleRate == 0 {
		return errZeroRate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = true
	s.sampleRate = sampleRate
	s.onPeriod = onPeriod
	s.starts++
	return nil
}

func (s *Sim) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.onPeriod = nil
	s.compare.Store(0)
}

func (s *Sim) SetCompare(value uint32) {
	s.compare.Store(value)
}

func (s *Sim) Top() uint32 { return s.top }

// Compare returns the current register value.
func (s *Sim) Compare() uint32 { return s.compare.Load() }

// State returns the current timer configuration.
func (s *Sim) State() SimState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SimState{
		Running:    s.running,
		SampleRate: s.sampleRate,
		Compare:    s.compare.Load(),
		Starts:     s.starts,
	}
}

// Tick runs len(dst) timer periods and records the pin level after each.
// A stopped timer records its idle level whatever the register holds.
func (s *Sim) Tick(dst []uint32) {
	s.mu.Lock()
	fn := s.onPeriod
	running := s.running
	s.mu.Unlock()

	if !running {
		clear(dst)
		return
	}

	for i := range dst {
		if fn != nil {
			fn()
		}
		dst[i] = s.compare.Load()
	}
}
