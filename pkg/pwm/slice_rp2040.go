//go:build tinygo && rp2040

package pwm

import (
	"device/rp"
	"errors"
	"machine"
	"runtime/interrupt"
)

var errNoSlice = errors.New("pin has no pwm slice")

type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// Slice drives one RP2040 PWM slice. The slice wrap interrupt is the audio
// sample clock, so the carrier and the sample rate are the same.
type Slice struct {
	pin   machine.Pin
	pwm   pwmGroup
	mask  uint32
	ch    uint8
	top   uint32
	armed bool
}

var _ Device = (*Slice)(nil)

// Only one slice can own the shared wrap interrupt at a time.
var (
	wrapMask    uint32
	wrapHandler func()
	wrapIRQ     = interrupt.New(rp.IRQ_PWM_IRQ_WRAP, handleWrap)
)

func handleWrap(interrupt.Interrupt) {
	rp.PWM.INTR.Set(wrapMask)
	if h := wrapHandler; h != nil {
		h()
	}
}

// NewSlice returns the PWM slice that can drive pin.
func NewSlice(pin machine.Pin) (*Slice, error) {
	n, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil, err
	}

	var group pwmGroup
	switch n {
	case 0:
		group = machine.PWM0
	case 1:
		group = machine.PWM1
	case 2:
		group = machine.PWM2
	case 3:
		group = machine.PWM3
	case 4:
		group = machine.PWM4
	case 5:
		group = machine.PWM5
	case 6:
		group = machine.PWM6
	case 7:
		group = machine.PWM7
	default:
		return nil, errNoSlice
	}

	return &Slice{pin: pin, pwm: group, mask: 1 << n}, nil
}

func (s *Slice) Start(sampleRate uint32, onPeriod func()) error {
	if sampleRate == 0 {
		return errZeroRate
	}
	if s.armed {
		return nil
	}

	if err := s.pwm.Configure(machine.PWMConfig{Period: 1e9 / uint64(sampleRate)}); err != nil {
		return err
	}
	ch, err := s.pwm.Channel(s.pin)
	if err != nil {
		return err
	}
	s.ch = ch
	s.top = s.pwm.Top()
	s.pwm.Set(s.ch, 0)

	wrapHandler = onPeriod
	wrapMask = s.mask
	rp.PWM.INTR.Set(s.mask)
	rp.PWM.INTE.SetBits(s.mask)
	wrapIRQ.Enable()

	s.pwm.Enable(true)
	s.armed = true
	return nil
}

func (s *Slice) Stop() {
	if !s.armed {
		return
	}
	rp.PWM.INTE.ClearBits(s.mask)
	wrapHandler = nil
	s.pwm.Set(s.ch, 0)
	s.pwm.Enable(false)
	s.armed = false
}

func (s *Slice) SetCompare(value uint32) {
	s.pwm.Set(s.ch, value)
}

func (s *Slice) Top() uint32 { return s.top }
