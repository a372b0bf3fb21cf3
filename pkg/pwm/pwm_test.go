package pwm

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDevice struct {
	Sim
}

func (f *failingDevice) Start(uint32, func()) error {
	return errors.New("timer busy")
}

func TestDriver_EnableIdempotent(t *testing.T) {
	sim := NewSim(0)
	d := New(sim, 31250)

	require.NoError(t, d.Enable())
	once := sim.State()

	require.NoError(t, d.Enable())
	twice := sim.State()

	assert.Equal(t, once, twice)
	assert.Equal(t, SimState{Running: true, SampleRate: 31250, Starts: 1}, twice)
	assert.True(t, d.Enabled())
}

func TestDriver_EnableError(t *testing.T) {
	d := New(&failingDevice{}, 31250)

	err := d.Enable()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timer busy")
	assert.False(t, d.Enabled())
}

func TestDriver_ZeroSampleRate(t *testing.T) {
	d := New(NewSim(0), 0)
	assert.Error(t, d.Enable())
	assert.False(t, d.Enabled())
}

func TestDriver_SetLevelLastWriteWins(t *testing.T) {
	sim := NewSim(0)
	d := New(sim, 8000)

	d.SetLevel(10)
	d.SetLevel(200)
	assert.Equal(t, uint32(200), sim.Compare())
}

func TestDriver_ZeroOrderHold(t *testing.T) {
	sim := NewSim(0)
	d := New(sim, 8000)
	require.NoError(t, d.Enable())

	out := make([]uint32, 3)

	d.Submit(40)
	sim.Tick(out)
	assert.Equal(t, []uint32{40, 40, 40}, out)

	// Only the latest submission survives until the next period.
	d.Submit(50)
	d.Submit(60)
	sim.Tick(out)
	assert.Equal(t, []uint32{60, 60, 60}, out)
}

func TestDriver_OnPeriod(t *testing.T) {
	sim := NewSim(0)
	d := New(sim, 8000)

	var count uint32
	d.OnPeriod(func(next uint32) uint32 {
		count++
		return next + count
	})
	require.NoError(t, d.Enable())

	d.Submit(100)
	out := make([]uint32, 4)
	sim.Tick(out)
	assert.Equal(t, []uint32{101, 102, 103, 104}, out)
}

func TestDriver_Disable(t *testing.T) {
	sim := NewSim(0)
	d := New(sim, 8000)
	require.NoError(t, d.Enable())

	d.Submit(77)
	out := make([]uint32, 2)
	sim.Tick(out)
	assert.Equal(t, uint32(77), sim.Compare())

	d.Disable()
	d.Disable()
	assert.False(t, d.Enabled())
	assert.False(t, sim.State().Running)

	// A stopped timer holds the idle level.
	sim.Tick(out)
	assert.Equal(t, []uint32{0, 0}, out)

	require.NoError(t, d.Enable())
	assert.Equal(t, 2, sim.State().Starts)
}

func TestSim_SetLevelWhileStopped(t *testing.T) {
	sim := NewSim(0)
	d := New(sim, 8000)

	d.SetLevel(123)
	assert.Equal(t, uint32(123), sim.Compare())

	out := []uint32{9, 9, 9}
	sim.Tick(out)
	assert.Equal(t, []uint32{0, 0, 0}, out)

	require.NoError(t, d.Enable())
	d.Disable()
	d.SetLevel(200)
	sim.Tick(out)
	assert.Equal(t, []uint32{0, 0, 0}, out)
}

func TestDriver_ConcurrentSubmit(t *testing.T) {
	sim := NewSim(0)
	d := New(sim, 8000)
	require.NoError(t, d.Enable())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint32(0); i < 1000; i++ {
			d.Submit(i)
		}
	}()

	out := make([]uint32, 1000)
	sim.Tick(out)
	wg.Wait()

	for _, v := range out {
		assert.Less(t, v, uint32(1000))
	}
	sim.Tick(out[:1])
	assert.Equal(t, uint32(999), out[0])
}

func TestHandoff(t *testing.T) {
	var h Handoff
	assert.Equal(t, uint32(0), h.Load())
	h.Store(1)
	h.Store(2)
	assert.Equal(t, uint32(2), h.Load())
}

func TestDriver_Accessors(t *testing.T) {
	d := New(NewSim(1023), 44100)
	assert.Equal(t, uint32(1023), d.Top())
	assert.Equal(t, uint32(44100), d.SampleRate())
}
