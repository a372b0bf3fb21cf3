package link

import (
	"slices"
	"testing"
	"time"

	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietPanel() *config.MockConfig {
	return &config.MockConfig{
		Knobs:       [3]float64{0.5, 1, 0.5},
		ClockPeriod: 100 * time.Millisecond,
		StepRate:    10 * time.Millisecond,
		FrameEvery:  1,
	}
}

func runSteps(t *testing.T, m *Mock, n int) []Frame {
	t.Helper()
	var frames []Frame
	for range n {
		if f, ok := m.step(time.Now()); ok {
			frames = append(frames, f)
		}
	}
	return frames
}

func TestMock_Step(t *testing.T) {
	m := NewMock(quietPanel(), engine.DefaultConfig())
	require.NoError(t, m.start())

	frames := runSteps(t, m, 11)
	require.Len(t, frames, 11)

	// Clock is high for the first half of each 100ms period.
	assert.True(t, frames[0].Clock)
	assert.True(t, frames[0].LED)
	assert.True(t, frames[4].Clock)
	assert.False(t, frames[5].Clock)
	assert.True(t, frames[5].LED)
	assert.True(t, frames[10].Clock)
	assert.False(t, frames[10].LED)

	// Knobs are settled after the smoothing window fills.
	assert.Equal(t, [3]uint16{512, 1023, 512}, frames[4].Knobs)
	assert.Equal(t, uint16(0), frames[4].CV)
	assert.Equal(t, mapping.MapSemitone(512), frames[4].Freq)

	// Knob2 fully clockwise holds the envelope.
	assert.Equal(t, uint8(255), frames[10].Params.Amp())
}

func TestMock_FrameEvery(t *testing.T) {
	cfg := quietPanel()
	cfg.FrameEvery = 2
	m := NewMock(cfg, engine.DefaultConfig())
	require.NoError(t, m.start())

	assert.Len(t, runSteps(t, m, 4), 2)
}

func TestMock_RendersAudio(t *testing.T) {
	m := NewMock(quietPanel(), engine.DefaultConfig())
	require.NoError(t, m.start())

	runSteps(t, m, 1)
	out := m.output()
	assert.Len(t, out, 312)
	assert.Positive(t, slices.Max(out))
}

func TestMock_Inputs(t *testing.T) {
	cfg := quietPanel()
	cfg.CVRate = 1
	cfg.CVDepth = 1
	m := NewMock(cfg, engine.DefaultConfig())

	assert.Equal(t, uint16(512), m.inputs(0).Raw[engine.CV])
	assert.Equal(t, uint16(1023), m.inputs(250*time.Millisecond).Raw[engine.CV])
	assert.Equal(t, uint16(0), m.inputs(750*time.Millisecond).Raw[engine.CV])
}

func TestMock_Configure(t *testing.T) {
	m := NewMock(nil, engine.DefaultConfig())
	assert.Error(t, m.Configure(mapping.Freq, trigger.Falling))

	require.NoError(t, m.Connect())
	defer m.Close()

	assert.True(t, m.IsConnected())
	assert.Error(t, m.Connect())
	assert.Error(t, m.Configure(mapping.Table(42), trigger.Falling))
	require.NoError(t, m.Configure(mapping.Freq, trigger.Falling))

	m.mu.RLock()
	defer m.mu.RUnlock()
	assert.Equal(t, mapping.Freq, m.eng.Config().PitchTable)
	assert.Equal(t, trigger.Falling, m.eng.Config().ClockEdge)
}

func TestMock_CopiesPanelConfig(t *testing.T) {
	cfg := quietPanel()
	cfg.StepRate = time.Millisecond
	m := NewMock(cfg, engine.DefaultConfig())
	require.NoError(t, m.Connect())

	time.Sleep(20 * time.Millisecond)
	cfg.Knobs[0] = 0.9
	cfg.StepRate = time.Hour
	require.NoError(t, m.Close())

	m.mu.RLock()
	defer m.mu.RUnlock()
	assert.Equal(t, 0.5, m.cfg.Knobs[0])
	assert.Equal(t, time.Millisecond, m.cfg.StepRate)
}

func TestMock_ConnectFailsWithoutSampleRate(t *testing.T) {
	m := NewMock(nil, engine.Config{})
	assert.Error(t, m.Connect())
	assert.False(t, m.IsConnected())
}

func TestToADC(t *testing.T) {
	assert.Equal(t, uint16(0), toADC(-0.5))
	assert.Equal(t, uint16(0), toADC(0))
	assert.Equal(t, uint16(512), toADC(0.5))
	assert.Equal(t, uint16(1023), toADC(1))
	assert.Equal(t, uint16(1023), toADC(2))
}
