package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageSamples(t *testing.T) {
	assert.Equal(t, Sample{}, averageSamples(nil))

	now := time.Now()
	samples := []Sample{
		{Timestamp: now, Knobs: [3]float64{0, 1, 0.5}, CV: 1, Freq: 100, Amp: 0},
		{Timestamp: now.Add(time.Second), Knobs: [3]float64{1, 1, 0.5}, CV: 3, Freq: 200, Amp: 1, Clock: true, LED: true},
	}

	avg := averageSamples(samples)
	assert.Equal(t, samples[1].Timestamp, avg.Timestamp)
	assert.Equal(t, [3]float64{0.5, 1, 0.5}, avg.Knobs)
	assert.Equal(t, 2.0, avg.CV)
	assert.Equal(t, 150.0, avg.Freq)
	assert.Equal(t, 0.5, avg.Amp)
	assert.True(t, avg.Clock)
	assert.True(t, avg.LED)
}

func TestAveragingConverter(t *testing.T) {
	in := make(chan Sample, 4)
	out := NewAveragingConverter(2, 4)(in)

	for _, f := range []float64{100, 200, 400} {
		in <- Sample{Freq: f}
	}
	close(in)

	var got []float64
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s, ok := <-out:
			if !ok {
				require.Len(t, got, 3)
				assert.Equal(t, []float64{100, 150, 300}, got)
				return
			}
			got = append(got, s.Freq)
		case <-timeout:
			t.Fatal("Output channel did not close within timeout")
		}
	}
}
