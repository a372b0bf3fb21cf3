package trace

import (
	"testing"
	"time"

	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFrame(t *testing.T) {
	ts := time.UnixMicro(1000)
	tests := []struct {
		name  string
		frame link.Frame
		want  Sample
	}{
		{
			name: "full scale",
			frame: link.Frame{
				Timestamp: ts,
				Knobs:     [3]uint16{0, 1023, 0},
				CV:        1023,
				Clock:     true,
				Freq:      110,
				Params:    engine.Pack(230, 255, 128),
			},
			want: Sample{
				Timestamp: ts,
				Knobs:     [3]float64{0, 1, 0},
				CV:        5,
				Freq:      110,
				Octave:    1,
				Amp:       1,
				Width:     0.5,
				Clock:     true,
				Params:    engine.Pack(230, 255, 128),
			},
		},
		{
			name: "silent",
			frame: link.Frame{
				Timestamp: ts,
				LED:       true,
				Freq:      55,
			},
			want: Sample{
				Timestamp: ts,
				Freq:      55,
				LED:       true,
			},
		},
		{
			name:  "no frequency",
			frame: link.Frame{Timestamp: ts},
			want:  Sample{Timestamp: ts},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertFrame(tt.frame, 5)
			assert.InDelta(t, tt.want.Octave, got.Octave, 1e-9)
			got.Octave = tt.want.Octave
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertFrame_MidScale(t *testing.T) {
	s := convertFrame(link.Frame{Knobs: [3]uint16{512, 0, 0}, CV: 512, Freq: 440}, 5)
	assert.InDelta(t, 0.5, s.Knobs[0], 0.001)
	assert.InDelta(t, 2.5, s.CV, 0.01)
	assert.InDelta(t, 3.0, s.Octave, 1e-9)
}

func TestConverter_GracefulShutdown(t *testing.T) {
	converter := NewConverter(config.Default(), 10)
	input := make(chan link.Frame, 10)
	output := converter(input)

	now := time.Now()
	for i := range 3 {
		input <- link.Frame{Timestamp: now.Add(time.Duration(i) * time.Second), Freq: 220}
	}
	close(input)

	var got []Sample
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range output {
			got = append(got, s)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Output channel did not close within timeout")
	}

	require.Len(t, got, 3)
	assert.Equal(t, 220.0, got[2].Freq)
	assert.True(t, got[2].Timestamp.Equal(now.Add(2*time.Second)))
}
