// Package trace turns telemetry frames into physical samples and keeps a
// time window of them for display.
package trace

import (
	"log"
	"math"
	"time"

	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/link"
	"github.com/itohio/gograins/pkg/mapping"
)

// Sample is a telemetry frame in physical units.
type Sample struct {
	Timestamp time.Time
	Knobs     [3]float64 // Knob1..Knob3 positions, 0..1
	CV        float64    // CV input (V)
	Freq      float64    // Oscillator frequency (Hz)
	Octave    float64    // Pitch above the lowest FREQ note, 1V/oct
	Amp       float64    // Envelope level, 0..1
	Width     float64    // Pulse duty cycle, 0..1
	Clock     bool
	LED       bool
	Params    engine.Params
}

// Converter transforms a Frame channel into a Sample channel.
type Converter func(in <-chan link.Frame) <-chan Sample

// NewConverter creates a converter that transforms Frames to Samples.
func NewConverter(cfg *config.Config, bufSize int) Converter {
	if bufSize <= 0 {
		bufSize = 100
	}

	return func(in <-chan link.Frame) <-chan Sample {
		out := make(chan Sample, bufSize)

		go func() {
			defer close(out)

			for f := range in {
				select {
				case out <- convertFrame(f, cfg.Scope.CVVolts):
				case <-time.After(time.Second):
					log.Printf("Converter output channel full, dropping sample")
				}
			}
		}()

		return out
	}
}

// convertFrame converts a Frame to a Sample; cvVolts is the voltage at a
// full-scale reading.
func convertFrame(f link.Frame, cvVolts float64) Sample {
	s := Sample{
		Timestamp: f.Timestamp,
		CV:        adcToUnit(f.CV) * cvVolts,
		Freq:      float64(f.Freq),
		Amp:       float64(f.Params.Amp()) / math.MaxUint8,
		Width:     float64(f.Params.Width()) / (math.MaxUint8 + 1),
		Clock:     f.Clock,
		LED:       f.LED,
		Params:    f.Params,
	}
	for i, k := range f.Knobs {
		s.Knobs[i] = adcToUnit(k)
	}
	if f.Freq > 0 {
		s.Octave = math.Log2(float64(f.Freq) / mapping.FreqMin)
	}
	return s
}

// adcToUnit converts a 10-bit reading to 0..1.
func adcToUnit(adc uint16) float64 {
	return float64(adc) / mapping.MaxIndex
}
