package trace

import (
	"log"
	"time"
)

// NewAveragingConverter smooths the continuous fields of a Sample stream
// with a moving average over the last windowSize samples. Clock, LED and
// Params are taken from the newest sample.
func NewAveragingConverter(windowSize int, bufSize int) func(in <-chan Sample) <-chan Sample {
	if windowSize <= 0 {
		windowSize = 1
	}
	if bufSize <= 0 {
		bufSize = 100
	}

	return func(in <-chan Sample) <-chan Sample {
		out := make(chan Sample, bufSize)

		go func() {
			defer close(out)

			buffer := make([]Sample, 0, windowSize)
			for s := range in {
				if len(buffer) == windowSize {
					buffer = append(buffer[:0], buffer[1:]...)
				}
				buffer = append(buffer, s)

				select {
				case out <- averageSamples(buffer):
				case <-time.After(time.Second):
					log.Printf("Averaging converter output channel full")
				}
			}
		}()

		return out
	}
}

// averageSamples averages a slice of Samples.
func averageSamples(samples []Sample) Sample {
	if len(samples) == 0 {
		return Sample{}
	}

	avg := samples[len(samples)-1]
	avg.Knobs = [3]float64{}
	avg.CV, avg.Freq, avg.Octave, avg.Amp, avg.Width = 0, 0, 0, 0, 0

	for _, s := range samples {
		for i := range avg.Knobs {
			avg.Knobs[i] += s.Knobs[i]
		}
		avg.CV += s.CV
		avg.Freq += s.Freq
		avg.Octave += s.Octave
		avg.Amp += s.Amp
		avg.Width += s.Width
	}

	n := float64(len(samples))
	for i := range avg.Knobs {
		avg.Knobs[i] /= n
	}
	avg.CV /= n
	avg.Freq /= n
	avg.Octave /= n
	avg.Amp /= n
	avg.Width /= n
	return avg
}
