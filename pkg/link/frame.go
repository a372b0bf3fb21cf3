package link

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/mapping"
)

// numFields is the number of comma-separated values in a telemetry line.
const numFields = 9

// Frame is one telemetry report from the module.
type Frame struct {
	Timestamp time.Time
	Knobs     [3]uint16 // Knob1, Knob2, Knob3 after smoothing (0-1023)
	CV        uint16    // CV input after smoothing (0-1023)
	Clock     bool      // Clock input level
	LED       bool      // Status LED state
	Freq      uint16    // Oscillator frequency in Hz
	Params    engine.Params
}

// FrameFromStatus builds the frame the firmware would report for st.
func FrameFromStatus(ts time.Time, st engine.Status) Frame {
	return Frame{
		Timestamp: ts,
		Knobs: [3]uint16{
			st.Smoothed[engine.Knob1],
			st.Smoothed[engine.Knob2],
			st.Smoothed[engine.Knob3],
		},
		CV:     st.Smoothed[engine.CV],
		Clock:  st.Clock,
		LED:    st.LED,
		Freq:   st.Freq,
		Params: st.Params,
	}
}

// parseLine parses a line from the module into a Frame.
// Format: unix_micros,k1,k2,k3,cv,clock,led,freq,params
// Example: 1234567890123,512,1023,0,14,1,0,440,1090519962
func parseLine(line string) (Frame, error) {
	parts := strings.Split(line, ",")
	if len(parts) != numFields {
		return Frame{}, fmt.Errorf("invalid line format: expected %d comma-separated values, got %d", numFields, len(parts))
	}

	timestampMicros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Frame{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	var f Frame
	f.Timestamp = time.UnixMicro(timestampMicros)

	for i := range f.Knobs {
		if f.Knobs[i], err = parseReading(parts[1+i]); err != nil {
			return Frame{}, fmt.Errorf("invalid knob %d: %w", i+1, err)
		}
	}
	if f.CV, err = parseReading(parts[4]); err != nil {
		return Frame{}, fmt.Errorf("invalid cv: %w", err)
	}
	if f.Clock, err = parseFlag(parts[5]); err != nil {
		return Frame{}, fmt.Errorf("invalid clock: %w", err)
	}
	if f.LED, err = parseFlag(parts[6]); err != nil {
		return Frame{}, fmt.Errorf("invalid led: %w", err)
	}

	freq, err := strconv.ParseUint(parts[7], 10, 16)
	if err != nil {
		return Frame{}, fmt.Errorf("invalid frequency: %w", err)
	}
	f.Freq = uint16(freq)

	params, err := strconv.ParseUint(parts[8], 10, 32)
	if err != nil {
		return Frame{}, fmt.Errorf("invalid params: %w", err)
	}
	f.Params = engine.Params(params)

	return f, nil
}

// parseReading parses a 10-bit ADC reading.
func parseReading(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	if v > mapping.MaxIndex {
		return 0, fmt.Errorf("out of range: %d (max %d)", v, mapping.MaxIndex)
	}
	return uint16(v), nil
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("expected 0 or 1, got %q", s)
}
