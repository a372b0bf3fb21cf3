//go:build tinygo && rp2040

package main

import (
	"machine"
	"time"
)

const (
	// Audio configuration
	SAMPLE_RATE = 31250 // PWM periods per second; also the carrier frequency

	// Control loop configuration
	STEP_INTERVAL = 1 * time.Millisecond // Knob/CV/clock polling interval
	REPORT_EVERY  = 20                   // Print telemetry every N steps (50 lines/s)

	// ADC configuration
	ADC_SHIFT = 6 // machine.ADC.Get is scaled to 16 bits; the tables take 10

	// Panel inputs, in engine input order: Knob3, Knob2, Knob1, CV
	PIN_KNOB3 = machine.A0
	PIN_KNOB2 = machine.A1
	PIN_KNOB1 = machine.A2
	PIN_CV    = machine.A3

	// Clock (gate) input
	PIN_CLOCK = machine.D7

	// Audio output, PWM slice 1 channel B
	PIN_AUDIO = machine.D10

	// Serial configuration
	// Line format: "unix_micros,k1,k2,k3,cv,clock,led,freq,params\n"
	// Example: "1234567890123456,1023,1023,1023,1023,1,1,1760,4294967295\n" = ~60 bytes max per line
	// 50 lines/sec * 60 bytes/line = 3,000 bytes/sec, well inside USB CDC full speed.
	BAUD_RATE = 115200
)
