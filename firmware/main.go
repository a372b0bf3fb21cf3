//go:build tinygo && rp2040

// The size report shows where the mapping tables land: about 10 KB of
// flash, or of ram if the optimizer keeps them writable.
//go:generate tinygo build -size=short -target=xiao-rp2040 -o grains.uf2
//go:generate tinygo flash -target=xiao-rp2040

package main

import (
	"machine"
	"time"

	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/pwm"
)

var (
	inputPins = [engine.NumInputs]machine.Pin{
		engine.Knob3: PIN_KNOB3,
		engine.Knob2: PIN_KNOB2,
		engine.Knob1: PIN_KNOB1,
		engine.CV:    PIN_CV,
	}
	adcs [engine.NumInputs]machine.ADC

	eng    *engine.Engine
	serial = machine.Serial

	// Timing
	lastStep time.Time
	steps    int

	// Serial buffer for reading command lines; one spare byte so overlong
	// lines fail to parse
	serialBuffer [engine.CommandLen + 1]byte
	serialPos    int
)

func main() {
	serial.Configure(machine.UARTConfig{BaudRate: BAUD_RATE})

	machine.InitADC()
	for i, pin := range inputPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinAnalog})
		adcs[i] = machine.ADC{Pin: pin}
		adcs[i].Configure(machine.ADCConfig{})
	}

	PIN_CLOCK.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	slice, err := pwm.NewSlice(PIN_AUDIO)
	if err != nil {
		halt("pwm slice", err)
	}
	PIN_AUDIO.Configure(machine.PinConfig{Mode: machine.PinPWM})

	eng = engine.New(engine.DefaultConfig(), pwm.New(slice, SAMPLE_RATE))
	if err := eng.Start(); err != nil {
		halt("pwm start", err)
	}

	lastStep = time.Now()

	for {
		processSerial()

		now := time.Now()
		if now.Sub(lastStep) < STEP_INTERVAL {
			continue
		}
		lastStep = now

		st := eng.Step(readInputs())
		machine.LED.Set(st.LED)

		steps++
		if steps >= REPORT_EVERY {
			steps = 0
			report(now, st)
		}
	}
}

// readInputs reads the panel as 10-bit values.
func readInputs() engine.Inputs {
	var in engine.Inputs
	for i := range adcs {
		in.Raw[i] = adcs[i].Get() >> ADC_SHIFT
	}
	in.Clock = PIN_CLOCK.Get()
	return in
}

// report prints one telemetry line.
// Format: "unix_micros,k1,k2,k3,cv,clock,led,freq,params\n"
func report(now time.Time, st engine.Status) {
	print(now.UnixMicro())
	print(",")
	print(st.Smoothed[engine.Knob1])
	print(",")
	print(st.Smoothed[engine.Knob2])
	print(",")
	print(st.Smoothed[engine.Knob3])
	print(",")
	print(st.Smoothed[engine.CV])
	print(",")
	printFlag(st.Clock)
	print(",")
	printFlag(st.LED)
	print(",")
	print(st.Freq)
	print(",")
	print(uint32(st.Params))
	print("\n")
}

func printFlag(b bool) {
	if b {
		print("1")
	} else {
		print("0")
	}
}

// processSerial collects a command line and applies it on newline.
func processSerial() {
	for serial.Buffered() > 0 {
		data, err := serial.ReadByte()
		if err != nil {
			break
		}

		if data == '\n' || data == '\r' {
			if cmd, ok := engine.ParseCommand(serialBuffer[:serialPos]); ok {
				eng.Apply(cmd)
			}
			serialPos = 0
			continue
		}

		if data == ' ' || data == '\t' {
			continue
		}

		if serialPos < len(serialBuffer) {
			serialBuffer[serialPos] = data
			serialPos++
		}
	}
}

func halt(what string, err error) {
	machine.LED.High()
	for {
		println(what+":", err.Error())
		time.Sleep(time.Second)
	}
}
