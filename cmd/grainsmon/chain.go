package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2/dialog"
	"github.com/itohio/gograins/pkg/link"
	"github.com/itohio/gograins/pkg/monitor"
	"github.com/itohio/gograins/pkg/trace"
)

// chain tracks the goroutines between a device and the trace so they can be
// shut down in order.
type chain struct {
	device    link.Device
	traceDone chan struct{} // Closed when the trace goroutine exits
}

// startChain wires device frames through the resynth tap and converters into
// the trace.
func startChain(state *appState, device link.Device) *chain {
	frames := monitor.Tap(state.resynth, device.Frames())

	samples := trace.NewConverter(state.cfg, 500)(frames)
	if n := state.cfg.Scope.AverageSamples; n > 0 {
		samples = trace.NewAveragingConverter(n, 500)(samples)
	}

	state.trace.Reset()
	done := make(chan struct{})
	go func() {
		defer close(done)
		state.trace.ProcessSamples(samples)
	}()

	return &chain{device: device, traceDone: done}
}

// closeChain closes the device, which closes its frames channel, and waits
// for the pipeline to drain.
func closeChain(c *chain) {
	if c == nil {
		return
	}
	if err := c.device.Close(); err != nil {
		log.Printf("Error closing device: %v", err)
	}
	<-c.traceDone
}

// handleConnect handles the connect/disconnect button click.
func handleConnect(state *appState) {
	if state.device != nil && state.device.IsConnected() {
		disconnect(state)
		return
	}
	connect(state)
}

func disconnect(state *appState) {
	closeChain(state.chain)
	state.chain = nil
	state.device = nil
	if state.useMock {
		log.Printf("Disconnected from simulated module")
	} else {
		log.Printf("Disconnected from serial port")
	}
}

func connect(state *appState) {
	var device link.Device
	if state.useMock {
		ecfg, err := state.cfg.EngineConfig()
		if err != nil {
			dialog.ShowError(fmt.Errorf("invalid engine settings: %w", err), state.window)
			return
		}
		device = link.NewMock(&state.cfg.Mock, ecfg)
	} else {
		device = link.New(state.cfg.Serial.Port, state.cfg.Serial.BaudRate, link.DefaultBufferSize)
	}

	if err := device.Connect(); err != nil {
		if state.useMock {
			dialog.ShowError(fmt.Errorf("failed to start simulated module: %w", err), state.window)
		} else {
			dialog.ShowError(fmt.Errorf("failed to connect to %s: %w", state.cfg.Serial.Port, err), state.window)
		}
		return
	}
	state.device = device
	if state.useMock {
		log.Printf("Connected to simulated module")
	} else {
		log.Printf("Connected to serial port: %s", state.cfg.Serial.Port)
	}

	state.chain = startChain(state, device)
	applyPatch(state)
}

// reconnect restarts the chain after settings that affect it change.
func reconnect(state *appState) {
	if state.device == nil || !state.device.IsConnected() {
		return
	}
	disconnect(state)
	connect(state)
}
