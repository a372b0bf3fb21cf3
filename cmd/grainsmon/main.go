package main

import (
	"flag"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/link"
	"github.com/itohio/gograins/pkg/monitor"
	"github.com/itohio/gograins/pkg/scope"
	"github.com/itohio/gograins/pkg/trace"
)

func main() {
	var (
		portFlag   = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		mockFlag   = flag.Bool("mock", false, "Use a simulated module instead of the serial port")
		audioFlag  = flag.Bool("audio", false, "Play the re-synthesized voice (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}
	if *audioFlag {
		cfg.Audio.Enabled = true
	}

	resynth, err := monitor.NewResynth(cfg.Audio.SampleRate)
	if err != nil {
		log.Fatalf("Failed to create resynth: %v", err)
	}
	defer resynth.Close()

	application := app.NewWithID("com.itohio.gograins")

	window := application.NewWindow("Grains Monitor")
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()

	state := &appState{
		cfg:        cfg,
		configPath: *configFlag,
		trace:      trace.New(cfg),
		resynth:    resynth,
		window:     window,
		useMock:    *mockFlag,
	}

	toolbar := createToolbar(state)

	state.scopeWidget = scope.New(cfg)
	registerScopeUpdates(state)

	if cfg.Audio.Enabled {
		toggleAudio(state)
	}
	defer state.closeAudio()

	window.SetContent(container.NewBorder(toolbar, nil, nil, nil, state.scopeWidget))
	window.ShowAndRun()

	closeChain(state.chain)
}

// appState holds the application state.
type appState struct {
	cfg        *config.Config
	configPath string

	device      link.Device
	trace       *trace.Trace
	resynth     *monitor.Resynth
	player      *monitor.Player
	scopeWidget *scope.ScopeWidget
	window      fyne.Window
	useMock     bool
	chain       *chain

	connectBtn  *widget.Button
	audioBtn    *widget.Button
	tableSelect *widget.Select
	edgeSelect  *widget.Select

	// Throttling for scope updates
	lastUpdateTime time.Time
	updateMu       sync.Mutex
}

// registerScopeUpdates forwards trace updates to the scope at up to ~60 FPS.
func registerScopeUpdates(state *appState) {
	const updateInterval = 16 * time.Millisecond

	state.trace.OnUpdate(func(samples []trace.Sample, markers []trace.Marker) {
		state.updateMu.Lock()
		now := time.Now()
		if now.Sub(state.lastUpdateTime) < updateInterval {
			state.updateMu.Unlock()
			return
		}
		state.lastUpdateTime = now
		state.updateMu.Unlock()

		period := state.trace.ClockPeriod()
		fyne.Do(func() {
			state.scopeWidget.UpdateData(samples, markers, period)
		})
	})
}
