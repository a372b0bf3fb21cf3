package scope

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/gograins/pkg/config"
	"github.com/itohio/gograins/pkg/trace"
)

// octaves is the pitch range shown on the pitch lane, in volts at 1V/oct.
const octaves = 5

// Lane is one plotted signal, scaled to 0..1 of the plot height.
type Lane struct {
	Name  string
	Color color.Color
	Value func(s trace.Sample) float64
}

// Lanes returns the signals plotted by the scope.
func Lanes(cvVolts float64) []Lane {
	if cvVolts <= 0 {
		cvVolts = 5
	}
	return []Lane{
		{"pitch", color.RGBA{R: 255, G: 165, B: 0, A: 255}, func(s trace.Sample) float64 { return s.Octave / octaves }},
		{"cv", color.RGBA{R: 100, G: 200, B: 255, A: 255}, func(s trace.Sample) float64 { return s.CV / cvVolts }},
		{"env", color.RGBA{R: 120, G: 220, B: 120, A: 255}, func(s trace.Sample) float64 { return s.Amp }},
		{"width", color.RGBA{R: 200, G: 120, B: 220, A: 255}, func(s trace.Sample) float64 { return s.Width }},
	}
}

// ScopeWidget is a Fyne widget that plots the module's signals over time.
type ScopeWidget struct {
	widget.BaseWidget

	cfg   *config.Config
	lanes []Lane

	mu      sync.RWMutex
	display []trace.Sample
	markers []trace.Marker
	period  time.Duration

	xMin, xMax time.Time

	maxDisplayPoints int
}

// New creates a new ScopeWidget instance.
func New(cfg *config.Config) *ScopeWidget {
	maxPoints := cfg.Scope.MaxDisplayPoints
	if maxPoints <= 0 {
		maxPoints = 1000
	}
	s := &ScopeWidget{
		cfg:              cfg,
		lanes:            Lanes(cfg.Scope.CVVolts),
		display:          make([]trace.Sample, 0, maxPoints),
		maxDisplayPoints: maxPoints,
	}
	s.ExtendBaseWidget(s)
	s.Refresh()
	return s
}

// UpdateData replaces the plotted data. Call it through fyne.Do from the
// trace callback.
func (s *ScopeWidget) UpdateData(samples []trace.Sample, markers []trace.Marker, period time.Duration) {
	s.mu.Lock()
	s.display = trace.DownsampleSamples(s.display, samples, s.maxDisplayPoints)
	s.markers = markers
	s.period = period
	s.xMin, s.xMax = timeRange(s.display, s.window())
	s.mu.Unlock()

	s.Refresh()
}

func (s *ScopeWidget) window() time.Duration {
	return time.Duration(s.cfg.Scope.WindowSeconds * float64(time.Second))
}

// timeRange returns the plotted time span: the samples' span, widened to at
// least window.
func timeRange(samples []trace.Sample, window time.Duration) (time.Time, time.Time) {
	if len(samples) == 0 {
		now := time.Now()
		return now, now.Add(window)
	}
	xMin := samples[0].Timestamp
	xMax := samples[len(samples)-1].Timestamp
	if xMax.Sub(xMin) < window {
		xMax = xMin.Add(window)
	}
	return xMin, xMax
}

// CreateRenderer creates the widget renderer.
func (s *ScopeWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 20, G: 20, B: 20, A: 255})
	return &scopeRenderer{
		scope:   s,
		bg:      bg,
		objects: []fyne.CanvasObject{bg},
	}
}
