package scope

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/itohio/gograins/pkg/trace"
)

var (
	gridColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	labelColor  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	markerColor = color.RGBA{R: 0, G: 100, B: 200, A: 255}
	statusColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// scopeRenderer renders the scope widget.
type scopeRenderer struct {
	scope *ScopeWidget

	bg       *canvas.Rectangle
	objects  []fyne.CanvasObject
	lastSize fyne.Size
}

// plot is the drawing area inside the margins.
type plot struct {
	x, y, w, h float32
	xMin, xMax time.Time
}

// px maps a time to a horizontal position.
func (p plot) px(t time.Time) float32 {
	span := p.xMax.Sub(p.xMin).Seconds()
	if span <= 0 {
		return p.x
	}
	return p.x + float32(t.Sub(p.xMin).Seconds()/span)*p.w
}

// py maps a 0..1 value to a vertical position, clipped to the plot.
func (p plot) py(v float64) float32 {
	v = math.Max(0, math.Min(1, v))
	return p.y + p.h - float32(v)*p.h
}

func (r *scopeRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *scopeRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	if r.lastSize != size {
		r.lastSize = size
		r.scope.BaseWidget.Refresh()
	}
}

func (r *scopeRenderer) Refresh() {
	r.scope.mu.RLock()
	samples := r.scope.display
	markers := r.scope.markers
	period := r.scope.period
	xMin, xMax := r.scope.xMin, r.scope.xMax
	r.scope.mu.RUnlock()

	size := r.scope.Size()
	if size.Width == 0 || size.Height == 0 {
		return
	}

	r.objects = []fyne.CanvasObject{r.bg}

	const (
		marginLeft   = 50
		marginRight  = 20
		marginTop    = 30
		marginBottom = 40
	)
	p := plot{
		x:    marginLeft,
		y:    marginTop,
		w:    size.Width - marginLeft - marginRight,
		h:    size.Height - marginTop - marginBottom,
		xMin: xMin,
		xMax: xMax,
	}

	r.drawGrid(p)
	r.drawMarkers(p, markers)
	for _, lane := range r.scope.lanes {
		r.drawLane(p, lane, samples)
	}
	r.drawLegend(p)
	r.drawStatus(p, samples, period)
}

// drawGrid draws the oscilloscope-style grid.
func (r *scopeRenderer) drawGrid(p plot) {
	const numHLines = 4
	for i := range numHLines + 1 {
		v := 1 - float64(i)/numHLines
		y := p.py(v)
		r.line(gridColor, 1, fyne.NewPos(p.x, y), fyne.NewPos(p.x+p.w, y))
		r.text(fmt.Sprintf("%.0f%%", v*100), labelColor, 10, fyne.TextAlignTrailing, fyne.NewPos(p.x-5, y-6))
	}

	const numVLines = 10
	span := p.xMax.Sub(p.xMin)
	for i := range numVLines + 1 {
		x := p.x + float32(i)*p.w/numVLines
		r.line(gridColor, 1, fyne.NewPos(x, p.y), fyne.NewPos(x, p.y+p.h))
		offset := span * time.Duration(i) / numVLines
		r.text(formatTime(offset), labelColor, 10, fyne.TextAlignCenter, fyne.NewPos(x-20, p.y+p.h+5))
	}
}

// drawLane draws one signal as connected segments.
func (r *scopeRenderer) drawLane(p plot, lane Lane, samples []trace.Sample) {
	if len(samples) < 2 {
		return
	}
	prev := fyne.NewPos(p.px(samples[0].Timestamp), p.py(lane.Value(samples[0])))
	for _, s := range samples[1:] {
		next := fyne.NewPos(p.px(s.Timestamp), p.py(lane.Value(s)))
		r.line(lane.Color, 1.5, prev, next)
		prev = next
	}
}

// drawMarkers draws a vertical line at every clock edge.
func (r *scopeRenderer) drawMarkers(p plot, markers []trace.Marker) {
	for _, m := range markers {
		if m.Time.Before(p.xMin) || m.Time.After(p.xMax) {
			continue
		}
		x := p.px(m.Time)
		r.line(markerColor, 1, fyne.NewPos(x, p.y), fyne.NewPos(x, p.y+p.h))
	}
}

func (r *scopeRenderer) drawLegend(p plot) {
	x := p.x
	for _, lane := range r.scope.lanes {
		r.text(lane.Name, lane.Color, 11, fyne.TextAlignLeading, fyne.NewPos(x, 8))
		x += 60
	}
}

// drawStatus shows the current frequency and clock tempo.
func (r *scopeRenderer) drawStatus(p plot, samples []trace.Sample, period time.Duration) {
	if len(samples) == 0 {
		return
	}
	status := formatHz(samples[len(samples)-1].Freq)
	if period > 0 {
		status += "  " + formatBPM(period)
	}
	r.text(status, statusColor, 11, fyne.TextAlignTrailing, fyne.NewPos(p.x+p.w, 8))
}

func (r *scopeRenderer) line(c color.Color, width float32, from, to fyne.Position) {
	l := canvas.NewLine(c)
	l.Position1 = from
	l.Position2 = to
	l.StrokeWidth = width
	r.objects = append(r.objects, l)
}

func (r *scopeRenderer) text(s string, c color.Color, size float32, align fyne.TextAlign, pos fyne.Position) {
	t := canvas.NewText(s, c)
	t.TextSize = size
	t.Alignment = align
	t.Move(pos)
	r.objects = append(r.objects, t)
}

func (r *scopeRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *scopeRenderer) Destroy() {}

func formatTime(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func formatHz(hz float64) string {
	return fmt.Sprintf("%.0f Hz", hz)
}

// formatBPM converts a clock period to beats per minute.
func formatBPM(period time.Duration) string {
	return fmt.Sprintf("%.1f BPM", time.Minute.Seconds()/period.Seconds())
}
