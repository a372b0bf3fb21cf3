// Package tablegen computes the mapping curves and renders them as Go source.
// It runs at build time only (see cmd/gentables); the firmware never links it.
package tablegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"math"
	"text/template"
)

const (
	// Len is the table length, one entry per 10-bit ADC code.
	Len = 1024
	top = Len - 1

	// BaseHz is the frequency at index 0 of the pitch tables (A1).
	BaseHz = 55.0
	// Octaves spanned by the full input range (1V/oct over 0..5V).
	Octaves = 5

	curve     = 4.0
	semitones = 12 * Octaves
	perRow    = 16
)

// majorDegrees are the semitone offsets of a major scale from its root.
var majorDegrees = [...]int{0, 2, 4, 5, 7, 9, 11}

// Table is one generated lookup table.
type Table struct {
	Name   string
	Doc    string
	Values [Len]uint16
}

func round(v float64) uint16 {
	return uint16(math.Floor(v + 0.5))
}

func noteHz(n int) uint16 {
	return round(BaseHz * math.Pow(2, float64(n)/12))
}

// Freq returns the exponential 1V/oct frequency for index i.
func Freq(i int) uint16 {
	return round(BaseHz * math.Pow(2, Octaves*float64(i)/top))
}

// bipolar maps i onto -1..1 and applies shape to the magnitude, then maps the
// result back onto 0..top.
func bipolar(i int, shape func(a float64) float64) uint16 {
	u := 2*float64(i)/top - 1
	y := shape(math.Abs(u))
	if u < 0 {
		y = -y
	}
	return round(top * (y + 1) / 2)
}

// Exp is steep around the centre and flat at both ends.
func Exp(i int) uint16 {
	return bipolar(i, func(a float64) float64 {
		return math.Log1p(a*math.Expm1(curve)) / curve
	})
}

// Log is flat around the centre and steep at both ends.
func Log(i int) uint16 {
	return bipolar(i, func(a float64) float64 {
		return math.Expm1(curve*a) / math.Expm1(curve)
	})
}

// Semitone quantizes i to the nearest equal-tempered note. Distances are
// compared in 1/top semitone units so no rounding is involved.
func Semitone(i int) uint16 {
	n := (2*semitones*i + top) / (2 * top)
	return noteHz(n)
}

// Major quantizes i to the nearest major scale degree; ties go to the lower
// note.
func Major(i int) uint16 {
	pos := semitones * i
	best, bestDist := 0, -1
	for oct := 0; oct <= Octaves; oct++ {
		for _, d := range majorDegrees {
			n := 12*oct + d
			if n > semitones {
				continue
			}
			dist := pos - top*n
			if dist < 0 {
				dist = -dist
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = n, dist
			}
		}
	}
	return noteHz(best)
}

func build(name, doc string, fn func(int) uint16) Table {
	t := Table{Name: name, Doc: doc}
	for i := range Len {
		t.Values[i] = fn(i)
	}
	return t
}

// Tables returns every table in the order they are emitted.
func Tables() []Table {
	return []Table{
		build("freqTable", "55 Hz to 1760 Hz, five octaves at 1V/oct.", Freq),
		build("expTable", "finer control at both ends of travel.", Exp),
		build("logTable", "finer control around the centre of travel.", Log),
		build("semitoneTable", "nearest equal-tempered note, in Hz.", Semitone),
		build("majorTable", "nearest A major scale degree, in Hz.", Major),
	}
}

var source = template.Must(template.New("tables").Funcs(template.FuncMap{
	"rows": rows,
}).Parse(`// Code generated by gentables; DO NOT EDIT.

package {{.Package}}
{{range .Tables}}
// {{.Name}}: {{.Doc}}
var {{.Name}} = [Len]uint16{
{{- range rows .Values}}
	{{.}},
{{- end}}
}
{{end}}`))

func rows(values [Len]uint16) []string {
	out := make([]string, 0, Len/perRow)
	var line bytes.Buffer
	for i, v := range values {
		if i%perRow != 0 {
			line.WriteString(", ")
		}
		fmt.Fprintf(&line, "%d", v)
		if i%perRow == perRow-1 || i == len(values)-1 {
			out = append(out, line.String())
			line.Reset()
		}
	}
	return out
}

// Render writes gofmt'ed Go source declaring tables in package pkg.
func Render(w io.Writer, pkg string, tables []Table) error {
	var buf bytes.Buffer
	err := source.Execute(&buf, struct {
		Package string
		Tables  []Table
	}{pkg, tables})
	if err != nil {
		return fmt.Errorf("failed to render tables: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format tables: %w", err)
	}

	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("failed to write tables: %w", err)
	}
	return nil
}
