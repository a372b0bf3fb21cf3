// Package trigger reports clock and gate transitions on a digital input.
//
// It is a minimal edge detector, not a debouncer: the only state is the level
// seen on the previous poll. A transition is reported on the first poll that
// observes the new level; transitions that happen between polls are lost.
package trigger

import "fmt"

// Edge selects which transition Poll reports.
type Edge uint8

const (
	Falling Edge = iota
	Rising
)

func (e Edge) String() string {
	switch e {
	case Falling:
		return "falling"
	case Rising:
		return "rising"
	default:
		return "unknown"
	}
}

// Poll reports whether the line moved from *last to current in the direction
// given by edge. *last is always updated to current, so a caller polling for
// one edge still tracks the line for a later poll of the other.
func Poll(current bool, edge Edge, last *bool) bool {
	prev := *last
	*last = current

	if prev == current {
		return false
	}
	if edge == Rising {
		return current
	}
	return !current
}

// Detector latches the last observed level of one digital input.
// The zero value assumes the line starts LOW; if it is actually HIGH the
// first poll reports a rising edge.
type Detector struct {
	last bool
}

// NewDetector returns a detector seeded with the given level.
func NewDetector(seed bool) Detector {
	return Detector{last: seed}
}

// Poll feeds the current level and reports whether edge occurred.
func (d *Detector) Poll(level bool, edge Edge) bool {
	return Poll(level, edge, &d.last)
}

// Level returns the last observed level.
func (d *Detector) Level() bool {
	return d.last
}

// ParseEdge parses "rising" or "falling".
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "rising":
		return Rising, nil
	case "falling":
		return Falling, nil
	}
	return Rising, fmt.Errorf("unknown edge %q", s)
}
