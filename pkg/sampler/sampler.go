// Package sampler smooths raw ADC readings with a fixed-length moving average.
//
// Every physical input owns its own Window. The running sum is updated
// incrementally so each call is O(1) and never allocates, which keeps it
// usable from a tight control loop on a microcontroller.
package sampler

// WindowLen is the number of readings averaged per input.
const WindowLen = 4

// Reader is an analog input that can be sampled. TinyGo's machine.ADC
// satisfies it.
type Reader interface {
	Get() uint16
}

// Window holds the last WindowLen readings of a single input.
// The zero value is ready to use; its slots start at zero, so the first
// WindowLen-1 averages include those zeros.
type Window struct {
	slots [WindowLen]uint16
	sum   uint32
	i     uint8
}

// Sample adds raw to w and returns the new average.
func Sample(raw uint16, w *Window) uint16 {
	return w.Add(raw)
}

// Read samples r into w and returns the new average.
func Read(r Reader, w *Window) uint16 {
	return w.Add(r.Get())
}

// Add overwrites the oldest reading with raw and returns sum/WindowLen,
// truncated.
func (w *Window) Add(raw uint16) uint16 {
	w.sum -= uint32(w.slots[w.i])
	w.sum += uint32(raw)
	w.slots[w.i] = raw

	w.i++
	if w.i >= WindowLen {
		w.i = 0
	}

	return uint16(w.sum / WindowLen)
}

// Average returns the current average without adding a reading.
func (w *Window) Average() uint16 {
	return uint16(w.sum / WindowLen)
}

// Sum returns the running sum of all slots.
func (w *Window) Sum() uint32 {
	return w.sum
}

// Slots returns a copy of the window contents in storage order.
func (w *Window) Slots() [WindowLen]uint16 {
	return w.slots
}

// Reset clears the window back to its zero state.
func (w *Window) Reset() {
	*w = Window{}
}
