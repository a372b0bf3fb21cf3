package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type constReader uint16

func (r constReader) Get() uint16 { return uint16(r) }

func slotSum(w *Window) uint32 {
	var sum uint32
	for _, v := range w.Slots() {
		sum += uint32(v)
	}
	return sum
}

func TestSample_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		readings []uint16
		want     uint16
	}{
		{
			name:     "constant readings",
			readings: []uint16{100, 100, 100, 100},
			want:     100,
		},
		{
			name:     "single spike",
			readings: []uint16{0, 0, 0, 400},
			want:     100,
		},
		{
			name:     "truncating division",
			readings: []uint16{1, 1, 1, 0},
			want:     0,
		},
		{
			name:     "full scale 10-bit",
			readings: []uint16{1023, 1023, 1023, 1023},
			want:     1023,
		},
		{
			name:     "full scale 16-bit",
			readings: []uint16{65535, 65535, 65535, 65535},
			want:     65535,
		},
		{
			name:     "oldest reading evicted",
			readings: []uint16{800, 0, 0, 0, 0},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Window
			var got uint16
			for _, r := range tt.readings {
				got = Sample(r, &w)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSample_WarmUp(t *testing.T) {
	var w Window

	// Zero-initialised slots take part in the average until the window fills.
	assert.Equal(t, uint16(25), w.Add(100))
	assert.Equal(t, uint16(50), w.Add(100))
	assert.Equal(t, uint16(75), w.Add(100))
	assert.Equal(t, uint16(100), w.Add(100))
}

func TestSample_ConstantAfterFill(t *testing.T) {
	for _, v := range []uint16{0, 1, 512, 1023, 4095, 65535} {
		var w Window
		for i := 0; i < WindowLen-1; i++ {
			w.Add(v)
		}
		for i := 0; i < 3*WindowLen; i++ {
			assert.Equal(t, v, w.Add(v), "value %d, call %d", v, i)
		}
	}
}

func TestSample_SumInvariant(t *testing.T) {
	var w Window
	readings := []uint16{7, 65535, 0, 1023, 512, 3, 65535, 65535, 9, 0, 44, 1000, 65535}

	for i, r := range readings {
		avg := w.Add(r)
		assert.Equal(t, slotSum(&w), w.Sum(), "after reading %d", i)
		assert.Equal(t, uint16(w.Sum()/WindowLen), avg)
		assert.Equal(t, avg, w.Average())
	}
}

func TestSample_IndependentWindows(t *testing.T) {
	var a, b Window
	for i := 0; i < WindowLen; i++ {
		a.Add(200)
		b.Add(40)
	}
	assert.Equal(t, uint16(200), a.Average())
	assert.Equal(t, uint16(40), b.Average())
}

func TestRead(t *testing.T) {
	var w Window
	var got uint16
	for i := 0; i < WindowLen; i++ {
		got = Read(constReader(321), &w)
	}
	assert.Equal(t, uint16(321), got)
}

func TestReset(t *testing.T) {
	var w Window
	w.Add(10)
	w.Add(20)
	w.Reset()

	assert.Equal(t, uint32(0), w.Sum())
	assert.Equal(t, [WindowLen]uint16{}, w.Slots())
	assert.Equal(t, uint16(25), w.Add(100))
}

func BenchmarkWindowAdd(b *testing.B) {
	var w Window
	for i := 0; i < b.N; i++ {
		w.Add(uint16(i))
	}
}
