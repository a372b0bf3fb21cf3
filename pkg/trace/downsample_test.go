package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsample(t *testing.T) {
	tests := []struct {
		name      string
		src       []int
		maxPoints int
		want      []int
	}{
		{"fewer than max", []int{1, 2, 3}, 5, []int{1, 2, 3}},
		{"exactly max", []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"halved", []int{0, 1, 2, 3, 4, 5, 6, 7}, 4, []int{0, 2, 4, 6}},
		{"uneven", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 4, []int{0, 2, 5, 7}},
		{"empty", nil, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Downsample(nil, tt.src, tt.maxPoints))
		})
	}
}

func TestDownsample_ReusesDestination(t *testing.T) {
	dst := make([]int, 0, 8)
	src := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	got := Downsample(dst, src, 6)
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10}, got)
	assert.Equal(t, 8, cap(got))
	assert.Same(t, &dst[:1][0], &got[0])

	got = Downsample(got, src[:3], 6)
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 8, cap(got))
}

func TestDownsampleSamples(t *testing.T) {
	samples := make([]Sample, 100)
	for i := range samples {
		samples[i].Freq = float64(i)
	}

	got := DownsampleSamples(nil, samples, 10)
	assert.Len(t, got, 10)
	assert.Equal(t, 0.0, got[0].Freq)
	assert.Equal(t, 90.0, got[9].Freq)
}
