package trace

// Downsample decimates src to at most maxPoints elements for display.
// dst is reused when it has enough capacity.
func Downsample[T any](dst, src []T, maxPoints int) []T {
	if len(src) <= maxPoints {
		if cap(dst) < len(src) {
			dst = make([]T, len(src))
		}
		dst = dst[:len(src)]
		copy(dst, src)
		return dst
	}

	if cap(dst) >= maxPoints {
		dst = dst[:0]
	} else {
		dst = make([]T, 0, maxPoints)
	}

	step := float64(len(src)) / float64(maxPoints)
	for i := range maxPoints {
		dst = append(dst, src[int(float64(i)*step)])
	}
	return dst
}

// DownsampleSamples decimates a slice of samples to at most maxPoints.
func DownsampleSamples(dst []Sample, samples []Sample, maxPoints int) []Sample {
	return Downsample(dst, samples, maxPoints)
}
