package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	low  = false
	high = true
)

func TestPoll_Sequences(t *testing.T) {
	levels := []bool{low, high, high, low}

	tests := []struct {
		name string
		edge Edge
		want []bool
	}{
		{
			name: "rising",
			edge: Rising,
			want: []bool{false, true, false, false},
		},
		{
			name: "falling",
			edge: Falling,
			want: []bool{false, false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := low
			got := make([]bool, 0, len(levels))
			for _, l := range levels {
				got = append(got, Poll(l, tt.edge, &last))
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, low, last)
		})
	}
}

func TestPoll_UpdatesLevelOnMismatchedEdge(t *testing.T) {
	last := low

	// Polling for falling edges still records the rise...
	assert.False(t, Poll(high, Falling, &last))
	assert.Equal(t, high, last)

	// ...so a later rising poll does not report it again.
	assert.False(t, Poll(high, Rising, &last))
	assert.True(t, Poll(low, Falling, &last))
}

func TestPoll_OneReportPerTransition(t *testing.T) {
	var d Detector
	count := 0
	for _, l := range []bool{high, high, high, low, low, high, high, low} {
		if d.Poll(l, Rising) {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestDetector_SeedMismatch(t *testing.T) {
	// The zero value assumes LOW; a line that is already HIGH at start-up
	// reports a spurious rising edge on the first poll.
	var d Detector
	assert.True(t, d.Poll(high, Rising))

	seeded := NewDetector(high)
	assert.False(t, seeded.Poll(high, Rising))
	assert.True(t, seeded.Level())
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "rising", Rising.String())
	assert.Equal(t, "falling", Falling.String())
	assert.Equal(t, "unknown", Edge(7).String())
}

func TestParseEdge(t *testing.T) {
	e, err := ParseEdge("falling")
	assert.NoError(t, err)
	assert.Equal(t, Falling, e)

	e, err = ParseEdge("rising")
	assert.NoError(t, err)
	assert.Equal(t, Rising, e)

	_, err = ParseEdge("both")
	assert.Error(t, err)
}
