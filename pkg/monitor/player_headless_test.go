//go:build headless

package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Headless(t *testing.T) {
	r, err := NewResynth(8000)
	require.NoError(t, err)
	defer r.Close()

	p, err := NewPlayer(r, time.Millisecond)
	require.NoError(t, err)

	p.Start()
	p.Start()
	assert.True(t, p.IsStarted())

	time.Sleep(5 * time.Millisecond)
	assert.NoError(t, p.Close())
	assert.False(t, p.IsStarted())
}
