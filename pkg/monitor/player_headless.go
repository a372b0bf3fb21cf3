//go:build headless

package monitor

import (
	"sync"
	"time"
)

// Player pulls audio from its source at the playback rate and discards it.
type Player struct {
	src     *Resynth
	buffer  time.Duration
	started bool
	stop    chan struct{}
	mu      sync.Mutex
}

func NewPlayer(src *Resynth, buffer time.Duration) (*Player, error) {
	if buffer <= 0 {
		buffer = 20 * time.Millisecond
	}
	return &Player{src: src, buffer: buffer}, nil
}

func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}
	p.started = true
	p.stop = make(chan struct{})
	go p.drain(p.stop)
}

func (p *Player) drain(stop <-chan struct{}) {
	n := int(p.buffer * time.Duration(p.src.SampleRate()) / time.Second)
	buf := make([]float32, max(n, 1))
	ticker := time.NewTicker(p.buffer)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.src.Render(buf)
		}
	}
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		close(p.stop)
		p.started = false
	}
}

func (p *Player) Close() error {
	p.Stop()
	return nil
}

func (p *Player) IsStarted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}
