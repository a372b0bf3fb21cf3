package link

import (
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/trigger"
)

// Device defines the interface for a Grains module (real or simulated).
type Device interface {
	Connect() error
	Close() error
	Frames() <-chan Frame
	Configure(table mapping.Table, edge trigger.Edge) error
	IsConnected() bool
}

var (
	_ Device = (*Serial)(nil)
	_ Device = (*Mock)(nil)
)
