package link

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/trigger"
	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the USB-CDC rate the firmware is configured for.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size for the frames channel buffer.
	DefaultBufferSize = 100
)

// Port represents a serial port.
type Port struct {
	Name        string
	Description string
}

// Serial is a connection to the module over its USB serial port.
type Serial struct {
	port     string
	baudRate int

	conn      serial.Port
	frames    chan Frame
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool
}

// New creates a serial link with the specified port, baud rate, and buffer size.
func New(port string, baudRate int, bufSize int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Serial{
		port:     port,
		baudRate: baudRate,
		frames:   make(chan Frame, bufSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(ports))
	for _, name := range ports {
		result = append(result, Port{Name: name, Description: name})
	}
	return result, nil
}

// Connect opens the serial port and starts reading frames.
func (d *Serial) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return fmt.Errorf("already connected")
	}

	port, err := serial.Open(d.port, &serial.Mode{BaudRate: d.baudRate})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", d.port, err)
	}

	d.conn = port
	d.connected = true

	go d.readFrames(port)

	return nil
}

// Close closes the connection and stops reading frames.
func (d *Serial) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return nil
	}

	d.cancel()

	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
		d.conn = nil
	}

	d.connected = false
	close(d.frames)

	return nil
}

// Frames returns the channel for reading telemetry frames.
func (d *Serial) Frames() <-chan Frame {
	return d.frames
}

// Configure selects the pitch table and clock edge on the module.
func (d *Serial) Configure(table mapping.Table, edge trigger.Edge) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.connected {
		return fmt.Errorf("not connected")
	}
	if !table.Valid() {
		return fmt.Errorf("unknown pitch table %d", table)
	}

	cmd := engine.Command{PitchTable: table, ClockEdge: edge}
	if _, err := d.conn.Write(cmd.Append(nil)); err != nil {
		return fmt.Errorf("failed to send configure command: %w", err)
	}

	return nil
}

// IsConnected returns whether the port is currently open.
func (d *Serial) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// readFrames reads lines from r until it fails or the link is closed.
func (d *Serial) readFrames(r io.Reader) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Panic in readFrames: %v", p)
		}
	}()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		frame, err := parseLine(line)
		if err != nil {
			log.Printf("Failed to parse line '%s': %v", line, err)
			continue
		}

		if !d.deliver(frame) {
			return
		}
	}
	if err := scanner.Err(); err != nil && d.ctx.Err() == nil {
		log.Printf("Error reading from serial port: %v", err)
	}
}

// deliver sends frame without blocking. It reports false once the link is
// closed.
func (d *Serial) deliver(frame Frame) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.connected {
		return false
	}
	select {
	case d.frames <- frame:
	default:
		log.Printf("Frames channel full, dropping frame")
	}
	return true
}
