package engine

import (
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/trigger"
)

// CommandLen is the length of a command line without its terminator.
const CommandLen = 3

// Command changes the patch at run time. On the wire it is 'c', the pitch
// table index as a digit, 'r' or 'f' for the clock edge, then a newline.
type Command struct {
	PitchTable mapping.Table
	ClockEdge  trigger.Edge
}

// Append appends the encoded command, newline included, to dst.
func (c Command) Append(dst []byte) []byte {
	edge := byte('r')
	if c.ClockEdge == trigger.Falling {
		edge = 'f'
	}
	return append(dst, 'c', '0'+byte(c.PitchTable), edge, '\n')
}

// ParseCommand decodes a command line with the terminator already stripped.
func ParseCommand(line []byte) (Command, bool) {
	if len(line) != CommandLen || line[0] != 'c' || line[1] < '0' {
		return Command{}, false
	}
	cmd := Command{PitchTable: mapping.Table(line[1] - '0')}
	if !cmd.PitchTable.Valid() {
		return Command{}, false
	}
	switch line[2] {
	case 'r':
		cmd.ClockEdge = trigger.Rising
	case 'f':
		cmd.ClockEdge = trigger.Falling
	default:
		return Command{}, false
	}
	return cmd, true
}

// Apply switches the engine to the command's table and edge.
func (e *Engine) Apply(cmd Command) {
	e.cfg.PitchTable = cmd.PitchTable
	e.cfg.ClockEdge = cmd.ClockEdge
}
