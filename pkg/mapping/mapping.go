// Package mapping converts linear 10-bit readings into musically scaled
// values through precomputed lookup tables.
//
// The tables are generated once by cmd/gentables and compiled in as constant
// data; nothing is computed at run time and every lookup is a single array
// read.
package mapping

//go:generate go run ../../cmd/gentables -o tables_gen.go

import "fmt"

const (
	// Len is the number of entries in every table (10-bit ADC domain).
	Len = 1024
	// MaxIndex is the largest valid index.
	MaxIndex = Len - 1

	// FreqMin and FreqMax are the FREQ table endpoints in Hz.
	FreqMin = 55
	FreqMax = 1760
)

// Table identifies one of the lookup curves.
type Table uint8

const (
	Freq Table = iota
	Exp
	Log
	Semitone
	Major

	numTables
)

var tables = [numTables]*[Len]uint16{
	Freq:     &freqTable,
	Exp:      &expTable,
	Log:      &logTable,
	Semitone: &semitoneTable,
	Major:    &majorTable,
}

var tableNames = [numTables]string{
	Freq:     "freq",
	Exp:      "exp",
	Log:      "log",
	Semitone: "semitone",
	Major:    "major",
}

// Valid reports whether t names a table.
func (t Table) Valid() bool { return t < numTables }

func (t Table) String() string {
	if t >= numTables {
		return "unknown"
	}
	return tableNames[t]
}

// ParseTable parses a table name as returned by Table.String.
func ParseTable(s string) (Table, error) {
	for t, name := range tableNames {
		if name == s {
			return Table(t), nil
		}
	}
	return Freq, fmt.Errorf("unknown mapping table %q", s)
}

// Clamp saturates index to the table domain.
func Clamp(index uint16) uint16 {
	if index > MaxIndex {
		return MaxIndex
	}
	return index
}

// Map looks index up in table t. Indices past MaxIndex saturate to the last
// entry; an unknown table yields 0.
func Map(t Table, index uint16) uint16 {
	if t >= numTables {
		return 0
	}
	return tables[t][Clamp(index)]
}

// MapFreq converts a CV reading to an oscillator frequency in Hz.
func MapFreq(index uint16) uint16 { return freqTable[Clamp(index)] }

// MapExp gives finer control at both ends of a knob's travel.
func MapExp(index uint16) uint16 { return expTable[Clamp(index)] }

// MapLog gives finer control in the middle of a knob's travel.
func MapLog(index uint16) uint16 { return logTable[Clamp(index)] }

// MapSemitone quantizes to the nearest semitone, in Hz.
func MapSemitone(index uint16) uint16 { return semitoneTable[Clamp(index)] }

// MapMajor quantizes to the nearest A-major degree, in Hz.
func MapMajor(index uint16) uint16 { return majorTable[Clamp(index)] }
