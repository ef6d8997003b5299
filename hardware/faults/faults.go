// This file is part of Ultra64.
//
// Ultra64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ultra64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ultra64.  If not, see <https://www.gnu.org/licenses/>.

package faults

import (
	"fmt"
	"io"
)

// Entry is a single entry in the fault log.
type Entry struct {
	Category Category

	// description of the event that triggered the fault
	Event string

	// addresses related to the fault
	InstructionAddr uint32
	AccessAddr      uint32

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s: %08x (PC: %08x)", e.Category, e.Event, e.AccessAddr, e.InstructionAddr)
}

// Faults records the faults raised by the emulated hardware.
type Faults struct {
	// entries are keyed by concatenation of InstructionAddr and AccessAddr
	// expressed as a 16 character string
	entries map[string]*Entry

	// all the faults in order of the first time they appear. the Count field
	// of the entry can be used to see if that fault was seen more than once
	Log []*Entry
}

// NewFaults is the preferred method of initialisation for the Faults type.
func NewFaults() Faults {
	return Faults{
		entries: make(map[string]*Entry),
	}
}

// Clear all entries from faults log.
func (flt *Faults) Clear() {
	clear(flt.entries)
	flt.Log = flt.Log[:0]
}

// WriteLog writes the list of faults in the order they were added.
func (flt Faults) WriteLog(w io.Writer) {
	for _, e := range flt.Log {
		w.Write([]byte(e.String()))
		if e.Count > 1 {
			w.Write([]byte(fmt.Sprintf(" (x%d)", e.Count)))
		}
		w.Write([]byte("\n"))
	}
}

// Record adds the fault to the log. Faults that have been seen before
// increase the count of the existing entry.
func (flt *Faults) Record(f *Fault) {
	key := fmt.Sprintf("%08x%08x", f.PC, f.Address)

	e, found := flt.entries[key]
	if !found {
		e = &Entry{
			Category:        f.Category,
			Event:           f.Event,
			InstructionAddr: f.PC,
			AccessAddr:      f.Address,
		}
		flt.entries[key] = e
		flt.Log = append(flt.Log, e)
	}

	e.Count++
}
