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

package disassembly

import (
	"encoding/binary"
	"sync"

	"github.com/ultra64emu/ultra64/hardware/cpu/execution"
	"github.com/ultra64emu/ultra64/hardware/memory/bus"
)

// Disassembly represents the annotated disassembly of an area of memory.
type Disassembly struct {
	mem bus.DebugBus

	// executed entries, keyed by the low 32 bits of the address
	executed map[uint32]*Entry

	// critical sectioning
	crit sync.Mutex
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type.
func NewDisassembly(mem bus.DebugBus) *Disassembly {
	return &Disassembly{
		mem:      mem,
		executed: make(map[uint32]*Entry),
	}
}

// Decode returns the entry for the instruction at the address. If the
// instruction at the address has been executed, and has not been changed since
// then, the executed entry is returned.
func (dsm *Disassembly) Decode(address uint64) *Entry {
	var d [4]byte
	err := dsm.mem.Peek(address, d[:])
	if err != nil {
		return newUnreadable(address, err)
	}
	word := binary.BigEndian.Uint32(d[:])

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if e, ok := dsm.executed[uint32(address)]; ok && uint32(e.Result.Opcode) == word {
		return e
	}

	return newEntry(address, word)
}

// Range returns the entries for count instructions starting at the address.
func (dsm *Disassembly) Range(address uint64, count int) []*Entry {
	entries := make([]*Entry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, dsm.Decode(address+uint64(i*4)))
	}
	return entries
}

// UpdateEntry records the result of an execution. Results that are not final
// are ignored.
func (dsm *Disassembly) UpdateEntry(result execution.Result) *Entry {
	if !result.Final {
		return nil
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e, ok := dsm.executed[uint32(result.Address)]
	if !ok || e.Result.Opcode != result.Opcode {
		e = newEntry(result.Address, uint32(result.Opcode))
		dsm.executed[uint32(result.Address)] = e
	}

	e.Result = result
	e.Level = EntryLevelExecuted

	return e
}

// NumExecuted returns the number of different addresses that have been
// executed.
func (dsm *Disassembly) NumExecuted() int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return len(dsm.executed)
}

// Clear forgets all executed entries.
func (dsm *Disassembly) Clear() {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	clear(dsm.executed)
}
