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
	"errors"
	"fmt"
)

// Category classifies the approximate reason for a fault.
type Category string

// List of valid Category values.
const (
	Decode                  Category = "decode fault"
	UnmappedAddress         Category = "unmapped address"
	MisalignedAccess        Category = "misaligned access"
	ReadOnly                Category = "read-only write"
	TLBMiss                 Category = "tlb miss"
	UnsupportedRegister     Category = "unsupported register"
	UnimplementedPeripheral Category = "unimplemented peripheral"
	UnsupportedOperation    Category = "unsupported operation"
)

// Class groups categories together.
type Class int

// List of valid Class values.
const (
	ClassDecode Class = iota
	ClassMemory
	ClassUnsupported
)

func (c Class) String() string {
	switch c {
	case ClassDecode:
		return "decode"
	case ClassMemory:
		return "memory"
	case ClassUnsupported:
		return "unsupported"
	}
	return "unknown"
}

// Class returns the class the category belongs to.
func (c Category) Class() Class {
	switch c {
	case Decode:
		return ClassDecode
	case UnsupportedOperation:
		return ClassUnsupported
	}
	return ClassMemory
}

// Fault is an error raised by the emulated hardware.
type Fault struct {
	Category Category

	// description of the event that triggered the fault
	Event string

	// the address being accessed. for UnsupportedRegister faults this is the
	// register number
	Address uint32

	// width of the access in bytes. zero if the fault is not a memory access
	Width int

	// the instruction that caused the fault. only valid if HasInstruction is
	// true
	PC             uint32
	Opcode         uint32
	HasInstruction bool

	relocated bool
}

// New creates a new fault.
func New(category Category, event string, address uint32, width int) *Fault {
	return &Fault{
		Category: category,
		Event:    event,
		Address:  address,
		Width:    width,
	}
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.HasInstruction {
		return fmt.Sprintf("%s: %s: %08x (PC: %08x)", f.Category, f.Event, f.Address, f.PC)
	}
	return fmt.Sprintf("%s: %s: %08x", f.Category, f.Event, f.Address)
}

// At records the instruction that caused the fault. Faults that already carry
// instruction information are not changed. Returns the fault for
// convenience.
func (f *Fault) At(pc uint64, opcode uint32) *Fault {
	if !f.HasInstruction {
		f.PC = uint32(pc)
		f.Opcode = opcode
		f.HasInstruction = true
	}
	return f
}

// Relocate changes the address of a fault raised by a memory area, which
// only knows the offset into the area, to the address used by the CPU. Like
// At(), only the first call has any effect. Returns the fault for
// convenience.
func (f *Fault) Relocate(address uint32) *Fault {
	if !f.relocated {
		f.Address = address
		f.relocated = true
	}
	return f
}

// As returns the first Fault in the error chain.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Is returns true if there is a Fault of the specified category in the error
// chain.
func Is(err error, category Category) bool {
	if f, ok := As(err); ok {
		return f.Category == category
	}
	return false
}
