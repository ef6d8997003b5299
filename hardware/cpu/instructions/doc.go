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

// Package instructions defines the R4300i instruction set.
//
// The Opcode type gives access to the bit fields of a 32 bit instruction
// word. The Encode*() functions build instruction words from fields and are
// useful for writing test programs.
//
// Definitions() returns the ordered table of instruction definitions. Each
// definition is a mask and a bit pattern. An instruction word matches a
// definition if:
//
//	word & Mask == Bits
//
// Decode() scans the table in order and returns the first matching
// definition, or nil if there is no match. The order of the table is
// significant because some definitions are special cases of others. For
// example, NOP is the SLL instruction with every operand set to zero.
//
// Overlapping definitions must be resolved explicitly. The earlier of two
// overlapping definitions must be strictly more specific than the later
// definition and must name the later definition, directly or through a chain
// of definitions, in its Specialises field. The table is checked when the
// package is initialised and an inconsistent table causes a panic.
//
// Format() produces a human readable version of an instruction word. It does
// not need access to the emulation and can be used for disassembly.
package instructions
