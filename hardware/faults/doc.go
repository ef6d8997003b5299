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

// Package faults defines the errors raised by the emulated hardware and the
// log in which they are recorded.
//
// A Fault is returned by the memory bus when an access cannot be completed
// and by the CPU when an instruction cannot be decoded or executed. The CPU
// annotates faults with the address and opcode of the instruction that
// caused them. Faults are ordinary Go errors and can be found in an error
// chain with errors.As() or with the As() and Is() helper functions in this
// package.
//
// Every Category belongs to one of three classes: decode, memory or
// unsupported operation. The class is useful when deciding how to report a
// fault without needing to list every category.
//
// The Faults type is a log of faults, keyed by instruction and access
// address, with a count of how many times each fault has been seen.
package faults
