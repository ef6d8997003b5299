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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Addresses are virtual addresses and values are in the native
// big-endian order of the machine.
//
// Accesses must be aligned to the width of the access. Errors are
// *faults.Fault values.
type CPUBus interface {
	Read8(address uint64) (uint8, error)
	Read16(address uint64) (uint16, error)
	Read32(address uint64) (uint32, error)
	Read64(address uint64) (uint64, error)
	Write8(address uint64, data uint8) error
	Write16(address uint64, data uint16) error
	Write32(address uint64, data uint32) error
	Write64(address uint64, data uint64) error
}

// DebugBus defines the meta-operations for the memory system. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
type DebugBus interface {
	// Peek fills data with the bytes starting at the virtual address without
	// triggering side effects
	Peek(address uint64, data []byte) error

	// Poke writes data starting at the virtual address. Read-only areas can
	// be written with Poke
	Poke(address uint64, data []byte) error
}

// DMABus is implemented by memory systems that can perform a block transfer
// between two virtual addresses.
type DMABus interface {
	DMA(dst uint64, src uint64, length int) error
}
