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

// Package memory implements the memory bus of the console. The Memory type
// owns every area of the physical address space and dispatches reads and
// writes from the CPU (and from DMA transfers) to the correct area after the
// virtual address has been translated.
//
// Virtual addresses are translated according to the segment of the address.
// The KSEG0 and KSEG1 segments are direct mapped. All other segments are
// translated by the TLB and a missing entry results in a TLBMiss fault.
//
// After translation, the list of mappings is searched in the order they were
// installed by NewMemory(). The first mapping that contains the whole of the
// access is used. An access that is not wholly inside one mapping results in
// an UnmappedAddress fault.
//
// The hardware registers of the peripherals are implemented by the Registers
// type. Each register is a latch with optional read and write callbacks. The
// callbacks are methods of the peripheral that owns the registers and it is
// in these callbacks that the DMA transfers of the SP, PI and SI are
// triggered.
//
// The Peek() and Poke() functions are intended for the debugger. They do not
// trigger register callbacks and Poke() can write to the cartridge.
package memory
