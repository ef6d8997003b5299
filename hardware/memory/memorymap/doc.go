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

// Package memorymap describes the address space of the machine. Virtual
// addresses are divided into segments, some of which are translated by the
// TLB and some of which map directly onto the physical address space.
//
// The physical address space is divided into areas. The Origin and Memtop
// constants for each area are part of the interface between the emulation
// and the software running on it and must not be changed.
//
// For reference, the Summary() function returns a table of the physical areas.
package memorymap
