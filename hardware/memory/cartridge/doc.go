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

// Package cartridge implements the cartridge ROM area of the memory bus and
// the decoding of the cartridge header.
//
// The cartridge is read-only. Any write by the CPU, or by a DMA transfer,
// results in a fault. Reads beyond the end of the image return the open bus
// value of 0xff. The Poke() function can be used by the debugger to patch
// the image.
package cartridge
