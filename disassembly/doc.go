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

// Package disassembly produces listings of R4300i machine code from the
// memory of an instantiated console.
//
// Memory is read with the Peek() function of the bus.DebugBus interface and
// so producing a disassembly never changes the state of the emulation.
//
// Instructions that have been executed can be added to the disassembly with
// UpdateEntry(). Executed entries carry the execution.Result of the most
// recent execution and this is used to annotate the listing with information
// about the flow of the program.
//
// For quick disassemblies the FromCartridge() function can be used. Debuggers
// will probably find it more useful however, to disassemble from the memory of
// an already instantiated console with NewDisassembly().
package disassembly
