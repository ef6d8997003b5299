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

// Package debugger implements a reaonably comprehensive debugging tool.
// Features include:
//
//   - address breakpoints
//   - runaway loop detection with a report of changing registers
//   - instruction tracing
//   - inspection of the CPU registers, the TLB and memory
//   - disassembly of memory
//   - visualisation of the register file and TLB with memviz
//
// The debugger reads commands from a terminal.Terminal implementation. The
// plainterm package provides a terminal that works with any input and the
// colorterm package provides a terminal with line editing for interactive
// use.
//
// An empty input line steps the emulation by one instruction. The HELP
// command lists all commands.
package debugger
