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

// Package bus defines the access patterns for the different users of the
// memory system. The CPU accesses memory through the CPUBus interface, with
// virtual addresses that are translated and dispatched by the memory
// package.
//
// The DebugBus is for the exclusive use of debuggers and the disassembler.
// Accesses through the DebugBus do not trigger the side effects of the
// hardware registers.
package bus
